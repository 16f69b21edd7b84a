package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fwojciec/figdoc"
	"github.com/fwojciec/figdoc/fs"
	"github.com/fwojciec/figdoc/json"
	"github.com/fwojciec/figdoc/markdown"
)

// formatNames lists the accepted output formats.
var formatNames = map[string]struct{}{
	"json":     {},
	"text":     {},
	"markdown": {},
	"summary":  {},
}

// newFormatter returns the formatter for a format name.
func newFormatter(format string, pretty bool) (figdoc.Formatter, error) {
	switch format {
	case "json":
		return &json.Formatter{Pretty: pretty}, nil
	case "text":
		return figdoc.TextFormatter, nil
	case "markdown":
		return &markdown.Formatter{}, nil
	case "summary":
		return &markdown.SummaryFormatter{}, nil
	}
	return nil, figdoc.Errorf(figdoc.EINVALID, "invalid format '%s': expected one of json, text, markdown, summary", format)
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	format := c.Format
	if format == "" {
		format = deps.Config.Extraction.Format
	}
	formatter, err := newFormatter(format, c.Pretty)
	if err != nil {
		return err
	}

	filter, err := c.filter()
	if err != nil {
		return err
	}

	fetch, err := fetchOptions(c.Depth, deps.Config)
	if err != nil {
		return err
	}

	reqs := make([]figdoc.ExtractRequest, 0, len(c.Files))
	for _, input := range c.Files {
		key, err := figdoc.ParseFileKey(input)
		if err != nil {
			return err
		}
		reqs = append(reqs, figdoc.ExtractRequest{FileKey: key, Filter: filter, Fetch: fetch})
	}

	var results []*figdoc.ExtractionResult
	if len(reqs) == 1 {
		r, err := deps.Extraction.Extract(deps.Ctx, reqs[0])
		if err != nil {
			return err
		}
		results = []*figdoc.ExtractionResult{r}
	} else {
		results, err = deps.Extraction.ExtractMany(deps.Ctx, reqs)
		if err != nil {
			return err
		}
	}

	switch {
	case c.Output == "":
		for _, r := range results {
			if err := formatter.Format(deps.Stdout, r); err != nil {
				return err
			}
		}
	case len(results) == 1:
		if err := fs.WriteFile(c.Output, 0644, func(w io.Writer) error {
			return formatter.Format(w, results[0])
		}); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "Wrote %d text nodes to %s\n", results[0].Stats.TotalTextNodes, c.Output)
	default:
		store := fs.NewResultStore(filepath.Dir(c.Output), filepath.Base(c.Output), fs.Extension(format))
		for _, r := range results {
			if err := store.Save(r, formatter); err != nil {
				_ = store.Abort()
				return err
			}
		}
		if err := store.Commit(); err != nil {
			_ = store.Abort()
			return err
		}
		fmt.Fprintf(deps.Stderr, "Wrote %d files to %s\n", len(results), c.Output)
	}

	return nil
}

// filter builds the filter criteria from the flags. Returns nil when no
// filtering flag is set.
func (c *ExtractCmd) filter() (*figdoc.FilterCriteria, error) {
	f := &figdoc.FilterCriteria{
		PageNames:     figdoc.ParsePageList(c.Pages),
		PageIDs:       figdoc.ParsePageList(c.PageIDs),
		IncludeHidden: c.IncludeHidden,
	}

	var err error
	if c.PagePattern != "" {
		if f.PagePattern, err = figdoc.CompilePattern("page pattern", c.PagePattern); err != nil {
			return nil, err
		}
	}
	if c.FramePattern != "" {
		if f.FramePattern, err = figdoc.CompilePattern("frame pattern", c.FramePattern); err != nil {
			return nil, err
		}
	}

	if f.IsEmpty() {
		return nil, nil
	}
	return f, nil
}

// fetchOptions resolves the depth flag against the configured default.
func fetchOptions(depth int, cfg *Config) (figdoc.FetchOptions, error) {
	if depth < 0 {
		return figdoc.FetchOptions{}, figdoc.Errorf(figdoc.EINVALID, "depth must be at least 1")
	}
	if depth == 0 {
		depth = cfg.Extraction.Depth
	}
	if depth == 0 {
		return figdoc.FetchOptions{}, nil
	}
	return figdoc.FetchOptions{Depth: &depth}, nil
}

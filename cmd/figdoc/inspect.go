package main

import (
	"fmt"

	"github.com/fwojciec/figdoc"
	"github.com/fwojciec/figdoc/json"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	key, ids, err := parseTarget(c.File, c.Nodes)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return figdoc.Errorf(figdoc.EINVALID, "no node ids specified. Use --nodes or a URL with node-id")
	}

	fetch, err := fetchOptions(c.Depth, deps.Config)
	if err != nil {
		return err
	}

	resp, err := deps.Extraction.Inspect(deps.Ctx, key, ids, fetch)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if n, ok := resp.Nodes[id]; !ok || n == nil || n.Document == nil {
			fmt.Fprintf(deps.Stderr, "warning: node %s not found\n", id)
		}
	}

	out, err := json.Marshal(resp, !c.Compact)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}

// parseTarget resolves a file argument and explicit node IDs. Node IDs in
// a file URL are used when none are given explicitly.
func parseTarget(file string, nodes []string) (string, []string, error) {
	key, urlIDs, err := figdoc.ParseFileAndNodes(file)
	if err != nil {
		return "", nil, err
	}
	if len(nodes) == 0 {
		return key, urlIDs, nil
	}
	ids, err := figdoc.ParseNodeIDs(nodes)
	if err != nil {
		return "", nil, err
	}
	return key, ids, nil
}

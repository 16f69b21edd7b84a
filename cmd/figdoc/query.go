package main

import (
	"fmt"

	"github.com/fwojciec/figdoc"
	"github.com/fwojciec/figdoc/json"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	key, ids, err := parseTarget(c.File, c.Nodes)
	if err != nil {
		return err
	}

	fetch, err := fetchOptions(c.Depth, deps.Config)
	if err != nil {
		return err
	}

	var data []byte
	if len(ids) > 0 {
		data, err = deps.Files.FetchNodes(deps.Ctx, key, ids, fetch)
	} else {
		data, err = deps.Files.FetchFile(deps.Ctx, key, fetch)
	}
	if err != nil {
		return err
	}

	result, err := deps.Querier.Query(c.Expr, data)
	if err != nil {
		return err
	}

	out, err := json.Marshal(result, !c.Compact)
	if err != nil {
		return figdoc.Errorf(figdoc.EINTERNAL, "failed to encode query result: %v", err)
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}

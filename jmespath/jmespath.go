// Package jmespath evaluates JMESPath expressions against Figma payloads.
package jmespath

import (
	"encoding/json"

	"github.com/fwojciec/figdoc"
	"github.com/jmespath/go-jmespath"
)

// Ensure Querier implements figdoc.Querier.
var _ figdoc.Querier = (*Querier)(nil)

// Querier implements figdoc.Querier.
type Querier struct{}

// Query compiles expr and applies it to the decoded JSON in data.
func (q *Querier) Query(expr string, data []byte) (any, error) {
	if expr == "" {
		return nil, figdoc.Errorf(figdoc.EINVALID, "query expression is empty")
	}

	compiled, err := jmespath.Compile(expr)
	if err != nil {
		return nil, figdoc.Errorf(figdoc.EINVALID, "invalid query %q: %v", expr, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, figdoc.Errorf(figdoc.EDECODE, "query input is not valid JSON: %v", err)
	}

	result, err := compiled.Search(doc)
	if err != nil {
		return nil, figdoc.Errorf(figdoc.EINVALID, "evaluate query %q: %v", expr, err)
	}
	return result, nil
}

package mcptools

import (
	"fmt"
	"math"

	"github.com/TJurijs/5esrd-api/catalog"
	"github.com/mark3labs/mcp-go/mcp"
)

// argReader reads optional tool arguments. The first type error sticks and
// every later read returns the zero value.
type argReader struct {
	args map[string]any
	err  error
}

func newArgReader(req mcp.CallToolRequest) *argReader {
	return &argReader{args: req.GetArguments()}
}

func (r *argReader) fail(format string, a ...any) {
	if r.err == nil {
		r.err = fmt.Errorf(format, a...)
	}
}

func (r *argReader) string(key string) string {
	v, ok := r.args[key]
	if !ok || v == nil || r.err != nil {
		return ""
	}

	s, ok := v.(string)
	if !ok {
		r.fail("%s must be a string", key)
	}
	return s
}

// int accepts JSON numbers without a fractional part.
func (r *argReader) int(key string) *int {
	v, ok := r.args[key]
	if !ok || v == nil || r.err != nil {
		return nil
	}

	var n int
	switch x := v.(type) {
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
			r.fail("%s must be a whole number", key)
			return nil
		}
		n = int(x)
	case int:
		n = x
	default:
		r.fail("%s must be a number", key)
		return nil
	}
	return &n
}

func (r *argReader) bool(key string) *bool {
	v, ok := r.args[key]
	if !ok || v == nil || r.err != nil {
		return nil
	}

	b, ok := v.(bool)
	if !ok {
		r.fail("%s must be a boolean", key)
		return nil
	}
	return &b
}

// page reads the page and limit arguments. Out-of-range values are clamped by the catalog.
func (r *argReader) page() catalog.Page {
	var p catalog.Page
	if n := r.int("page"); n != nil {
		p.Page = *n
	}
	if n := r.int("limit"); n != nil {
		p.Limit = *n
	}
	return p
}

package mcptools

import (
	"encoding/json"

	"github.com/TJurijs/5esrd-api/rules"
	"github.com/mark3labs/mcp-go/mcp"
)

// how many "did you mean" names a not-found payload carries
const suggestionCount = 5

type notFoundPayload struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type listPayload[T any] struct {
	Data []T `json:"data"`
}

type expandPayload struct {
	Text string `json:"text"`
}

// jsonResult renders v as indented JSON text.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}

// entityResult answers with the entity, or with an error payload when it was not found.
func entityResult[T any](t *Tools, kind rules.Kind, name string, entity T, ok bool) (*mcp.CallToolResult, error) {
	if !ok {
		return jsonResult(notFoundPayload{
			Error:       rules.NotFoundMessage(kind, name),
			Suggestions: t.catalog.Suggest(kind, name, suggestionCount),
		})
	}
	return jsonResult(entity)
}

func argumentError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError("invalid arguments: " + err.Error()), nil
}

package docs_test

import (
	"encoding/json"
	"testing"

	_ "github.com/Odongfelix/jweb/cmd/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocListsAPIRoutes(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "/api", doc.BasePath)

	routes := map[string]string{
		"/mcurrency/today":               "get",
		"/mcurrency/config":              "get",
		"/mcurrency/live":                "get",
		"/mcurrency/mode":                "put",
		"/mcurrency/save":                "post",
		"/journal-entries/form":          "get",
		"/journal-entries":               "post",
		"/offices":                       "get",
		"/journal-entries/report":        "get",
		"/journal-entries/report/export": "get",
	}
	for path, method := range routes {
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "missing path %s", path) {
			assert.Contains(t, ops, method, "missing %s %s", method, path)
		}
	}
}

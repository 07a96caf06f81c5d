package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectSpecTool(t *testing.T) {
	withConfig(t, defaultConfig())

	res, output, err := handleInspectSpec(context.Background(), &mcp.CallToolRequest{}, inspectSpecInput{
		Spec: specInput{Content: testSpecJSON},
	})
	require.NoError(t, err)
	assert.Nil(t, res)

	assert.Equal(t, inlineSourceName, output.Source)
	assert.Equal(t, 2, output.PathCount)
	assert.Equal(t, 4, output.OperationCount)
	assert.Equal(t, 1, output.MissingOperationIDs)
	assert.Equal(t, 1, output.MissingSummaries)

	require.Len(t, output.Incomplete, 2)
	assert.Equal(t, "post", output.Incomplete[0].Method)
	assert.Equal(t, "/widgets", output.Incomplete[0].Path)
	assert.Equal(t, "$.paths['/widgets'].post", output.Incomplete[0].JSONPath)
	assert.Equal(t, 7, output.Incomplete[0].Line)
	assert.Equal(t, "deleteWidget", output.Incomplete[1].OperationID)
	assert.False(t, output.Truncated)
	assert.Empty(t, output.EmptyPaths)
}

const sparseSpecJSON = `{
  "paths": {
    "/a": {"get": {}, "post": {}},
    "/health": {"parameters": []},
    "/b": {"put": {}},
    "/c": {},
    "/d": {"delete": {"operationId": "deleteD", "summary": "Delete d"}}
  }
}`

func TestInspectSpecTool_EmptyPaths(t *testing.T) {
	withConfig(t, defaultConfig())

	_, output, err := handleInspectSpec(context.Background(), &mcp.CallToolRequest{}, inspectSpecInput{
		Spec: specInput{Content: sparseSpecJSON},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, output.PathCount)
	assert.Equal(t, []string{"/health", "/c"}, output.EmptyPaths)
	require.Len(t, output.Incomplete, 3)
	assert.Equal(t, "/b", output.Incomplete[2].Path)
	assert.False(t, output.Truncated)
}

func TestInspectSpecTool_Limit(t *testing.T) {
	withConfig(t, defaultConfig())

	t.Run("stops at limit", func(t *testing.T) {
		_, output, err := handleInspectSpec(context.Background(), &mcp.CallToolRequest{}, inspectSpecInput{
			Spec:  specInput{Content: sparseSpecJSON},
			Limit: 2,
		})
		require.NoError(t, err)
		require.Len(t, output.Incomplete, 2)
		assert.Equal(t, "get", output.Incomplete[0].Method)
		assert.Equal(t, "post", output.Incomplete[1].Method)
		assert.True(t, output.Truncated)
		assert.Equal(t, []string{"/health"}, output.EmptyPaths, "walk stops before /c")
	})

	t.Run("limit equal to count", func(t *testing.T) {
		_, output, err := handleInspectSpec(context.Background(), &mcp.CallToolRequest{}, inspectSpecInput{
			Spec:  specInput{Content: sparseSpecJSON},
			Limit: 3,
		})
		require.NoError(t, err)
		assert.Len(t, output.Incomplete, 3)
		assert.False(t, output.Truncated)
	})

	t.Run("negative", func(t *testing.T) {
		res, _, err := handleInspectSpec(context.Background(), &mcp.CallToolRequest{}, inspectSpecInput{
			Spec:  specInput{Content: sparseSpecJSON},
			Limit: -1,
		})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
	})
}

func TestInspectSpecTool_Error(t *testing.T) {
	withConfig(t, defaultConfig())

	res, _, err := handleInspectSpec(context.Background(), &mcp.CallToolRequest{}, inspectSpecInput{})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}

func TestSanitizeSource(t *testing.T) {
	assert.Equal(t, "<path>", sanitizeSource("/home/dev/openapi.json"))
	assert.Equal(t, "docs/static/openapi.json", sanitizeSource("docs/static/openapi.json"))
}

package sidebar

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinglow/apisidebar/internal/testutil"
	"github.com/pinglow/apisidebar/oaserrors"
	"github.com/pinglow/apisidebar/parser"
)

// parseDoc parses a JSON document for tests
func parseDoc(t *testing.T, spec string) *parser.Document {
	t.Helper()
	result, err := parser.New().ParseBytes([]byte(spec))
	require.NoError(t, err)
	return result.Document
}

// recordingLogger captures warnings for assertions
type recordingLogger struct {
	parser.NopLogger
	warnings []string
}

func (r *recordingLogger) Warn(msg string, attrs ...any) {
	r.warnings = append(r.warnings, msg)
}

func (r *recordingLogger) With(_ ...any) parser.Logger { return r }

func links(t *testing.T, sb *Sidebars) []*Link {
	t.Helper()
	require.Len(t, sb.APISidebar, 1)
	return sb.APISidebar[0].Links()
}

func TestGenerate_Empty(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"empty paths", `{"paths": {}}`},
		{"missing paths", `{"openapi": "3.0.3", "info": {"title": "API"}}`},
		{"path without operations", `{"paths": {"/health": {"parameters": []}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb, err := Generate(parseDoc(t, tt.spec))
			require.NoError(t, err)

			require.Len(t, sb.APISidebar, 1)
			category := sb.APISidebar[0]
			assert.Equal(t, TypeCategory, category.Type)
			assert.Equal(t, "RestAPI", category.Label)
			assert.Equal(t, []Item{DocItem("restapi")}, category.Items)
			assert.Empty(t, sb.DuplicateHrefs())
		})
	}
}

func TestGenerate_Links(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want Link
	}{
		{
			name: "operationId and summary",
			spec: `{"paths": {"/widgets/{id}": {"get": {"operationId": "getWidget", "summary": "Get a widget"}}}}`,
			want: Link{Type: "link", Label: "Get a widget", Href: "/docs/restapi#tag/crate/operation/getWidget"},
		},
		{
			name: "synthesized anchor and label",
			spec: `{"paths": {"/widgets/{id}": {"get": {}}}}`,
			want: Link{Type: "link", Label: "GET /widgets/{id}", Href: "/docs/restapi#tag/crate/operation/get__widgets__id_"},
		},
		{
			name: "summary is trimmed",
			spec: `{"paths": {"/widgets": {"post": {"operationId": "createWidget", "summary": "  Create a widget \n"}}}}`,
			want: Link{Type: "link", Label: "Create a widget", Href: "/docs/restapi#tag/crate/operation/createWidget"},
		},
		{
			name: "whitespace summary falls back to method and path",
			spec: `{"paths": {"/widgets": {"delete": {"operationId": "purge", "summary": "   "}}}}`,
			want: Link{Type: "link", Label: "DELETE /widgets", Href: "/docs/restapi#tag/crate/operation/purge"},
		},
		{
			name: "empty operationId is synthesized",
			spec: `{"paths": {"/a/b": {"put": {"operationId": "", "summary": "Replace"}}}}`,
			want: Link{Type: "link", Label: "Replace", Href: "/docs/restapi#tag/crate/operation/put__a_b"},
		},
		{
			name: "null members are absent",
			spec: `{"paths": {"/x": {"head": {"operationId": null, "summary": null}}}}`,
			want: Link{Type: "link", Label: "HEAD /x", Href: "/docs/restapi#tag/crate/operation/head__x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb, err := Generate(parseDoc(t, tt.spec))
			require.NoError(t, err)

			got := links(t, sb)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, *got[0])
		})
	}
}

func TestGenerate_SkipsNonMethodKeys(t *testing.T) {
	spec := `{"paths": {"/widgets": {
    "parameters": [{"name": "q", "in": "query"}],
    "summary": "Widgets",
    "x-internal": true,
    "trace": {"operationId": "traceWidgets"},
    "get": {"operationId": "listWidgets"}
  }}}`

	sb, err := Generate(parseDoc(t, spec))
	require.NoError(t, err)

	got := links(t, sb)
	require.Len(t, got, 1)
	assert.Equal(t, "/docs/restapi#tag/crate/operation/listWidgets", got[0].Href)
}

func TestGenerate_PreservesOrder(t *testing.T) {
	spec := `{"paths": {
    "/zebras": {"post": {"operationId": "z1"}, "get": {"operationId": "z2"}},
    "/apples": {"patch": {"operationId": "a1"}, "options": {"operationId": "a2"}, "delete": {"operationId": "a3"}}
  }}`
	doc := parseDoc(t, spec)

	sb, err := Generate(doc)
	require.NoError(t, err)

	var hrefs []string
	for _, l := range links(t, sb) {
		hrefs = append(hrefs, l.Href[len(DefaultHrefPrefix):])
	}
	assert.Equal(t, []string{"z1", "z2", "a1", "a2", "a3"}, hrefs)
	assert.Equal(t, 1+doc.OperationCount(), sb.ItemCount())
	assert.Equal(t, DocItem("restapi"), sb.APISidebar[0].Items[0])
}

func TestGenerate_DuplicateHrefs(t *testing.T) {
	spec := `{"paths": {
    "/a": {"get": {"operationId": "same"}},
    "/b": {"get": {"operationId": "same"}},
    "/c": {"get": {"operationId": "other"}}
  }}`
	logger := &recordingLogger{}

	sb, err := Generate(parseDoc(t, spec), WithLogger(logger))
	require.NoError(t, err)

	assert.Len(t, links(t, sb), 3, "duplicates are kept")
	assert.Equal(t, []string{"/docs/restapi#tag/crate/operation/same"}, sb.DuplicateHrefs())
	assert.Equal(t, []string{"duplicate sidebar href"}, logger.warnings)
}

func TestGenerate_Options(t *testing.T) {
	spec := `{"paths": {"/w": {"get": {"operationId": "getW"}}}}`

	sb, err := Generate(parseDoc(t, spec),
		WithSidebarID("httpSidebar"),
		WithCategoryLabel("HTTP API"),
		WithAnchorDoc("http"),
		WithHrefPrefix("/docs/http#op-"),
	)
	require.NoError(t, err)

	assert.Equal(t, "httpSidebar", sb.ID)
	category := sb.APISidebar[0]
	assert.Equal(t, "HTTP API", category.Label)
	assert.Equal(t, DocItem("http"), category.Items[0])
	assert.Equal(t, "/docs/http#op-getW", links(t, sb)[0].Href)
}

func TestGenerate_InvalidOptions(t *testing.T) {
	doc := parseDoc(t, `{}`)

	for name, opt := range map[string]Option{
		"sidebar id":     WithSidebarID(""),
		"category label": WithCategoryLabel(""),
		"anchor doc":     WithAnchorDoc(""),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Generate(doc, opt)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig))
		})
	}
}

func TestGenerate_NilDocument(t *testing.T) {
	_, err := Generate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil Document")
}

func TestGenerate_Fixture(t *testing.T) {
	sb, err := Generate(testutil.NewWidgetsDocument())
	require.NoError(t, err)

	assert.Equal(t, []*Link{
		{Type: "link", Label: "List widgets", Href: "/docs/restapi#tag/crate/operation/listWidgets"},
		{Type: "link", Label: "Create a widget", Href: "/docs/restapi#tag/crate/operation/post__widgets"},
		{Type: "link", Label: "Get a widget", Href: "/docs/restapi#tag/crate/operation/getWidget"},
		{Type: "link", Label: "DELETE /widgets/{id}", Href: "/docs/restapi#tag/crate/operation/deleteWidget"},
	}, links(t, sb))

	sb, err = Generate(testutil.NewSimpleDocument())
	require.NoError(t, err)
	assert.Equal(t, 1, sb.ItemCount())
}

func TestGenerator_Defaults(t *testing.T) {
	g := New()
	assert.Equal(t, DefaultSidebarID, g.SidebarID)
	assert.Equal(t, DefaultCategoryLabel, g.CategoryLabel)
	assert.Equal(t, DefaultAnchorDoc, g.AnchorDoc)
	assert.Equal(t, DefaultHrefPrefix, g.HrefPrefix)

	sb, err := g.Generate(parseDoc(t, `{"paths": {"/p": {"get": {}}}}`))
	require.NoError(t, err)
	assert.Equal(t, "GET /p", links(t, sb)[0].Label)
}

func TestGenerateWithOptions(t *testing.T) {
	t.Run("file path", func(t *testing.T) {
		path := testutil.WriteTempJSON(t, testutil.WidgetsJSON)

		sb, err := GenerateWithOptions(WithFilePath(path))
		require.NoError(t, err)
		assert.Equal(t, 5, sb.ItemCount())
	})

	t.Run("yaml input is rejected", func(t *testing.T) {
		path := testutil.WriteTempYAML(t, map[string]any{"paths": map[string]any{"/p": map[string]any{"get": map[string]any{}}}})

		_, err := GenerateWithOptions(WithFilePath(path))
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrParse)
	})

	t.Run("parsed result", func(t *testing.T) {
		result, err := parser.New().ParseBytes([]byte(`{"paths": {}}`))
		require.NoError(t, err)

		sb, err := GenerateWithOptions(WithParsed(result), WithCategoryLabel("API"))
		require.NoError(t, err)
		assert.Equal(t, "API", sb.APISidebar[0].Label)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := GenerateWithOptions(WithFilePath(filepath.Join(t.TempDir(), "missing.json")))
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrFileNotFound)
	})

	t.Run("no input", func(t *testing.T) {
		_, err := GenerateWithOptions()
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})

	t.Run("two inputs", func(t *testing.T) {
		result, err := parser.New().ParseBytes([]byte(`{}`))
		require.NoError(t, err)

		_, err = GenerateWithOptions(WithFilePath("openapi.json"), WithParsed(result))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one input source")
	})

	t.Run("nil parsed result", func(t *testing.T) {
		_, err := GenerateWithOptions(WithParsed(nil))
		require.Error(t, err)
	})
}

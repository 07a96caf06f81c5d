package walker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinglow/apisidebar/parser"
)

func testDocument() *parser.Document {
	return &parser.Document{
		Paths: []*parser.PathItem{
			{
				Template: "/pets",
				Operations: []*parser.Operation{
					{Method: "post", OperationID: "createPet"},
					{Method: "get", OperationID: "listPets"},
				},
			},
			{
				Template: "/pets/{id}",
				Operations: []*parser.Operation{
					{Method: "delete", OperationID: "deletePet"},
				},
			},
			{Template: "/health"},
		},
	}
}

func TestWalk_Order(t *testing.T) {
	var visited []string
	err := Walk(testDocument(),
		WithPathHandler(func(wc *WalkContext, item *parser.PathItem) Action {
			assert.False(t, wc.InOperationScope())
			visited = append(visited, "path "+wc.PathTemplate)
			return Continue
		}),
		WithOperationHandler(func(wc *WalkContext, op *parser.Operation) Action {
			assert.True(t, wc.InOperationScope())
			assert.Equal(t, op.Method, wc.Method)
			visited = append(visited, wc.JSONPath)
			return Continue
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"path /pets",
		"$.paths['/pets'].post",
		"$.paths['/pets'].get",
		"path /pets/{id}",
		"$.paths['/pets/{id}'].delete",
		"path /health",
	}, visited)
}

func TestWalk_SkipChildren(t *testing.T) {
	var ops []string
	err := Walk(testDocument(),
		WithPathHandler(func(wc *WalkContext, item *parser.PathItem) Action {
			if item.Template == "/pets" {
				return SkipChildren
			}
			return Continue
		}),
		WithOperationHandler(func(wc *WalkContext, op *parser.Operation) Action {
			ops = append(ops, op.OperationID)
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"deletePet"}, ops)
}

func TestWalk_Stop(t *testing.T) {
	t.Run("from operation handler", func(t *testing.T) {
		var ops []string
		err := Walk(testDocument(),
			WithOperationHandler(func(wc *WalkContext, op *parser.Operation) Action {
				ops = append(ops, op.OperationID)
				return Stop
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"createPet"}, ops)
	})

	t.Run("from path handler", func(t *testing.T) {
		var paths []string
		err := Walk(testDocument(),
			WithPathHandler(func(wc *WalkContext, item *parser.PathItem) Action {
				paths = append(paths, item.Template)
				return Stop
			}),
			WithOperationHandler(func(wc *WalkContext, op *parser.Operation) Action {
				t.Fatalf("operation %s visited after Stop", op.OperationID)
				return Continue
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"/pets"}, paths)
	})
}

func TestWalk_NilDocument(t *testing.T) {
	err := Walk(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil Document")

	err = WalkResult(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil ParseResult")
}

func TestWalkResult(t *testing.T) {
	count := 0
	err := WalkResult(&parser.ParseResult{Document: testDocument()},
		WithOperationHandler(func(wc *WalkContext, op *parser.Operation) Action {
			count++
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestWalk_Context(t *testing.T) {
	t.Run("handlers receive the context", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "value")
		err := Walk(testDocument(),
			WithContext(ctx),
			WithOperationHandler(func(wc *WalkContext, op *parser.Operation) Action {
				assert.Equal(t, "value", wc.Context().Value(key{}))
				return Continue
			}),
		)
		require.NoError(t, err)
	})

	t.Run("default context is background", func(t *testing.T) {
		err := Walk(testDocument(),
			WithOperationHandler(func(wc *WalkContext, op *parser.Operation) Action {
				assert.Equal(t, context.Background(), wc.Context())
				return Stop
			}),
		)
		require.NoError(t, err)
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Walk(testDocument(),
			WithContext(ctx),
			WithPathHandler(func(wc *WalkContext, item *parser.PathItem) Action {
				t.Fatal("no path should be visited")
				return Continue
			}),
		)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAction(t *testing.T) {
	assert.True(t, Continue.IsValid())
	assert.True(t, Stop.IsValid())
	assert.False(t, Action(7).IsValid())
	assert.Equal(t, "SkipChildren", SkipChildren.String())
	assert.Equal(t, "Action(7)", Action(7).String())
}

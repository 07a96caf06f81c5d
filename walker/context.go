package walker

import "context"

// WalkContext provides contextual information about the current node being visited.
type WalkContext struct {
	// JSONPath is the full JSON path to the current node.
	// Example: "$.paths['/pets'].get"
	JSONPath string

	// PathTemplate is the URL path template of the current path item.
	// Example: "/pets/{petId}"
	PathTemplate string

	// Method is the HTTP method when visiting an operation.
	// Empty when visiting a path item. Example: "get", "post"
	Method string

	ctx context.Context
}

// Context returns the context.Context for cancellation and deadline propagation.
// Returns context.Background() if no context was set.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// InOperationScope returns true if currently visiting an operation.
func (wc *WalkContext) InOperationScope() bool {
	return wc.Method != ""
}

// walkState tracks context as we descend through the document.
type walkState struct {
	pathTemplate string
	method       string
	ctx          context.Context
}

// buildContext creates a WalkContext from the current walk state.
func (s *walkState) buildContext(jsonPath string) *WalkContext {
	return &WalkContext{
		JSONPath:     jsonPath,
		PathTemplate: s.pathTemplate,
		Method:       s.method,
		ctx:          s.ctx,
	}
}

// err returns the context error once the walk's context is done.
func (s *walkState) err() error {
	if s.ctx == nil {
		return nil
	}
	return s.ctx.Err()
}

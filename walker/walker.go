package walker

import (
	"context"
	"fmt"

	"github.com/pinglow/apisidebar/internal/pathutil"
	"github.com/pinglow/apisidebar/parser"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// PathHandler is called for each path item, before its operations.
// Returning SkipChildren skips the path item's operations.
type PathHandler func(wc *WalkContext, pathItem *parser.PathItem) Action

// OperationHandler is called for each recognized-method operation.
type OperationHandler func(wc *WalkContext, op *parser.Operation) Action

// Walker traverses a parsed document in source order and calls handlers.
type Walker struct {
	onPath      PathHandler
	onOperation OperationHandler

	ctx     context.Context
	stopped bool
}

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{}
}

// Option configures the Walker.
type Option func(*Walker)

// WithPathHandler sets the handler for path items.
func WithPathHandler(fn PathHandler) Option {
	return func(w *Walker) { w.onPath = fn }
}

// WithOperationHandler sets the handler for operations.
func WithOperationHandler(fn OperationHandler) Option {
	return func(w *Walker) { w.onOperation = fn }
}

// WithContext sets the context handed to handlers through WalkContext.
// The walk stops when ctx is done; Walk then returns ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(w *Walker) { w.ctx = ctx }
}

// Walk traverses doc and calls the registered handlers for each path item
// and operation, in document order.
func Walk(doc *parser.Document, opts ...Option) error {
	if doc == nil {
		return fmt.Errorf("walker: nil Document")
	}

	w := New()
	for _, opt := range opts {
		opt(w)
	}
	return w.walk(doc)
}

// WalkResult is a convenience wrapper that walks result.Document.
func WalkResult(result *parser.ParseResult, opts ...Option) error {
	if result == nil {
		return fmt.Errorf("walker: nil ParseResult")
	}
	return Walk(result.Document, opts...)
}

func (w *Walker) walk(doc *parser.Document) error {
	w.stopped = false
	state := &walkState{ctx: w.ctx}

	for _, item := range doc.Paths {
		if err := state.err(); err != nil {
			return err
		}
		state.pathTemplate = item.Template
		state.method = ""
		itemPath := pathutil.PathItem(item.Template)

		if w.onPath != nil {
			if !w.handleAction(w.onPath(state.buildContext(itemPath), item)) {
				if w.stopped {
					return nil
				}
				continue
			}
		}

		for _, op := range item.Operations {
			if w.onOperation == nil {
				break
			}
			state.method = op.Method
			w.handleAction(w.onOperation(state.buildContext(pathutil.Member(itemPath, op.Method)), op))
			if w.stopped {
				return nil
			}
		}
	}
	return nil
}

// handleAction processes the action returned by a handler.
// Returns true if walking should continue to children.
func (w *Walker) handleAction(action Action) bool {
	switch action {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	default:
		return true
	}
}

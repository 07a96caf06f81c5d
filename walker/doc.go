// Package walker visits the path items and operations of a parsed document.
//
// Handlers are called in document order: each path item first, then its
// operations in the order their method keys appear in the source.
//
//	err := walker.Walk(result.Document,
//	    walker.WithOperationHandler(func(wc *walker.WalkContext, op *parser.Operation) walker.Action {
//	        fmt.Println(wc.JSONPath, op.OperationID)
//	        return walker.Continue
//	    }),
//	)
//
// A PathHandler returning SkipChildren skips that path item's operations;
// any handler returning Stop ends the walk without error.
package walker

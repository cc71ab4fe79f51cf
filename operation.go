package humadocs

import "github.com/danielgtaylor/huma/v2"

// Transform mutates an operation's generated documentation. Transforms are
// applied once, at registration time, before the operation is added to the
// OpenAPI document.
type Transform func(op *huma.Operation)

// RouteInfo returns a Transform that sets an operation's summary and
// description. Use it for routes documented inline rather than through
// docsgen companions.
func RouteInfo(summary, description string) Transform {
	return func(op *huma.Operation) {
		op.Summary = summary
		op.Description = description
	}
}

// Tag returns a Transform that appends a tag to the operation. Appending
// an already-present tag is a no-op.
func Tag(tag string) Transform {
	return func(op *huma.Operation) {
		for _, t := range op.Tags {
			if t == tag {
				return
			}
		}
		op.Tags = append(op.Tags, tag)
	}
}

// Deprecated returns a Transform that marks the operation deprecated.
func Deprecated() Transform {
	return func(op *huma.Operation) {
		op.Deprecated = true
	}
}

// Parameters returns a Transform that appends parameters to the operation.
// See SimpleHeader and SimpleCookie for string-typed parameter builders.
func Parameters(params ...*huma.Param) Transform {
	return func(op *huma.Operation) {
		op.Parameters = append(op.Parameters, params...)
	}
}

// WithDocs applies transforms to a copy of op and returns it. It pairs a
// statically-built operation with its docsgen companion for direct
// huma.Register calls:
//
//	huma.Register(api, humadocs.WithDocs(op, opDocsListUsers()), ListUsers)
func WithDocs(op huma.Operation, docs ...Transform) huma.Operation {
	for _, d := range docs {
		if d != nil {
			d(&op)
		}
	}
	return op
}

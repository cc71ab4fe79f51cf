package humadocs

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// pendingOp is a queued registration: the operation as declared, the
// transforms to apply to it, and the function that realizes it on an API.
type pendingOp struct {
	op       huma.Operation
	docs     []Transform
	register func(api huma.API, op huma.Operation)
}

// Registrar accepts queued route registrations. Implemented by *Router and
// *TagRouter.
type Registrar interface {
	add(p pendingOp)
}

// Router accumulates operations before a huma.API exists. Mount realizes
// the accumulated routes onto an API and consumes the carrier; a mounted
// Router must not be reused.
type Router struct {
	ops []pendingOp
}

// New returns an empty route carrier.
func New() *Router {
	return &Router{}
}

func (r *Router) add(p pendingOp) {
	r.ops = append(r.ops, p)
}

// Nest merges a fully-formed sub-carrier under a path prefix. The
// sub-carrier's own transforms, tags included, are preserved as-is. Nest
// consumes the sub-carrier and returns the receiver for chaining.
func (r *Router) Nest(prefix string, sub *Router) *Router {
	for _, p := range sub.ops {
		p.op.Path = prefix + p.op.Path
		r.ops = append(r.ops, p)
	}
	sub.ops = nil
	return r
}

// Mount applies every queued transform and registers the result on api.
// This is the only way to turn a carrier into servable routes.
func (r *Router) Mount(api huma.API) {
	for _, p := range r.ops {
		op := p.op
		for _, d := range p.docs {
			if d != nil {
				d(&op)
			}
		}
		p.register(api, op)
	}
	r.ops = nil
}

// Add queues a typed operation on a carrier. Transforms run at mount time,
// in order, before registration; a TagRouter appends its tag transform
// after the ones given here.
func Add[I, O any](reg Registrar, op huma.Operation, handler func(ctx context.Context, input *I) (*O, error), docs ...Transform) {
	reg.add(pendingOp{
		op:   op,
		docs: docs,
		register: func(api huma.API, op huma.Operation) {
			huma.Register(api, op, handler)
		},
	})
}

// AddOutput queues an operation whose handler produces an Output. The
// prototype's inferred responses document the operation; the handler's
// returned value produces the wire response. Errors implementing
// huma.StatusError choose their own status, anything else is a 500.
func AddOutput(reg Registrar, op huma.Operation, prototype Output, handler func(ctx huma.Context) (Output, error), docs ...Transform) {
	reg.add(pendingOp{
		op:   op,
		docs: docs,
		register: func(api huma.API, op huma.Operation) {
			oapi := api.OpenAPI()
			DocumentOutput(oapi.Components.Schemas, prototype)(&op)
			oapi.AddOperation(&op)
			api.Adapter().Handle(&op, func(ctx huma.Context) {
				out, err := handler(ctx)
				if err != nil {
					status := http.StatusInternalServerError
					if se, ok := err.(huma.StatusError); ok {
						status = se.GetStatus()
					}
					//nolint:errcheck // best-effort error response
					huma.WriteErr(api, ctx, status, err.Error())
					return
				}
				//nolint:errcheck // best-effort after status is written
				writeOutput(ctx, out)
			})
		},
	})
}

// TagRouter wraps a carrier and stamps a fixed tag onto every route added
// through it. The tag is set at construction and never changes.
type TagRouter struct {
	tag   string
	inner *Router
}

// NewTagRouter returns an empty carrier bound to tag.
func NewTagRouter(tag string) *TagRouter {
	return &TagRouter{tag: tag, inner: New()}
}

func (t *TagRouter) add(p pendingOp) {
	p.docs = append(p.docs, Tag(t.tag))
	t.inner.add(p)
}

// Nest merges a sub-carrier without tag stamping; nested routes keep their
// own tags.
func (t *TagRouter) Nest(prefix string, sub *Router) *TagRouter {
	t.inner.Nest(prefix, sub)
	return t
}

// Router unwraps the accumulated carrier for mounting, consuming the
// TagRouter.
func (t *TagRouter) Router() *Router {
	inner := t.inner
	t.inner = nil
	return inner
}

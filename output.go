package humadocs

import (
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
)

// Output is implemented by values that can serve as a route's response and
// describe that response in the OpenAPI document. The two views must agree
// on status code: what DocResponses reports is what Response emits.
//
// The shim set is closed (NoContent, Bytes, WithHeaders, WithStatus,
// PlainText); wrappers compose by delegating to an inner Output.
type Output interface {
	// Response converts the value to its wire form.
	Response() Response

	// DocResponses reports the documented responses for the value. The
	// registry is used to build subschemas for body types.
	DocResponses(reg huma.Registry) []DocResponse
}

// Response is the wire form produced by an Output: a status code, response
// headers, and a body. Zero-length body means no body is written.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// DocResponse pairs a status code with its documented response.
type DocResponse struct {
	Status   int
	Response *huma.Response
}

// Responses builds an operation's response map from an output's inferred
// documentation. Later entries win on status collisions.
func Responses(reg huma.Registry, out Output) map[string]*huma.Response {
	inferred := out.DocResponses(reg)
	m := make(map[string]*huma.Response, len(inferred))
	for _, dr := range inferred {
		m[strconv.Itoa(dr.Status)] = dr.Response
	}
	return m
}

// DocumentOutput returns a Transform that merges an output's inferred
// responses into the operation, without overwriting responses already
// declared on it.
func DocumentOutput(reg huma.Registry, out Output) Transform {
	return func(op *huma.Operation) {
		if op.Responses == nil {
			op.Responses = map[string]*huma.Response{}
		}
		for code, resp := range Responses(reg, out) {
			if _, ok := op.Responses[code]; !ok {
				op.Responses[code] = resp
			}
		}
	}
}

// ServeOutput writes an output's wire form to w. Headers are set before
// the status is written.
func ServeOutput(w http.ResponseWriter, out Output) error {
	resp := out.Response()
	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.Status)
	if len(resp.Body) == 0 {
		return nil
	}
	_, err := w.Write(resp.Body)
	return err
}

// writeOutput writes an output's wire form through a huma context, for
// operations registered directly on the adapter.
func writeOutput(ctx huma.Context, out Output) error {
	resp := out.Response()
	for k, vs := range resp.Header {
		for _, v := range vs {
			ctx.AppendHeader(k, v)
		}
	}
	ctx.SetStatus(resp.Status)
	if len(resp.Body) == 0 {
		return nil
	}
	_, err := ctx.BodyWriter().Write(resp.Body)
	return err
}

package humadocs

import (
	"net/http"
	"reflect"

	"github.com/danielgtaylor/huma/v2"
)

// NoContent responds with 204 No Content and an empty body.
type NoContent struct{}

// Response always yields 204 with no body, however the value was made.
func (NoContent) Response() Response {
	return Response{Status: http.StatusNoContent, Header: http.Header{}}
}

// DocResponses reports a single 204 response with no body.
func (NoContent) DocResponses(huma.Registry) []DocResponse {
	return []DocResponse{{
		Status:   http.StatusNoContent,
		Response: &huma.Response{Description: "No Content"},
	}}
}

// Bytes is the base raw payload: 200 with an octet-stream body.
type Bytes []byte

func (b Bytes) Response() Response {
	h := http.Header{}
	h.Set("Content-Type", "application/octet-stream")
	return Response{Status: http.StatusOK, Header: h, Body: []byte(b)}
}

func (b Bytes) DocResponses(huma.Registry) []DocResponse {
	return []DocResponse{{
		Status: http.StatusOK,
		Response: &huma.Response{
			Description: "OK",
			Content: map[string]*huma.MediaType{
				"application/octet-stream": {
					Schema: &huma.Schema{Type: huma.TypeString, Format: "binary"},
				},
			},
		},
	}}
}

// WithHeaders emits the inner output's response with extra headers merged
// in. On a key conflict the wrapper's values replace the inner ones.
// Headers are not separately documented; inference delegates to the inner
// output unmodified.
type WithHeaders struct {
	Header http.Header
	Inner  Output
}

func (h WithHeaders) Response() Response {
	resp := h.Inner.Response()
	merged := http.Header{}
	for k, vs := range resp.Header {
		merged[k] = append([]string(nil), vs...)
	}
	for k, vs := range h.Header {
		merged.Del(k)
		for _, v := range vs {
			merged.Add(k, v)
		}
	}
	resp.Header = merged
	return resp
}

func (h WithHeaders) DocResponses(reg huma.Registry) []DocResponse {
	return h.Inner.DocResponses(reg)
}

// WithStatus emits the inner output's response with the status code
// overridden. Inference re-keys the inner output's documented responses to
// the override so the documented and emitted codes cannot disagree.
type WithStatus struct {
	Status int
	Inner  Output
}

func (s WithStatus) Response() Response {
	resp := s.Inner.Response()
	resp.Status = s.Status
	return resp
}

func (s WithStatus) DocResponses(reg huma.Registry) []DocResponse {
	inferred := s.Inner.DocResponses(reg)
	for i := range inferred {
		inferred[i].Status = s.Status
	}
	return inferred
}

// PlainText passes the inner output through unchanged at runtime but
// documents exactly one response: 200 with a text/plain string body,
// overriding whatever the inner output would report.
type PlainText struct {
	Inner Output
}

// Text wraps a string as a plain-text output over the default raw payload.
func Text(s string) PlainText {
	return PlainText{Inner: Bytes(s)}
}

func (p PlainText) Response() Response {
	return p.Inner.Response()
}

func (p PlainText) DocResponses(reg huma.Registry) []DocResponse {
	return []DocResponse{{
		Status: http.StatusOK,
		Response: &huma.Response{
			Description: "plain text",
			Content: map[string]*huma.MediaType{
				"text/plain": {
					Schema: reg.Schema(reflect.TypeOf(""), true, ""),
				},
			},
		},
	}}
}

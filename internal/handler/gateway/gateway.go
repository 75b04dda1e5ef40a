// Package gateway serves the booking operations behind an API Gateway
// proxy integration. Every response is a {statusCode, body} envelope and
// every failure, regardless of cause, is reported as 400 with a
// {"message": ...} body.
package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// Request is the transport-neutral shape of an incoming proxy event.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    string

	pathParams map[string]string
}

// PathParam returns the value captured for a {name} segment of the
// matched route pattern.
func (r *Request) PathParam(name string) string {
	return r.pathParams[name]
}

// Header performs a case-insensitive lookup; API Gateway does not
// normalize header casing.
func (r *Request) Header(name string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type HandlerFunc func(ctx context.Context, req *Request) Response

type route struct {
	method      string
	segments    []string
	requireAuth bool
	handler     HandlerFunc
}

// Router dispatches proxy events against a declarative route table.
// Patterns use {name} segments, e.g. /tables/{number}.
type Router struct {
	routes []route
	auth   *AuthGate
}

func NewRouter(auth *AuthGate) *Router {
	return &Router{auth: auth}
}

func (r *Router) Handle(method, pattern string, requireAuth bool, h HandlerFunc) {
	r.routes = append(r.routes, route{
		method:      method,
		segments:    splitPath(pattern),
		requireAuth: requireAuth,
		handler:     h,
	})
}

// Dispatch matches the event against the route table and runs the
// handler behind the auth gate.
func (r *Router) Dispatch(ctx context.Context, req *Request) Response {
	segments := splitPath(req.Path)

	for _, rt := range r.routes {
		if rt.method != req.Method {
			continue
		}
		params, ok := matchSegments(rt.segments, segments)
		if !ok {
			continue
		}
		req.pathParams = params

		if rt.requireAuth {
			if resp, ok := r.auth.Check(req); !ok {
				return resp
			}
		}
		return rt.handler(ctx, req)
	}

	return Fail("unknown route: " + req.Method + " " + req.Path)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchSegments(pattern, actual []string) (map[string]string, bool) {
	if len(pattern) != len(actual) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range pattern {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if params == nil {
				params = make(map[string]string)
			}
			params[seg[1:len(seg)-1]] = actual[i]
			continue
		}
		if seg != actual[i] {
			return nil, false
		}
	}
	return params, true
}

// OK renders a 200 envelope with the payload serialized as the body.
func OK(payload any) Response {
	body, err := json.Marshal(payload)
	if err != nil {
		return Fail("failed to encode response")
	}
	return Response{StatusCode: http.StatusOK, Body: string(body)}
}

// Fail renders the uniform rejection: 400 with a {"message"} body.
func Fail(message string) Response {
	body, _ := json.Marshal(map[string]string{"message": message})
	return Response{StatusCode: http.StatusBadRequest, Body: string(body)}
}

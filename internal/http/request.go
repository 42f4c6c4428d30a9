package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Request describes a GET request relative to a client's base URL.
type Request struct {
	Method      string
	Path        string
	QueryParams url.Values
}

// NewRequest creates a new HTTP request
func NewRequest(method, path string) *Request {
	return &Request{
		Method:      method,
		Path:        path,
		QueryParams: make(url.Values),
	}
}

// WithQueryParams merges every value of params into the request.
func (r *Request) WithQueryParams(params url.Values) *Request {
	for key, values := range params {
		for _, value := range values {
			r.QueryParams.Add(key, value)
		}
	}
	return r
}

// URL resolves the request against baseURL. An empty Path keeps the base
// path untouched, trailing slash included.
func (r *Request) URL(baseURL string) (*url.URL, error) {
	reqURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	if r.Path != "" {
		if reqURL.Path == "" {
			reqURL.Path = r.Path
		} else {
			reqURL.Path = strings.TrimRight(reqURL.Path, "/") + "/" + strings.TrimLeft(r.Path, "/")
		}
	}

	query := reqURL.Query()
	for key, values := range r.QueryParams {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	reqURL.RawQuery = query.Encode()

	return reqURL, nil
}

// Build constructs an http.Request bound to ctx.
func (r *Request) Build(ctx context.Context, baseURL string) (*http.Request, error) {
	reqURL, err := r.URL(baseURL)
	if err != nil {
		return nil, err
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	return http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
}

package randomuser

import (
	"encoding/json"
	"fmt"
	"strings"

	rhttp "github.com/wesleyorama2/randomuser/internal/http"
)

// parseResponse classifies a response by its declared content type. The
// upstream reports business errors as text/plain and results as JSON; the
// status code is not consulted.
func parseResponse(resp *rhttp.Response, validate bool) (*Response, error) {
	contentType, ok := resp.ContentType()
	if !ok {
		return nil, formatError(errMissingContentType)
	}

	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "text/plain"):
		return &Response{Error: resp.Text()}, nil
	case strings.Contains(ct, "application/json"):
		return decodeEnvelope(resp.Body, validate)
	default:
		return nil, formatError(fmt.Errorf("unexpected content-type %q", contentType))
	}
}

func decodeEnvelope(body []byte, validate bool) (*Response, error) {
	var rsp Response
	if err := json.Unmarshal(body, &rsp); err != nil {
		return nil, formatError(err)
	}
	if rsp.IsError() || !validate {
		return &rsp, nil
	}

	s, err := resultSchema()
	if err != nil {
		return nil, formatError(err)
	}
	if err := s.Validate(body); err != nil {
		return nil, formatError(err)
	}
	return &rsp, nil
}

// reconcile overwrites the gender of every user with the requested one, or
// with an independent random pick per user when no gender was requested.
func (b Builder) reconcile(res *Result) {
	for i := range res.Users {
		if b.gender != nil {
			res.Users[i].Gender = b.gender.Clone()
		} else {
			res.Users[i].Gender = b.gen.pickGender()
		}
	}
}

package randomuser

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixture returns testdata/result.json, optionally edited through fn.
func fixture(t *testing.T, fn func(doc map[string]any)) []byte {
	t.Helper()

	raw, err := os.ReadFile("testdata/result.json")
	require.NoError(t, err)
	if fn == nil {
		return raw
	}

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	fn(doc)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	return out
}

// keepUsers truncates the fixture's results to the first n users.
func keepUsers(n int) func(map[string]any) {
	return func(doc map[string]any) {
		users := doc["results"].([]any)
		doc["results"] = users[:n]
		doc["info"].(map[string]any)["results"] = n
	}
}

// upstream is a fake API that records the queries it receives.
type upstream struct {
	*httptest.Server

	mu      sync.Mutex
	queries []map[string][]string
}

func newUpstream(t *testing.T, contentType string, body []byte) *upstream {
	t.Helper()

	u := &upstream{}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.queries = append(u.queries, r.URL.Query())
		u.mu.Unlock()

		if contentType == "" {
			w.Header()["Content-Type"] = nil
		} else {
			w.Header().Set("Content-Type", contentType)
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(u.Close)
	return u
}

func (u *upstream) lastQuery(t *testing.T) map[string][]string {
	t.Helper()
	u.mu.Lock()
	defer u.mu.Unlock()
	require.NotEmpty(t, u.queries, "upstream received no request")
	return u.queries[len(u.queries)-1]
}

func (u *upstream) generator(opts ...Option) *Generator {
	return NewGenerator(append([]Option{WithBaseURL(u.URL + "/api/1.4/")}, opts...)...)
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return c
}

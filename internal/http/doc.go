// Package http is the transport used by the randomuser client: a small
// net/http wrapper with functional options, a query-parameter request
// builder and fully read responses carrying phase timings.
//
//	client := http.NewClient(
//	    http.WithBaseURL("https://randomuser.me/api/1.4/"),
//	    http.WithTimeout(10*time.Second),
//	)
//
//	req := http.NewRequest("GET", "").WithQueryParams(url.Values{"results": {"5"}})
//	resp, err := client.Do(ctx, req)
package http

package randomuser

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	rhttp "github.com/wesleyorama2/randomuser/internal/http"
)

// Query parameter names understood by the upstream.
const (
	paramNationality = "nat"
	paramSeed        = "seed"
	paramPassword    = "password"
	paramResults     = "results"
)

// Builder accumulates filters for one request. It is a value: every filter
// method returns a new Builder and leaves the receiver untouched, so a
// partially configured Builder can be reused as a template. Builders come
// from Generator.Get; fetching from a zero Builder fails with ErrNoGenerator.
type Builder struct {
	gen    *Generator
	query  url.Values
	gender *Gender
}

func (b Builder) clone() Builder {
	out := Builder{gen: b.gen, query: make(url.Values, len(b.query)+1)}
	for k, v := range b.query {
		out.query[k] = append([]string(nil), v...)
	}
	if b.gender != nil {
		g := b.gender.Clone()
		out.gender = &g
	}
	return out
}

func (b Builder) add(key, value string) Builder {
	out := b.clone()
	out.query.Add(key, value)
	return out
}

func (b Builder) set(key, value string) Builder {
	out := b.clone()
	out.query.Set(key, value)
	return out
}

// Gender requests users of the given identities.
//
// The upstream does not filter by these identities. Instead, every returned
// user has its Gender replaced with exactly this set after decoding, whatever
// the upstream put in that field. Without a Gender filter each user gets an
// independently chosen random identity. Calling Gender with no arguments
// requests users with an unspecified gender.
func (b Builder) Gender(ids ...GenderIdentity) Builder {
	return b.WithGender(NewGender(ids...))
}

// WithGender is like Gender but takes a full Gender, trans flag included.
func (b Builder) WithGender(g Gender) Builder {
	out := b.clone()
	g = g.Clone()
	out.gender = &g
	return out
}

// Nationality adds one nationality to the request.
func (b Builder) Nationality(n Nationality) Builder {
	return b.add(paramNationality, n.Code())
}

// Nationalities requests users drawn from any of ns, picked per user by the
// upstream. An empty list leaves the request unchanged.
func (b Builder) Nationalities(ns ...Nationality) Builder {
	if len(ns) == 0 {
		return b.clone()
	}
	return b.add(paramNationality, joinCodes(ns))
}

// Seed makes generation reproducible: the same seed yields the same users.
// The upstream may ignore other filters when a seed is set.
func (b Builder) Seed(seed string) Builder {
	return b.set(paramSeed, seed)
}

// Password sets the password policy, forwarded verbatim. The upstream format
// is CHARSETS,MIN-MAX or CHARSETS,MAX where CHARSETS is a comma separated mix
// of special, upper, lower and number; for example "upper,lower,8-16".
// Lengths default to 8-64.
func (b Builder) Password(spec string) Builder {
	return b.set(paramPassword, spec)
}

// Query returns a copy of the query parameters that will be sent, excluding
// the result count.
func (b Builder) Query() url.Values {
	return b.clone().query
}

// RequestedGender returns the gender filter, if one was set.
func (b Builder) RequestedGender() (Gender, bool) {
	if b.gender == nil {
		return Gender{}, false
	}
	return b.gender.Clone(), true
}

func (b Builder) count(n int) Builder {
	return b.set(paramResults, strconv.Itoa(n))
}

// Fetch returns n users. Batch info is dropped.
func (b Builder) Fetch(ctx context.Context, n int) ([]User, error) {
	res, err := b.count(n).request(ctx)
	if err != nil {
		return nil, err
	}
	return res.Users, nil
}

// FetchOne returns a single user, or ErrEmptyBatch if the upstream sent none.
func (b Builder) FetchOne(ctx context.Context) (User, error) {
	users, err := b.Fetch(ctx, 1)
	if err != nil {
		return User{}, err
	}
	if len(users) == 0 {
		return User{}, ErrEmptyBatch
	}
	return users[0], nil
}

// FetchWithInfo returns n users along with the batch info.
func (b Builder) FetchWithInfo(ctx context.Context, n int) (*Result, error) {
	return b.count(n).request(ctx)
}

func (b Builder) request(ctx context.Context) (*Result, error) {
	if b.gen == nil {
		return nil, ErrNoGenerator
	}
	req := rhttp.NewRequest(http.MethodGet, "").WithQueryParams(b.query)

	resp, err := b.gen.client.Do(ctx, req)
	if err != nil {
		return nil, transportError(err)
	}

	rsp, err := parseResponse(resp, b.gen.validate)
	b.gen.logger.Debug("randomuser request",
		"query", b.query.Encode(),
		"status", resp.StatusCode,
		"content_type", resp.GetHeader("Content-Type"),
		"dns", resp.Timing.DNSLookupTime,
		"connect", resp.Timing.TCPConnectTime,
		"tls", resp.Timing.TLSHandshakeTime,
		"ttfb", resp.Timing.TimeToFirstByte,
		"duration", resp.Timing.TotalTime,
	)
	if err != nil {
		return nil, err
	}
	if rsp.IsError() {
		return nil, apiError(rsp.Error)
	}

	b.reconcile(rsp.Result)
	return rsp.Result, nil
}

package randomuser

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_FiltersDoNotMutateReceiver(t *testing.T) {
	gen := NewGenerator()
	base := gen.Get().Nationality(French)

	withSeed := base.Seed("abc")
	withGender := base.Gender(Female)

	assert.Equal(t, []string{"FR"}, base.Query()["nat"])
	assert.Empty(t, base.Query().Get("seed"))
	_, ok := base.RequestedGender()
	assert.False(t, ok)

	assert.Equal(t, "abc", withSeed.Query().Get("seed"))
	assert.Equal(t, []string{"FR"}, withSeed.Query()["nat"])

	g, ok := withGender.RequestedGender()
	require.True(t, ok)
	assert.True(t, NewGender(Female).Equal(g))
	assert.Empty(t, withGender.Query().Get("seed"))
}

func TestBuilder_QueryReturnsCopy(t *testing.T) {
	b := NewGenerator().Get().Seed("abc")
	q := b.Query()
	q.Set("seed", "changed")
	assert.Equal(t, "abc", b.Query().Get("seed"))
}

func TestBuilder_Nationalities(t *testing.T) {
	tests := []struct {
		name string
		in   []Nationality
		want []string
	}{
		{name: "one", in: []Nationality{Swiss}, want: []string{"CH"}},
		{name: "several", in: []Nationality{Australian, Brazilian, Canadian}, want: []string{"AU,BR,CA"}},
		{name: "all", in: Nationalities(), want: []string{"AU,BR,CA,CH,DE,DK,ES,FI,FR,GB,IE,IN,IR,MX,NL,NO,NZ,RS,TR,UA,US"}},
		{name: "empty leaves request unchanged", in: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewGenerator().Get().Nationalities(tt.in...).Query()
			assert.Equal(t, tt.want, q["nat"])
			for _, v := range q["nat"] {
				assert.False(t, strings.HasSuffix(v, ","), "trailing separator in %q", v)
			}
		})
	}
}

func TestBuilder_PasswordAndSeedForwardedVerbatim(t *testing.T) {
	q := NewGenerator().Get().
		Password("upper,lower,special,12-24").
		Seed("foo bar&baz").
		Password("number,8").
		Query()

	assert.Equal(t, []string{"number,8"}, q["password"])
	assert.Equal(t, []string{"foo bar&baz"}, q["seed"])
}

func TestBuilder_FetchSendsQuery(t *testing.T) {
	up := newUpstream(t, "application/json", fixture(t, nil))

	_, err := up.generator().Get().
		Gender(Male).
		Nationalities(Danish, Finnish).
		Seed("s33d").
		Password("lower,10").
		Fetch(testContext(t), 2)
	require.NoError(t, err)

	q := up.lastQuery(t)
	assert.Equal(t, []string{"DK,FI"}, q["nat"])
	assert.Equal(t, []string{"s33d"}, q["seed"])
	assert.Equal(t, []string{"lower,10"}, q["password"])
	assert.Equal(t, []string{"2"}, q["results"])
	assert.NotContains(t, q, "gender")
}

func TestBuilder_FetchWithInfo(t *testing.T) {
	up := newUpstream(t, "application/json", fixture(t, nil))

	res, err := up.generator().FetchWithInfo(testContext(t), 2)
	require.NoError(t, err)
	assert.Len(t, res.Users, 2)
	assert.Equal(t, "56d27f4a53bd5441", res.Info.Seed)
	assert.Equal(t, "1.4", res.Info.Version)
}

func TestBuilder_ReconcilesRequestedGender(t *testing.T) {
	up := newUpstream(t, "application/json", fixture(t, nil))

	users, err := up.generator().Get().Gender(NonBinary, Queer).Fetch(testContext(t), 2)
	require.NoError(t, err)
	require.Len(t, users, 2)

	want := NewGender(NonBinary, Queer)
	for _, u := range users {
		assert.True(t, want.Equal(u.Gender), "user %s has gender %s", u.Name.Full(), u.Gender)
	}

	users[0].Gender.Genders[0] = Male
	assert.Equal(t, NonBinary, users[1].Gender.Genders[0], "users share gender memory")
}

func TestBuilder_ReconcilesEmptyGenderFilter(t *testing.T) {
	up := newUpstream(t, "application/json", fixture(t, nil))

	users, err := up.generator().Get().Gender().Fetch(testContext(t), 2)
	require.NoError(t, err)
	for _, u := range users {
		assert.True(t, u.Gender.IsUnspecified())
	}
}

func TestBuilder_UnfilteredGenderPickedPerUser(t *testing.T) {
	up := newUpstream(t, "application/json", fixture(t, nil))

	gen := up.generator()
	var calls atomic.Int32
	picks := []Gender{NewGender(Agender), NewGender(Other)}
	gen.pickGender = func() Gender {
		n := calls.Add(1)
		return picks[(n-1)%2]
	}

	users, err := gen.Fetch(testContext(t), 2)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, int32(2), calls.Load())
	assert.True(t, NewGender(Agender).Equal(users[0].Gender))
	assert.True(t, NewGender(Other).Equal(users[1].Gender))
}

func TestBuilder_FetchOne(t *testing.T) {
	up := newUpstream(t, "application/json", fixture(t, keepUsers(1)))

	user, err := up.generator().FetchOne(testContext(t))
	require.NoError(t, err)
	assert.Equal(t, "jennie.nichols@example.com", user.Email)
	assert.Equal(t, []string{"1"}, up.lastQuery(t)["results"])
}

func TestBuilder_FetchOneEmptyBatch(t *testing.T) {
	up := newUpstream(t, "application/json", fixture(t, keepUsers(0)))

	_, err := up.generator().Get().Nationality(Indian).FetchOne(testContext(t))
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestBuilder_FetchZero(t *testing.T) {
	up := newUpstream(t, "application/json", fixture(t, keepUsers(0)))

	users, err := up.generator().Fetch(testContext(t), 0)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, []string{"0"}, up.lastQuery(t)["results"])
}

func TestBuilder_APIError(t *testing.T) {
	up := newUpstream(t, "text/plain; charset=utf-8", []byte("Error: problem"))

	_, err := up.generator().Fetch(testContext(t), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPI)

	msg, ok := APIMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Error: problem", msg)
}

func TestBuilder_APIErrorIgnoresStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Uh oh, something has gone wrong."}`))
	}))
	defer srv.Close()

	_, err := NewGenerator(WithBaseURL(srv.URL)).FetchOne(testContext(t))
	msg, ok := APIMessage(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "Uh oh, something has gone wrong.", msg)
}

func TestBuilder_MissingContentType(t *testing.T) {
	up := newUpstream(t, "", fixture(t, nil))

	_, err := up.generator().Fetch(testContext(t), 2)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestBuilder_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewGenerator(WithBaseURL(url)).Fetch(testContext(t), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestBuilder_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewGenerator(WithBaseURL(srv.URL)).Fetch(c, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestGenerator_Headers(t *testing.T) {
	var gotUA, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotKey = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("nope"))
	}))
	defer srv.Close()

	gen := NewGenerator(
		WithBaseURL(srv.URL),
		WithUserAgent("randomuser-test"),
		WithHeader("X-Api-Key", "k"),
		WithTimeout(time.Second),
	)
	_, _ = gen.FetchOne(testContext(t))

	assert.Equal(t, "randomuser-test", gotUA)
	assert.Equal(t, "k", gotKey)
}

func TestGenerator_Defaults(t *testing.T) {
	gen := NewGenerator()
	assert.Equal(t, DefaultBaseURL, gen.BaseURL())
	assert.True(t, gen.validate)
}

func TestGenerator_ConcurrentFetches(t *testing.T) {
	up := newUpstream(t, "application/json", fixture(t, nil))
	gen := up.generator()

	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := gen.Get().Gender(Female).Fetch(context.Background(), 2)
			errs <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-errs)
	}
}

func TestBuilder_ZeroValueFetchFails(t *testing.T) {
	var b Builder

	_, err := b.Nationality(French).Fetch(testContext(t), 1)
	assert.ErrorIs(t, err, ErrNoGenerator)

	_, err = b.FetchOne(testContext(t))
	assert.ErrorIs(t, err, ErrNoGenerator)
}

func TestGenerator_LogsRequestTimings(t *testing.T) {
	up := newUpstream(t, "application/json", fixture(t, nil))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := up.generator(WithLogger(logger)).Fetch(testContext(t), 2)
	require.NoError(t, err)

	line := buf.String()
	for _, key := range []string{"query=", "status=200", "dns=", "connect=", "ttfb=", "duration="} {
		assert.Contains(t, line, key)
	}
	assert.NotContains(t, line, "duration=0s")
}

func TestGenerator_WithHTTPClientLeavesCallerClient(t *testing.T) {
	up := newUpstream(t, "application/json", fixture(t, nil))
	hc := &http.Client{}

	gen := up.generator(WithHTTPClient(hc), WithTimeout(5*time.Second))
	_, err := gen.Fetch(testContext(t), 1)
	require.NoError(t, err)
	assert.Zero(t, hc.Timeout)
}

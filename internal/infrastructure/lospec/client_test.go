package lospec

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/palette"
)

func newServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFetchDecodesPalette(t *testing.T) {
	t.Parallel()

	srv, hits := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/palette-list/slug36.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Demo","author":"someone","colors":["FF0000","00FF00"]}`))
	})

	client := NewClient(srv.URL + "/palette-list")
	p, err := client.Fetch(context.Background(), palette.SourceID{Slug: "slug36"})
	require.NoError(t, err)
	assert.Equal(t, palette.Palette{Name: "Demo", Author: "someone", Colors: []string{"FF0000", "00FF00"}}, p)
	assert.EqualValues(t, 1, atomic.LoadInt32(hits))
}

func TestFetchTwiceYieldsEqualPalettes(t *testing.T) {
	t.Parallel()

	srv, hits := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Demo","colors":["FF0000","00FF00"]}`))
	})

	client := NewClient(srv.URL)
	first, err := client.Fetch(context.Background(), palette.SourceID{Slug: "demo"})
	require.NoError(t, err)
	second, err := client.Fetch(context.Background(), palette.SourceID{Slug: "demo"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 2, atomic.LoadInt32(hits))
}

func TestFetchClassifiesNotFound(t *testing.T) {
	t.Parallel()

	srv, hits := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := NewClient(srv.URL).Fetch(context.Background(), palette.SourceID{Slug: "missing"})
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, KindNotFound, fetchErr.Kind)
	assert.Equal(t, http.StatusNotFound, fetchErr.Status)
	assert.Equal(t, MessageNotFound, fetchErr.UserMessage())
	assert.True(t, errors.Is(err, ErrFetch))
	assert.EqualValues(t, 1, atomic.LoadInt32(hits), "no retries")
}

func TestFetchClassifiesOtherStatuses(t *testing.T) {
	t.Parallel()

	srv, hits := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := NewClient(srv.URL).Fetch(context.Background(), palette.SourceID{Slug: "boom"})
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, KindHTTP, fetchErr.Kind)
	assert.Equal(t, 500, fetchErr.Status)
	assert.Equal(t, "Error 500: Internal Server Error.", fetchErr.UserMessage())
	assert.EqualValues(t, 1, atomic.LoadInt32(hits), "no retries")
}

func TestFetchMalformedBodiesAreNetworkErrors(t *testing.T) {
	t.Parallel()

	bodies := []string{
		`not json`,
		`{"colors":["FF0000"]}`,
		`{"name":"Demo"}`,
		`{"name":"Demo","colors":[1,2,3]}`,
		`{"name":"","colors":[]}`,
	}

	for _, body := range bodies {
		body := body
		srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})

		_, err := NewClient(srv.URL).Fetch(context.Background(), palette.SourceID{Slug: "demo"})
		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr), body)
		assert.Equal(t, KindNetwork, fetchErr.Kind, body)
		assert.Equal(t, MessageNetwork, fetchErr.UserMessage(), body)
	}
}

func TestFetchTransportFailureIsNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	_, err := NewClient(base, WithTimeout(time.Second)).Fetch(context.Background(), palette.SourceID{Slug: "demo"})
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, KindNetwork, fetchErr.Kind)
	assert.NotNil(t, fetchErr.Err)
}

func TestFetchTimeoutIsNetworkError(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	_, err := NewClient(srv.URL, WithTimeout(50*time.Millisecond)).Fetch(context.Background(), palette.SourceID{Slug: "slow"})
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, KindNetwork, fetchErr.Kind)
}

func TestNewClientDefaultsToLospec(t *testing.T) {
	t.Parallel()

	assert.Equal(t, palette.DefaultBaseURL, NewClient("").BaseURL)
	assert.Equal(t, "http://example.test/list", NewClient(" http://example.test/list/ ").BaseURL)
}

package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	store map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	payload, ok := f.store[key]
	return payload, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, payload []byte) error {
	f.store[key] = payload
	return nil
}

func TestFetchFromUpstreamAndCache(t *testing.T) {
	var gotUA string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"articles":[{"title":"new IT rules notified"}]}`))
	}))
	defer upstream.Close()

	cache := newFakeCache()
	client := NewClient(upstream.URL, cache, nil)

	payload, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(payload), "new IT rules notified")
	assert.Equal(t, "CYBERLAW_CHATBOT/1.0", gotUA)

	// Second fetch is served from cache even if upstream goes away.
	upstream.Close()
	payload, err = client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(payload), "new IT rules notified")
}

func TestFetchErrorWhenColdAndUpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, newFakeCache(), nil)
	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchRejectsInvalidJSON(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer upstream.Close()

	cache := newFakeCache()
	client := NewClient(upstream.URL, cache, nil)
	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
	assert.Empty(t, cache.store)
}

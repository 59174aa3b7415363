package content_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/wordblocks/internal/content"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestDeckCycles(t *testing.T) {
	pairs := []content.Pair{
		{Word: "a", Definition: "first"},
		{Word: "b", Definition: "second"},
	}
	deck := content.NewDeck(pairs)

	assert.Equal(t, 2, deck.Len())
	assert.Equal(t, "a", deck.Next().Word)
	assert.Equal(t, "b", deck.Next().Word)
	assert.Equal(t, "a", deck.Next().Word)

	deck.Rewind()
	assert.Equal(t, "a", deck.Next().Word)

	def, ok := deck.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, "second", def)
}

func TestDeckCopiesInput(t *testing.T) {
	pairs := []content.Pair{{Word: "a"}}
	deck := content.NewDeck(pairs)
	pairs[0].Word = "mutated"

	assert.Equal(t, "a", deck.Next().Word)
}

func TestEmptyDeckYieldsPlaceholder(t *testing.T) {
	deck := content.NewDeck(nil)
	for i := 0; i < 3; i++ {
		assert.Equal(t, content.Placeholder, deck.Next())
	}
}

func TestEmbeddedProvider(t *testing.T) {
	p := content.EmbeddedProvider{}

	pairs, err := p.Fetch(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, pairs)

	pairs, err = p.Fetch(context.Background(), "Science")
	require.NoError(t, err)
	assert.NotEmpty(t, pairs)

	_, err = p.Fetch(context.Background(), "astrology")
	assert.Error(t, err)

	assert.Contains(t, content.Topics(), "general")
}

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	data := []byte(`topics:
  birds:
    - word: "  heron  "
      definition: wading bird
    - word: ""
      definition: dropped
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	pairs, err := content.FileProvider{Path: path}.Fetch(context.Background(), "birds")
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "heron", pairs[0].Word)

	_, err = content.FileProvider{Path: filepath.Join(t.TempDir(), "missing.yaml")}.Fetch(context.Background(), "birds")
	assert.Error(t, err)
}

func TestHTTPProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("topic") != "space" {
			http.Error(w, "no such topic", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]content.Pair{ //nolint:errcheck
			{Word: "nebula", Definition: "interstellar cloud"},
			{Word: "quasar", Definition: "luminous galactic nucleus"},
		})
	}))
	defer srv.Close()

	p := content.HTTPProvider{URL: srv.URL, Client: srv.Client()}

	pairs, err := p.Fetch(context.Background(), "space")
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "nebula", pairs[0].Word)

	_, err = p.Fetch(context.Background(), "oceans")
	assert.Error(t, err)
}

func TestResolveSuccess(t *testing.T) {
	p := content.ProviderFunc(func(ctx context.Context, topic string) ([]content.Pair, error) {
		return []content.Pair{{Word: topic, Definition: "echo"}}, nil
	})

	deck := content.Resolve(context.Background(), p, "echo", time.Second, quietLogger())
	require.Equal(t, 1, deck.Len())
	assert.Equal(t, "echo", deck.Next().Word)
}

func TestResolveFallback(t *testing.T) {
	tests := []struct {
		name     string
		provider content.Provider
		timeout  time.Duration
	}{
		{
			name: "error",
			provider: content.ProviderFunc(func(ctx context.Context, topic string) ([]content.Pair, error) {
				return nil, errors.New("boom")
			}),
			timeout: time.Second,
		},
		{
			name: "empty",
			provider: content.ProviderFunc(func(ctx context.Context, topic string) ([]content.Pair, error) {
				return []content.Pair{{Word: "   "}}, nil
			}),
			timeout: time.Second,
		},
		{
			name: "timeout",
			provider: content.ProviderFunc(func(ctx context.Context, topic string) ([]content.Pair, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}),
			timeout: 10 * time.Millisecond,
		},
		{
			name: "ignores context",
			provider: content.ProviderFunc(func(ctx context.Context, topic string) ([]content.Pair, error) {
				time.Sleep(200 * time.Millisecond)
				return []content.Pair{{Word: "late"}}, nil
			}),
			timeout: 10 * time.Millisecond,
		},
		{
			name:     "nil provider",
			provider: nil,
			timeout:  time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			deck := content.Resolve(context.Background(), tt.provider, "any", tt.timeout, quietLogger())

			assert.Less(t, time.Since(start), 150*time.Millisecond)
			assert.Equal(t, 0, deck.Len())
			assert.Equal(t, content.Placeholder, deck.Next())
		})
	}
}

func TestResolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := content.ProviderFunc(func(ctx context.Context, topic string) ([]content.Pair, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	deck := content.Resolve(ctx, p, "any", time.Minute, quietLogger())
	assert.Equal(t, content.Placeholder, deck.Next())
}

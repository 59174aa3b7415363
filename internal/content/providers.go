package content

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/vocabulary.yaml
var embeddedVocabulary []byte

// vocabularyFile is the YAML schema shared by the embedded and file providers.
type vocabularyFile struct {
	Topics map[string][]Pair `yaml:"topics"`
}

func parseVocabulary(data []byte) (map[string][]Pair, error) {
	var vf vocabularyFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, fmt.Errorf("content: parse vocabulary: %w", err)
	}
	return vf.Topics, nil
}

func pickTopic(topics map[string][]Pair, topic string) ([]Pair, error) {
	if topic == "" {
		topic = DefaultTopic
	}
	pairs, ok := topics[strings.ToLower(topic)]
	if !ok {
		return nil, fmt.Errorf("content: unknown topic %q", topic)
	}
	return clean(pairs), nil
}

// EmbeddedProvider serves the vocabulary decks compiled into the binary.
type EmbeddedProvider struct{}

// Fetch returns the built-in deck for topic.
func (EmbeddedProvider) Fetch(ctx context.Context, topic string) ([]Pair, error) {
	topics, err := parseVocabulary(embeddedVocabulary)
	if err != nil {
		return nil, err
	}
	return pickTopic(topics, topic)
}

// Topics lists the built-in topics in alphabetical order.
func Topics() []string {
	topics, err := parseVocabulary(embeddedVocabulary)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(topics))
	for name := range topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileProvider reads decks from a YAML file with the same schema as the
// built-in vocabulary.
type FileProvider struct {
	Path string
}

// Fetch reads Path and returns the deck for topic.
func (p FileProvider) Fetch(ctx context.Context, topic string) ([]Pair, error) {
	path := p.Path
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	topics, err := parseVocabulary(data)
	if err != nil {
		return nil, err
	}
	return pickTopic(topics, topic)
}

// HTTPProvider fetches a JSON array of pairs from URL?topic=<topic>.
type HTTPProvider struct {
	URL    string
	Client *http.Client
}

// Fetch performs the request. Any non-2xx response is an error.
func (p HTTPProvider) Fetch(ctx context.Context, topic string) ([]Pair, error) {
	u, err := url.Parse(p.URL)
	if err != nil {
		return nil, fmt.Errorf("content: parse url: %w", err)
	}
	if topic != "" {
		q := u.Query()
		q.Set("topic", topic)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("content: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content: fetch: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("content: fetch: unexpected status %s", resp.Status)
	}

	var pairs []Pair
	if err := json.NewDecoder(resp.Body).Decode(&pairs); err != nil {
		return nil, fmt.Errorf("content: decode response: %w", err)
	}
	return clean(pairs), nil
}

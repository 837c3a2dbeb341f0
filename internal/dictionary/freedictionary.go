package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	DefaultBaseURL  = "https://api.dictionaryapi.dev/api/v2/entries/en"
	DefaultTimeout  = 10 * time.Second
	DefaultInterval = 500 * time.Millisecond
)

// FreeDictionaryClient implements Client using the Free Dictionary API.
// API docs: https://dictionaryapi.dev/
type FreeDictionaryClient struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rateLimiter
}

type rateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

func (r *rateLimiter) wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if since := time.Since(r.lastCall); since < r.interval {
		timer := time.NewTimer(r.interval - since)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	r.lastCall = time.Now()
	return nil
}

// NewFreeDictionaryClient creates a client for baseURL. An empty baseURL
// uses DefaultBaseURL, a zero timeout DefaultTimeout.
func NewFreeDictionaryClient(baseURL string, timeout time.Duration) *FreeDictionaryClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &FreeDictionaryClient{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		rateLimiter: newRateLimiter(DefaultInterval),
	}
}

func (c *FreeDictionaryClient) Name() string {
	return "freedictionary"
}

// Lookup fetches definitions for term. It returns ErrNotFound when the API
// has no entry.
func (c *FreeDictionaryClient) Lookup(ctx context.Context, term string) (*LookupResult, error) {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return nil, fmt.Errorf("empty term")
	}

	if err := c.rateLimiter.wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(term))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Wordbank/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch definition: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, term)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResponse []freeDictionaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(apiResponse) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, term)
	}

	return c.convertToLookupResult(term, apiResponse), nil
}

func (c *FreeDictionaryClient) convertToLookupResult(term string, entries []freeDictionaryResponse) *LookupResult {
	result := &LookupResult{
		Term:        term,
		Definitions: []Definition{},
		Source:      c.Name(),
	}

	for _, entry := range entries {
		for _, phonetic := range entry.Phonetics {
			if result.Pronunciation == "" && phonetic.Text != "" {
				result.Pronunciation = phonetic.Text
			}
			if result.AudioURL == "" && phonetic.Audio != "" {
				result.AudioURL = phonetic.Audio
			}
		}

		for _, meaning := range entry.Meanings {
			for _, def := range meaning.Definitions {
				result.Definitions = append(result.Definitions, Definition{
					PartOfSpeech: meaning.PartOfSpeech,
					Text:         def.Definition,
					Example:      def.Example,
				})
			}
		}
	}

	return result
}

// Free Dictionary API response types

type freeDictionaryResponse struct {
	Word      string             `json:"word"`
	Phonetics []freeDictPhonetic `json:"phonetics"`
	Meanings  []freeDictMeaning  `json:"meanings"`
}

type freeDictPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type freeDictMeaning struct {
	PartOfSpeech string               `json:"partOfSpeech"`
	Definitions  []freeDictDefinition `json:"definitions"`
}

type freeDictDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

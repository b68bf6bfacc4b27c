package catalog

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ohioautoparts/internal/config"
	"ohioautoparts/internal/domain"
)

// Source yields normalized parts from one upstream supplier. A disabled or
// failing source returns an empty (or nil) list, never an error the pipeline
// has to unwind.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Part, error)
}

// FeedSource reads an authorized JSON parts feed over HTTP. Auth follows the
// supplier convention: bearer token, else basic credentials, plus an
// optional x-api-key header.
type FeedSource struct {
	SourceName string
	Feed       config.FeedConfig
	Hints      SourceHints
	Client     *http.Client
}

func NewFeedSource(name string, feed config.FeedConfig, hints SourceHints) *FeedSource {
	return &FeedSource{
		SourceName: name,
		Feed:       feed,
		Hints:      hints,
		Client:     &http.Client{Timeout: 8 * time.Second},
	}
}

func (s *FeedSource) Name() string { return s.SourceName }

func (s *FeedSource) Fetch(ctx context.Context) ([]domain.Part, error) {
	if !s.Feed.Enabled() {
		return nil, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Feed.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if s.Feed.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Feed.Token)
	} else if s.Feed.Username != "" && s.Feed.Password != "" {
		cred := base64.StdEncoding.EncodeToString([]byte(s.Feed.Username + ":" + s.Feed.Password))
		req.Header.Set("Authorization", "Basic "+cred)
	}
	if s.Feed.APIKey != "" {
		req.Header.Set("x-api-key", s.Feed.APIKey)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return nil, fmt.Errorf("feed %s: HTTP %d: %s", s.SourceName, resp.StatusCode, body)
	}
	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("feed %s: invalid JSON: %w", s.SourceName, err)
	}
	return NormalizeFeed(payload, s.Hints), nil
}

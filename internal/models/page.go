package models

import "time"

type Source string

const (
	SourceCache Source = "cache"
	SourceFresh Source = "fresh"
)

// Result is what a cached fetch hands back. Body may legitimately be empty.
type Result struct {
	URL    string `json:"url"`
	Body   string `json:"body"`
	Source Source `json:"source"`
}

func (r *Result) Cached() bool { return r.Source == SourceCache }

type PageStats struct {
	URL        string  `json:"url"`
	Count      int64   `json:"count"`
	Cached     bool    `json:"cached"`
	TTLSeconds float64 `json:"ttl_seconds"`
}

// PageEvent is published after every fresh fetch.
type PageEvent struct {
	URL       string    `json:"url"`
	Bytes     int       `json:"bytes"`
	Source    Source    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
}

// RefreshCommand asks the refresh worker to re-fetch a URL.
type RefreshCommand struct {
	URL string `json:"url"`
}

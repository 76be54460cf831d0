package domain

import "time"

type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Category  string    `json:"category"`
	Verified  bool      `json:"verified"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegulatoryAlert struct {
	ID          int64     `json:"id"`
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Severity    string    `json:"severity"`
	PublishedAt time.Time `json:"published_at"`
}

// QueryResponse wraps a cached read with its freshness metadata.
type QueryResponse[T any] struct {
	Data      T         `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
	Stale     bool      `json:"stale"`
}

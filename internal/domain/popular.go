package domain

import "time"

const (
	// PopularWindow is the trailing window the query log is aggregated over.
	PopularWindow = 7 * 24 * time.Hour

	// PopularLimit is the number of entries the popular-searches operation
	// returns.
	PopularLimit = 10
)

// PopularSearch is a read-only aggregate over the raw query log; it has no
// independent lifecycle and is always recomputed from log rows.
type PopularSearch struct {
	Query        string    `json:"query"`
	Count        int       `json:"count"`
	LastSearched time.Time `json:"last_searched"`
}

package universe

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/edufolio/edufolio/internal/clients/yahoo"
	"github.com/edufolio/edufolio/internal/database"
)

// CachedQuote is a quote snapshot together with when it was fetched
type CachedQuote struct {
	Snapshot  *yahoo.QuoteSnapshot
	FetchedAt time.Time
}

// Fresh reports whether the cached entry is younger than ttl
func (c CachedQuote) Fresh(ttl time.Duration, now time.Time) bool {
	return now.Sub(c.FetchedAt) < ttl
}

// QuoteCache persists quote snapshots in SQLite so restarts and upstream
// outages do not force an immediate refetch.
type QuoteCache struct {
	db  *database.DB
	log zerolog.Logger
}

// NewQuoteCache creates a new quote cache backed by the given database
func NewQuoteCache(db *database.DB, log zerolog.Logger) *QuoteCache {
	return &QuoteCache{
		db:  db,
		log: log.With().Str("component", "quote_cache").Logger(),
	}
}

// Put stores a batch of snapshots, replacing any previous entry per symbol
func (qc *QuoteCache) Put(snapshots map[string]*yahoo.QuoteSnapshot, fetchedAt time.Time) error {
	for symbol, snap := range snapshots {
		payload, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to marshal quote for %s: %w", symbol, err)
		}

		_, err = qc.db.Exec(`
			INSERT INTO quote_cache (symbol, payload, fetched_at)
			VALUES (?, ?, ?)
			ON CONFLICT(symbol) DO UPDATE SET
				payload = excluded.payload,
				fetched_at = excluded.fetched_at
		`, symbol, string(payload), fetchedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to store quote for %s: %w", symbol, err)
		}
	}

	qc.log.Debug().Int("count", len(snapshots)).Msg("Stored quote batch")
	return nil
}

// Get returns the cached quote for one symbol, or nil if absent
func (qc *QuoteCache) Get(symbol string) (*CachedQuote, error) {
	row := qc.db.QueryRow(`
		SELECT payload, fetched_at FROM quote_cache WHERE symbol = ?
	`, symbol)

	var payload, fetchedAt string
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read quote for %s: %w", symbol, err)
	}

	var snap yahoo.QuoteSnapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quote for %s: %w", symbol, err)
	}

	ts, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at for %s: %w", symbol, err)
	}

	return &CachedQuote{Snapshot: &snap, FetchedAt: ts}, nil
}

// GetAll returns the cached quotes for the requested symbols. Symbols with no
// cache entry are absent from the result.
func (qc *QuoteCache) GetAll(symbols []string) (map[string]CachedQuote, error) {
	quotes := make(map[string]CachedQuote, len(symbols))
	for _, symbol := range symbols {
		cached, err := qc.Get(symbol)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			quotes[symbol] = *cached
		}
	}
	return quotes, nil
}

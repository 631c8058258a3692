package server

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse is the health check payload
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// SystemStatusResponse summarizes the running system
type SystemStatusResponse struct {
	ActiveSessions int    `json:"active_sessions"`
	CachedQuotes   int    `json:"cached_quotes"`
	UptimeSeconds  int64  `json:"uptime_seconds"`
	LastFetch      string `json:"last_fetch,omitempty"`
}

// handleHealth returns a basic liveness signal
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, HealthResponse{
		Status: "ok",
		Time:   time.Now().Format(time.RFC3339),
	})
}

// handleSystemStatus returns session and quote-cache statistics
func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	var cachedQuotes int
	var lastFetch sql.NullString

	err := s.db.Conn().QueryRow(`
		SELECT COUNT(*), MAX(fetched_at)
		FROM quote_cache
	`).Scan(&cachedQuotes, &lastFetch)
	if err != nil && err != sql.ErrNoRows {
		s.log.Error().Err(err).Msg("Failed to query quote cache")
	}

	response := SystemStatusResponse{
		ActiveSessions: s.cfg.Sessions.Count(),
		CachedQuotes:   cachedQuotes,
		UptimeSeconds:  int64(time.Since(s.started).Seconds()),
	}
	if lastFetch.Valid {
		if t, err := time.Parse(time.RFC3339Nano, lastFetch.String); err == nil {
			response.LastFetch = t.Format("2006-01-02 15:04")
		}
	}

	s.writeJSON(w, response)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

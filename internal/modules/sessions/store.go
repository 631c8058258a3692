package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edufolio/edufolio/internal/domain"
)

// ErrNotFound is returned when no session exists for the given ID
var ErrNotFound = errors.New("session not found")

// Session is one investor's questionnaire outcome and the portfolios built
// from it. Retaking the questionnaire creates a fresh session; the old one
// stays retrievable until it expires from memory.
type Session struct {
	ID                 string                     `json:"session_id"`
	CreatedAt          time.Time                  `json:"created_at"`
	Profile            domain.RiskProfile         `json:"profile"`
	Preferences        domain.InvestorPreferences `json:"preferences"`
	CorePortfolio      domain.Portfolio           `json:"core_portfolio"`
	StockPortfolio     domain.IndividualPortfolio `json:"stock_portfolio"`
	DisclaimerAccepted bool                       `json:"disclaimer_accepted"`
}

// Store is an in-memory session store. Sessions are ephemeral by design;
// persistence would imply user accounts, which this system does not have.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	log      zerolog.Logger
}

// NewStore creates a new session store
func NewStore(log zerolog.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		log:      log.With().Str("component", "sessions").Logger(),
	}
}

// Create stores a new session and returns its generated ID
func (s *Store) Create(session Session) *Session {
	session.ID = uuid.New().String()
	session.CreatedAt = time.Now()

	s.mu.Lock()
	s.sessions[session.ID] = &session
	s.mu.Unlock()

	s.log.Debug().
		Str("session_id", session.ID).
		Str("bucket", string(session.Profile.Bucket)).
		Msg("Session created")

	return &session
}

// Get returns the session for the given ID
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *session
	return &copied, nil
}

// AcceptDisclaimer marks the session's disclaimer as acknowledged
func (s *Store) AcceptDisclaimer(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	session.DisclaimerAccepted = true

	copied := *session
	return &copied, nil
}

// Count returns the number of live sessions
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

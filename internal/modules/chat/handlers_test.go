package chat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edufolio/edufolio/internal/domain"
	"github.com/edufolio/edufolio/internal/modules/sessions"
)

func postChat(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)
	return rec
}

func TestHandleChat(t *testing.T) {
	store := sessions.NewStore(zerolog.Nop())
	h := NewHandler(newTestService(), store, zerolog.Nop())

	rec := postChat(t, h, `{"message": "AAPL"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["reply"], "Apple Inc. (AAPL)")
	assert.Contains(t, resp["reply"], "Set your risk profile")
}

func TestHandleChatWithSession(t *testing.T) {
	store := sessions.NewStore(zerolog.Nop())
	session := store.Create(sessions.Session{
		Profile: domain.RiskProfile{Bucket: domain.BucketAggressive},
	})
	h := NewHandler(newTestService(), store, zerolog.Nop())

	rec := postChat(t, h, `{"message": "AAPL", "session_id": "`+session.ID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["reply"], "For your Aggressive profile")
}

func TestHandleChatUnknownSessionStillReplies(t *testing.T) {
	store := sessions.NewStore(zerolog.Nop())
	h := NewHandler(newTestService(), store, zerolog.Nop())

	rec := postChat(t, h, `{"message": "AAPL", "session_id": "gone"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["reply"], "Set your risk profile")
}

func TestHandleChatValidation(t *testing.T) {
	store := sessions.NewStore(zerolog.Nop())
	h := NewHandler(newTestService(), store, zerolog.Nop())

	assert.Equal(t, http.StatusBadRequest, postChat(t, h, `{"message": "  "}`).Code)
	assert.Equal(t, http.StatusBadRequest, postChat(t, h, `not json`).Code)
}

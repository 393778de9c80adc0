package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aldenjg/cornharvest/internal/eventlog"
)

func newJournalRouter(j eventlog.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/sessions/{id}/journal", NewJournalHandler(j).HandleJournal)
	return r
}

func TestHandleJournal(t *testing.T) {
	t.Run("returns entries", func(t *testing.T) {
		j := new(MockJournal)
		j.On("Journal", mock.Anything, testSessionID, 0).Return([]eventlog.Entry{
			{ID: 1, SessionID: testSessionID, EventType: "farm.session_started"},
		}, nil)

		w := do(t, newJournalRouter(j), http.MethodGet, sessionPath("/journal"), "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp JournalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, testSessionID, resp.SessionID)
		require.Len(t, resp.Entries, 1)
		assert.Equal(t, "farm.session_started", resp.Entries[0].EventType)
	})

	t.Run("passes limit", func(t *testing.T) {
		j := new(MockJournal)
		j.On("Journal", mock.Anything, testSessionID, 5).Return([]eventlog.Entry{{ID: 9}}, nil)

		w := do(t, newJournalRouter(j), http.MethodGet, sessionPath("/journal?limit=5"), "")
		assert.Equal(t, http.StatusOK, w.Code)
		j.AssertExpectations(t)
	})

	t.Run("bad limit", func(t *testing.T) {
		j := new(MockJournal)
		for _, q := range []string{"?limit=0", "?limit=ten"} {
			w := do(t, newJournalRouter(j), http.MethodGet, sessionPath("/journal"+q), "")
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
			assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
		}
		j.AssertNotCalled(t, "Journal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty journal is not found", func(t *testing.T) {
		j := new(MockJournal)
		j.On("Journal", mock.Anything, testSessionID, 0).Return([]eventlog.Entry{}, nil)

		w := do(t, newJournalRouter(j), http.MethodGet, sessionPath("/journal"), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgSessionNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		j := new(MockJournal)
		j.On("Journal", mock.Anything, testSessionID, 0).Return(nil, errors.New("boom"))

		w := do(t, newJournalRouter(j), http.MethodGet, sessionPath("/journal"), "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		w := do(t, newJournalRouter(new(MockJournal)), http.MethodGet, "/sessions/not-a-uuid/journal", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

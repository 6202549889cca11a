// internal/httpserver/routes_instances.go
//
// HTTP routes for game instances.
//   - POST /instances                    → mint a new instance (the "new
//     daily post" operation) and prime its game state
//   - POST /instances/{id}/events       → dispatch one inbound game event
//   - GET  /instances/{id}/leaderboard  → today's top solvers for the instance
//   - GET  /stats/me                    → solve history for the authed user
//
// The coordinator owns all game semantics; these handlers only adapt HTTP
// to its event protocol.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mysterydaily/go-server/internal/session"
)

// mountInstances registers all /instances routes.
func (s *Server) mountInstances(r chi.Router) {
	r.Route("/instances", func(r chi.Router) {
		r.Post("/", s.handleCreateInstance)
		r.Post("/{id}/events", s.handleEvent)
		r.Get("/{id}/leaderboard", s.handleLeaderboard)
	})
}

// createInstanceRes is returned by POST /instances.
type createInstanceRes struct {
	InstanceID string `json:"instanceId"`
	Date       string `json:"date"`
	PuzzleID   int    `json:"puzzleId"`
}

// handleCreateInstance mints a fresh instance ID and eagerly creates its
// game state so the first viewer sees no creation latency.
func (s *Server) handleCreateInstance(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	st, err := s.coord.GetOrCreate(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("instance", id).Msg("create instance")
		http.Error(w, `{"error":"create_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(createInstanceRes{
		InstanceID: st.InstanceID,
		Date:       st.CreatedOn,
		PuzzleID:   st.Puzzle.ID,
	})
}

// handleEvent decodes one inbound event, runs it through the coordinator,
// and writes the outbound reply.
func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	instanceID := chi.URLParam(r, "id")
	if instanceID == "" {
		http.Error(w, `{"error":"missing_instance"}`, http.StatusBadRequest)
		return
	}

	var ev session.Inbound
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	out, err := s.coord.Handle(r.Context(), instanceID, currentUsername(r), ev)
	if err != nil {
		if errors.Is(err, session.ErrUnknownEvent) {
			http.Error(w, `{"error":"unknown_event"}`, http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Str("instance", instanceID).Str("event", ev.Type).Msg("handle event")
		http.Error(w, `{"error":"event_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleLeaderboard returns the instance's current top-10 board.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	instanceID := chi.URLParam(r, "id")
	st, err := s.coord.GetOrCreate(r.Context(), instanceID)
	if err != nil {
		log.Error().Err(err).Str("instance", instanceID).Msg("load leaderboard")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"date": st.CreatedOn,
		"top":  st.Leaderboard,
	})
}

// handleMyStats returns aggregated solve history for the authed user.
func (s *Server) handleMyStats(w http.ResponseWriter, r *http.Request) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	if me == nil {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}
	stats, err := s.hist.StatsFor(r.Context(), me.Username)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	recent, err := s.hist.Recent(r.Context(), me.Username, 20)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"username": me.Username,
		"stats":    stats,
		"recent":   recent,
	})
}

// internal/httpserver/routes_game.go
//
// HTTP routes for a hangman round. Exposes under /game:
//   - POST /game/new   → start a round, issue its token (cookie + body)
//   - GET  /game       → current display state
//   - POST /game/guess → submit one letter
//   - POST /game/reset → draw a new word for the same round
//
// The round token is the client's only reference to its round.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Murilocrlh/jogodaforca/internal/game"
	"github.com/Murilocrlh/jogodaforca/internal/store"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNew)
		r.Group(func(r chi.Router) {
			r.Use(s.requireRound())
			r.Get("/", s.handleState)
			r.Post("/guess", s.handleGuess)
			r.Post("/reset", s.handleReset)
		})
	})
}

// -----------------------------------------------------------------------------
// /game/new

// newRes is returned by /game/new.
type newRes struct {
	Token string    `json:"token"`
	View  game.View `json:"view"`
}

// handleNew creates a round and binds it to the caller. A round the caller
// already held is dropped.
func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	if prev, err := s.roundFromRequest(r); err == nil {
		_ = s.store.Delete(r.Context(), prev)
	}

	g := game.New(s.words)
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signRoundToken(g.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign round token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setRoundCookie(w, tok, exp)

	log.Debug().Str("round", g.ID).Str("category", g.Category()).Msg("round started")
	writeJSON(w, http.StatusOK, newRes{Token: tok, View: g.View()})
}

// -----------------------------------------------------------------------------
// /game

// handleState returns the caller's round display state.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var v game.View
	err := s.store.Update(r.Context(), roundID(r), func(g *game.Session) error {
		v = g.View()
		return nil
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// -----------------------------------------------------------------------------
// /game/guess

// guessReq is the request payload for /game/guess.
type guessReq struct {
	Letter string `json:"letter"`
}

// guessRes is the response payload for /game/guess.
type guessRes struct {
	Outcome game.Outcome `json:"outcome"`
	Message string       `json:"message,omitempty"`
	View    game.View    `json:"view"`
}

// handleGuess applies the first letter of the payload to the caller's round.
// Blank input is reported as invalid.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res guessRes
	err := s.store.Update(r.Context(), roundID(r), func(g *game.Session) error {
		outcome, letter, ok := g.GuessInput(req.Letter)
		if !ok {
			outcome = game.OutcomeInvalidInput
		}
		res = guessRes{Outcome: outcome, Message: g.Message(outcome, letter), View: g.View()}
		log.Debug().Str("round", g.ID).Str("outcome", string(outcome)).Str("status", string(g.Status())).Msg("guess")
		return nil
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// -----------------------------------------------------------------------------
// /game/reset

// handleReset draws a new word for the caller's round, from any state.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var v game.View
	err := s.store.Update(r.Context(), roundID(r), func(g *game.Session) error {
		g.Reset()
		v = g.View()
		return nil
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// writeStoreError maps store errors onto JSON responses.
func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "timeout")
	default:
		log.Error().Err(err).Msg("round store")
		writeError(w, http.StatusInternalServerError, "store_failed")
	}
}

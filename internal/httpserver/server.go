// internal/httpserver/server.go
//
// HTTP server wiring for the hangman backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Round endpoints: mounted under /game (see routes_game.go).
//   - Round token: an HS256 JWT naming the caller's round, sent as a cookie
//     and accepted as a bearer token.
//   - Background sweep of idle rounds.
//
// Notes:
//   - One client owns one round; starting a new round drops the previous one.
//   - Every action on a round goes through store.Update, so a round handles
//     one request at a time.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/Murilocrlh/jogodaforca/internal/config"
	"github.com/Murilocrlh/jogodaforca/internal/game"
	"github.com/Murilocrlh/jogodaforca/internal/store"
)

// WordSource is the word bank as seen by the server.
type WordSource interface {
	game.Picker
	Stats() (categoryCount int, wordCount int)
}

// Server bundles router, round store and word bank.
type Server struct {
	r     *chi.Mux
	store store.Store
	words WordSource
	cfg   config.Config
	now   func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, ws WordSource, cfg config.Config) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.RoundTTL <= 0 {
		cfg.RoundTTL = 24 * time.Hour
	}
	s := &Server{r: chi.NewRouter(), store: st, words: ws, cfg: cfg, now: time.Now}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                   // add X-Request-ID
	s.r.Use(chimw.RealIP)                      // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                     // zerolog access log
	s.r.Use(chimw.Recoverer)                   // recover from panics
	s.r.Use(chimw.Timeout(cfg.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                   // default JSON responses
	s.r.Use(s.cors)                            // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"forca","endpoints":["/health","POST /game/new","GET /game","POST /game/guess","POST /game/reset"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		c, n := s.words.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"categories": c, "words": n, "rounds": s.store.Len()})
	})

	s.mountGame(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is cancelled, then shuts down.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	go s.sweepLoop(ctx)

	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

// sweepLoop drops idle rounds every tenth of the TTL (at least once a second).
func (s *Server) sweepLoop(ctx context.Context) {
	every := s.cfg.RoundTTL / 10
	if every < time.Second {
		every = time.Second
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.store.Sweep(ctx, s.now().Add(-s.cfg.RoundTTL)); n > 0 {
				log.Info().Int("rounds", n).Msg("swept idle rounds")
			}
		}
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one zerolog line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// ---------------------------- round token ----------------------------------

var (
	errNoToken      = errors.New("no round token")
	errInvalidToken = errors.New("invalid round token")
)

// ctxRoundKey is the context key type for the caller's round ID.
type ctxRoundKey struct{}

// signRoundToken creates an HS256 JWT whose subject is the round ID.
func (s *Server) signRoundToken(roundID string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.cfg.RoundTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   roundID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(s.cfg.RoundSecret))
	return ss, exp, err
}

// parseRoundToken validates tok and returns the round ID it names.
func (s *Server) parseRoundToken(tok string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.RoundSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !t.Valid || claims.Subject == "" {
		return "", errInvalidToken
	}
	return claims.Subject, nil
}

// roundFromRequest extracts and validates the caller's round token.
func (s *Server) roundFromRequest(r *http.Request) (string, error) {
	tok := s.bearerOrCookie(r)
	if tok == "" {
		return "", errNoToken
	}
	return s.parseRoundToken(tok)
}

// requireRound rejects requests without a valid round token and stores the
// round ID in the request context.
func (s *Server) requireRound() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := s.roundFromRequest(r)
			switch {
			case errors.Is(err, errNoToken):
				writeError(w, http.StatusUnauthorized, "no_round")
				return
			case err != nil:
				writeError(w, http.StatusUnauthorized, "invalid_token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxRoundKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func roundID(r *http.Request) string {
	id, _ := r.Context().Value(ctxRoundKey{}).(string)
	return id
}

// setRoundCookie writes the round token cookie with appropriate security attributes.
func (s *Server) setRoundCookie(w http.ResponseWriter, token string, exp time.Time) {
	secure := s.cfg.Production()
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or round cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

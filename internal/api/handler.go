// Package api is the loopback HTTP bridge that exposes the state manager to
// the host application.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	perrors "github.com/cristianoliveira/peekshell/internal/errors"
	"github.com/cristianoliveira/peekshell/internal/logging"
	"github.com/cristianoliveira/peekshell/internal/settings"
	"github.com/cristianoliveira/peekshell/internal/state"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const maxBodySize = 1 << 20 // 1MB

// State is the subset of the state manager the bridge drives.
type State interface {
	Settings() (*settings.Settings, error)
	SetSettings(s *settings.Settings) error
	ResetSettings() (*settings.Settings, error)
	AppendHistory(url string) error
	History() ([]string, error)
	ClearHistory() error
	LastURL() string
	RecordLastURL(url string) error
	CycleOpacity() float64
	SetIgnoreCursor(ignore bool) error
	ClearCache(hard bool) error
	Status() (state.Status, error)
}

var _ State = (*state.Manager)(nil)

// Deps wires the bridge.
type Deps struct {
	State State
	// Token enables bearer authentication when non-empty.
	Token  string
	Logger logging.Logger
}

// NewHandler returns the bridge router.
func NewHandler(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = logging.GetGlobal()
	}
	log := deps.Logger.With("component", "api")

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))
	r.Use(BearerAuth(deps.Token))

	r.Get("/status", handleStatus(deps))

	r.Get("/settings", handleGetSettings(deps))
	r.Put("/settings", handlePutSettings(deps))
	r.Post("/settings/reset", handleResetSettings(deps))

	r.Get("/history", handleListHistory(deps))
	r.Post("/history", handleAppendHistory(deps))
	r.Delete("/history", handleClearHistory(deps))

	r.Get("/last-url", handleLastURL(deps))
	r.Post("/events/url-changed", handleURLChanged(deps))

	r.Post("/opacity/cycle", handleCycleOpacity(deps))
	r.Post("/window/ignore-cursor", handleIgnoreCursor(deps))
	r.Post("/cache/clear", handleClearCache(deps))

	return r
}

func requestLogger(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String())
		})
	}
}

type urlRequest struct {
	URL string `json:"url"`
}

type flagRequest struct {
	Ignore bool `json:"ignore"`
}

type cacheRequest struct {
	Hard bool `json:"hard"`
}

type lastURLResponse struct {
	URL string `json:"url"`
}

type opacityResponse struct {
	Opacity float64 `json:"opacity"`
}

// decodeBody decodes the JSON body into dst. An empty body leaves dst untouched
// when allowEmpty is set.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}
		httpError(w, http.StatusBadRequest, perrors.KindInvalid, "invalid request body: %v", err)
		return false
	}
	return true
}

func handleStatus(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := deps.State.Status()
		if err != nil {
			domainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

func handleGetSettings(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := deps.State.Settings()
		if err != nil {
			domainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

func handlePutSettings(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// the body replaces the whole record; missing keys are rejected
		s := &settings.Settings{}
		if !decodeBody(w, r, s, false) {
			return
		}
		if err := deps.State.SetSettings(s); err != nil {
			domainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

func handleResetSettings(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := deps.State.ResetSettings()
		if err != nil {
			domainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

func handleListHistory(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				httpError(w, http.StatusBadRequest, perrors.KindInvalid, "limit must be a non-negative integer")
				return
			}
			limit = n
		}
		list, err := deps.State.History()
		if err != nil {
			domainError(w, err)
			return
		}
		if limit > 0 && len(list) > limit {
			list = list[len(list)-limit:]
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func handleAppendHistory(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req urlRequest
		if !decodeBody(w, r, &req, false) {
			return
		}
		if err := deps.State.AppendHistory(req.URL); err != nil {
			domainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleClearHistory(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.State.ClearHistory(); err != nil {
			domainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleLastURL(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, lastURLResponse{URL: deps.State.LastURL()})
	}
}

func handleURLChanged(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req urlRequest
		if !decodeBody(w, r, &req, false) {
			return
		}
		if err := deps.State.RecordLastURL(req.URL); err != nil {
			domainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleCycleOpacity(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, opacityResponse{Opacity: deps.State.CycleOpacity()})
	}
}

func handleIgnoreCursor(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req flagRequest
		if !decodeBody(w, r, &req, false) {
			return
		}
		if err := deps.State.SetIgnoreCursor(req.Ignore); err != nil {
			domainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleClearCache(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cacheRequest
		if !decodeBody(w, r, &req, true) {
			return
		}
		if err := deps.State.ClearCache(req.Hard); err != nil {
			domainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

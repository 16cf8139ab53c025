package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/slvrtrn/envfall/internal/config"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler exposes the resolved runtime configuration over HTTP. The Config
// it serves is an immutable value captured at construction time, so the
// handlers need no synchronisation.
type Handler struct {
	cfg   config.Config
	clock func() time.Time

	startedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler serving the provided configuration.
func NewHandler(cfg config.Config, opts ...HandlerOption) *Handler {
	h := &Handler{
		cfg: cfg,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.startedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:      "ok",
		Environment: string(h.cfg.AppEnv),
		Timestamp:   h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := configResponse{
		AppEnv:      string(h.cfg.AppEnv),
		MagicString: h.cfg.MagicString,
		MagicNumber: h.cfg.MagicNumber,
		ListenAddr:  h.cfg.ListenAddr,
		LoadedAt:    h.startedAt,
	}
	writeJSON(w, http.StatusOK, resp)
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type healthResponse struct {
	Status      string    `json:"status"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}

type configResponse struct {
	AppEnv      string    `json:"app_env"`
	MagicString string    `json:"magic_string"`
	MagicNumber uint64    `json:"magic_number"`
	ListenAddr  string    `json:"listen_addr"`
	LoadedAt    time.Time `json:"loaded_at"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{
		Error:   message,
		Details: details,
	})
}

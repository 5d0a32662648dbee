// Package health reports whether the registry mock can take conformance
// traffic. When the e2e suite runs against the in-process mock it waits on
// /health/ready before the first scenario submits a citizen.
package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"wcg/pkg/platform/httputil"
)

// Version is set at build time via ldflags.
var Version = "dev"

const (
	ServiceName = "citizen-registration"

	// CheckTimeout bounds a single readiness check.
	CheckTimeout = 2 * time.Second
)

// Check returns nil when the component it guards can serve requests.
type Check func(ctx context.Context) error

// Counter is the slice of the citizen store health reporting reads.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// StoreCheck fails when the citizen store cannot be read.
func StoreCheck(store Counter) Check {
	return func(ctx context.Context) error {
		_, err := store.Count(ctx)
		return err
	}
}

type namedCheck struct {
	name  string
	check Check
}

type Handler struct {
	started     time.Time
	environment string
	clock       func() time.Time
	store       Counter

	mu     sync.RWMutex
	checks []namedCheck
}

type Option func(*Handler)

// WithStore adds a "store" readiness check and reports the number of
// registered citizens on /health.
func WithStore(store Counter) Option {
	return func(h *Handler) {
		h.store = store
		h.checks = append(h.checks, namedCheck{name: "store", check: StoreCheck(store)})
	}
}

func withClock(clock func() time.Time) Option {
	return func(h *Handler) {
		h.clock = clock
	}
}

func New(environment string, opts ...Option) *Handler {
	h := &Handler{
		environment: environment,
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.started = h.clock()
	return h
}

// AddCheck appends a named readiness check. Checks run in the order added.
func (h *Handler) AddCheck(name string, check Check) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks = append(h.checks, namedCheck{name: name, check: check})
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HandleStatus)
	r.Get("/health/live", h.HandleLiveness)
	r.Get("/health/ready", h.HandleReadiness)
}

type LivenessResponse struct {
	Status string `json:"status"`
}

func (h *Handler) HandleLiveness(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, LivenessResponse{Status: "alive"})
}

type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleReadiness answers 503 as soon as one check fails; every check still
// runs so the body names all failing components.
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	checks := append([]namedCheck(nil), h.checks...)
	h.mu.RUnlock()

	resp := ReadinessResponse{Status: "ready"}
	status := http.StatusOK
	if len(checks) > 0 {
		resp.Checks = make(map[string]string, len(checks))
	}
	for _, c := range checks {
		ctx, cancel := context.WithTimeout(r.Context(), CheckTimeout)
		err := c.check(ctx)
		cancel()
		if err != nil {
			resp.Checks[c.name] = "down: " + err.Error()
			resp.Status = "not_ready"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[c.name] = "up"
	}

	httputil.WriteJSON(w, status, resp)
}

type StatusResponse struct {
	Status             string `json:"status"`
	Service            string `json:"service"`
	Version            string `json:"version"`
	Environment        string `json:"environment"`
	RegisteredCitizens *int   `json:"registered_citizens,omitempty"`
	UptimeSeconds      int64  `json:"uptime_seconds"`
	Timestamp          string `json:"timestamp"`
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	now := h.clock()
	resp := StatusResponse{
		Status:        "healthy",
		Service:       ServiceName,
		Version:       Version,
		Environment:   h.environment,
		UptimeSeconds: int64(now.Sub(h.started).Seconds()),
		Timestamp:     now.UTC().Format(time.RFC3339),
	}
	if h.store != nil {
		if n, err := h.store.Count(r.Context()); err == nil {
			resp.RegisteredCitizens = &n
		} else {
			resp.Status = "degraded"
		}
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	request "wcg/pkg/platform/middleware/request"
	"wcg/pkg/platform/middleware/requesttime"
)

// DefaultTimeout bounds every request served by the mock.
const DefaultTimeout = 30 * time.Second

// RouteRegistrar is implemented by every handler mounted on the router.
type RouteRegistrar interface {
	Register(r chi.Router)
}

type RouterConfig struct {
	Timeout time.Duration
	// Latency is optional; when nil no latency histogram is recorded.
	Latency *request.Metrics
}

// NewRouter wires the public endpoints of the mock registration service with
// the shared middleware stack. Handlers are mounted in the given order.
func NewRouter(logger *slog.Logger, cfg RouterConfig, handlers ...RouteRegistrar) http.Handler {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	r := chi.NewRouter()

	r.Use(request.Recovery(logger))
	r.Use(request.RequestID)
	r.Use(request.ClientAgent)
	r.Use(request.Logger(logger))
	r.Use(request.Timeout(timeout))
	r.Use(requesttime.Middleware)
	if cfg.Latency != nil {
		r.Use(request.LatencyMiddleware(cfg.Latency))
	}

	for _, h := range handlers {
		h.Register(r)
	}

	return r
}

// Package registration assembles the mock registration service: the in-memory
// store, the rule-enforcing service and its HTTP handler.
package registration

import (
	"log/slog"

	"wcg/internal/platform/metrics"
	"wcg/internal/registration/handler"
	"wcg/internal/registration/service"
	"wcg/internal/registration/store"
)

type Module struct {
	Store   *store.InMemoryStore
	Service *service.Service
	Handler *handler.Handler
}

// NewModule builds a fresh, empty registration service. m may be nil.
func NewModule(logger *slog.Logger, m *metrics.Metrics, opts ...service.Option) *Module {
	st := store.New()
	if m != nil {
		opts = append([]service.Option{service.WithMetrics(m)}, opts...)
	}
	svc := service.New(st, logger, opts...)
	return &Module{
		Store:   st,
		Service: svc,
		Handler: handler.New(svc, logger),
	}
}

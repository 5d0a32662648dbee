package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/prometheus/client_golang/prometheus"

	"wcg/internal/client"
	"wcg/internal/platform/config"
	"wcg/internal/platform/health"
	"wcg/internal/platform/metrics"
	"wcg/internal/platform/privacy"
	"wcg/internal/registration"
	httptransport "wcg/internal/transport/http"
	"wcg/pkg/citizen"
	"wcg/pkg/testutil"
)

// ReadyPath is polled on the in-process mock before a scenario runs.
const ReadyPath = "/health/ready"

// Target is the service under test. Local is set when it is the in-process
// mock started by ResolveTarget, which also serves the health endpoints.
type Target struct {
	config.Client
	Local bool
}

// TestContext holds state between test steps
type TestContext struct {
	Client  *client.Client
	local   bool
	record  citizen.Record
	results []*client.Result
}

// NewTestContext creates a test context whose client targets target.BaseURL.
func NewTestContext(target Target, logger *slog.Logger) *TestContext {
	cfg := target.Client
	return &TestContext{
		local: target.Local,
		Client: client.New(cfg.BaseURL,
			client.WithLogger(logger),
			client.WithHTTPClient(&http.Client{
				Timeout: cfg.RequestTimeout,
				CheckRedirect: func(*http.Request, []*http.Request) error {
					return http.ErrUseLastResponse
				},
			}),
		),
		record: testutil.DefaultCitizen(),
	}
}

// ResolveTarget returns the target from the environment. When BASE_URL is
// unset it starts an in-process registration service and points the target
// at it; stop shuts that service down.
func ResolveTarget(logger *slog.Logger) (target Target, stop func()) {
	target.Client = config.ClientFromEnv()
	if target.BaseURL != "" {
		return target, func() {}
	}

	reg := prometheus.NewRegistry()
	module := registration.NewModule(logger, metrics.New(reg))
	router := httptransport.NewRouter(logger, httptransport.RouterConfig{},
		module.Handler,
		health.New("e2e", health.WithStore(module.Store)),
	)
	srv := httptest.NewServer(router)
	target.BaseURL = srv.URL
	target.Local = true
	return target, srv.Close
}

// CheckReachable fails when the service cannot be reached. The in-process
// mock must also answer 200 on ReadyPath; a remote service only has to
// answer at all, whatever the status.
func (tc *TestContext) CheckReachable(ctx context.Context) error {
	path := "/"
	if tc.local {
		path = ReadyPath
	}
	status, err := tc.Client.Ping(ctx, path)
	if err != nil {
		return fmt.Errorf("registration service at %s is unreachable: %w", tc.Client.BaseURL(), err)
	}
	if tc.local && status != http.StatusOK {
		return fmt.Errorf("registration service at %s is not ready: status %d", tc.Client.BaseURL(), status)
	}
	return nil
}

// Reset deletes rec's citizen ID. Whatever the service answers is ignored;
// only a failure to reach it is returned.
func (tc *TestContext) Reset(ctx context.Context, rec citizen.Record) error {
	if err := tc.Client.Reset(ctx, rec); err != nil {
		return fmt.Errorf("failed to reset citizen %q: %w", privacy.MaskCitizenID(rec.CitizenID), err)
	}
	return nil
}

// Submit posts rec and records the result.
func (tc *TestContext) Submit(ctx context.Context, rec citizen.Record) error {
	res, err := tc.Client.Submit(ctx, rec)
	if err != nil {
		return fmt.Errorf("failed to submit citizen %q: %w", privacy.MaskCitizenID(rec.CitizenID), err)
	}
	tc.results = append(tc.results, res)
	return nil
}

// Getter methods for step package interfaces

func (tc *TestContext) Record() citizen.Record {
	return tc.record
}

func (tc *TestContext) SetRecord(rec citizen.Record) {
	tc.record = rec
}

func (tc *TestContext) Results() []*client.Result {
	return tc.results
}

func (tc *TestContext) LastResult() *client.Result {
	if len(tc.results) == 0 {
		return nil
	}
	return tc.results[len(tc.results)-1]
}

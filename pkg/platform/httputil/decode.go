package httputil

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	dErrors "wcg/pkg/domain-errors"
)

// MaxFormBytes caps the size of a form-encoded request body.
const MaxFormBytes = 64 * 1024

// DecodeForm reads a form-encoded request body for any method.
// net/http only parses bodies for POST, PUT and PATCH; the citizen cleanup
// endpoint receives its form on DELETE, so the body is parsed here directly.
// When the body is empty the URL query is used instead.
// On failure, writes an error response and returns nil, false.
//
// Usage:
//
//	form, ok := httputil.DecodeForm(w, r, h.logger, ctx, requestID)
//	if !ok {
//	    return
//	}
func DecodeForm(w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (url.Values, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxFormBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.WarnContext(ctx, "failed to read request body",
			"error", err,
			"request_id", requestID,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "registration failed: invalid request body"))
		return nil, false
	}

	if len(body) == 0 {
		return r.URL.Query(), true
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		logger.WarnContext(ctx, "failed to decode form body",
			"error", err,
			"request_id", requestID,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "registration failed: invalid request body"))
		return nil, false
	}
	return form, true
}

package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wcg/internal/platform/privacy"
	"wcg/internal/registration/models"
	"wcg/pkg/citizen"
	dErrors "wcg/pkg/domain-errors"
	"wcg/pkg/platform/httputil"
	request "wcg/pkg/platform/middleware/request"
)

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

type Service interface {
	Register(ctx context.Context, rec citizen.Record) (*models.Registration, error)
	Remove(ctx context.Context, citizenID string) error
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/registration", h.HandleRegister)
	r.Delete("/citizen", h.HandleRemove)
}

// HandleRegister implements POST /registration.
// Input: form-encoded citizen_id, name, surname, birth_date, occupation, address
// Output: { "feedback": "registration success!" } or a rejection feedback
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	form, ok := httputil.DecodeForm(w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec := citizen.FromForm(form)
	if _, err := h.service.Register(ctx, rec); err != nil {
		h.logFailure(ctx, "registration failed", err, rec.CitizenID, requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteFeedback(w, http.StatusOK, citizen.FeedbackSuccess)
}

// HandleRemove implements DELETE /citizen.
// Only citizen_id is read; the remaining record fields are accepted and ignored.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	form, ok := httputil.DecodeForm(w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	citizenID := form.Get(citizen.FieldCitizenID)
	if err := h.service.Remove(ctx, citizenID); err != nil {
		h.logFailure(ctx, "citizen removal failed", err, citizenID, requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteFeedback(w, http.StatusOK, citizen.FeedbackRemoved)
}

// logFailure keeps expected rejections at info and everything else at error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, citizenID, requestID string) {
	level := slog.LevelError
	if dErrors.IsRejection(err) || dErrors.HasCode(err, dErrors.CodeNotFound) || dErrors.HasCode(err, dErrors.CodeBadRequest) {
		level = slog.LevelInfo
	}
	h.logger.Log(ctx, level, msg,
		"error", err,
		"citizen_id", privacy.MaskCitizenID(citizenID),
		"request_id", requestID,
	)
}

package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "wcg/pkg/domain-errors"
)

// FeedbackResponse is the envelope every registration endpoint answers with.
type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Errors after WriteHeader cannot change the status code, so we ignore encoding errors.
	_ = json.NewEncoder(w).Encode(response)
}

// WriteFeedback writes {"feedback": msg} with the given status.
func WriteFeedback(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, FeedbackResponse{Feedback: msg})
}

// WriteError centralizes domain error translation to HTTP responses.
// The domain message becomes the feedback string; unexpected errors are reported
// generically so internals do not leak.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		msg := domainErr.Message
		if msg == "" {
			msg = string(domainErr.Code)
		}
		WriteFeedback(w, DomainCodeToHTTPStatus(domainErr.Code), msg)
		return
	}

	WriteFeedback(w, http.StatusInternalServerError, "registration failed: internal error")
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest,
		dErrors.CodeMissingAttribute,
		dErrors.CodeInvalidCitizenID,
		dErrors.CodeInvalidBirthDate,
		dErrors.CodeBelowMinimumAge:
		return http.StatusBadRequest
	case dErrors.CodeAlreadyRegistered:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

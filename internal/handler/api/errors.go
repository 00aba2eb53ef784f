package api

import (
	"log/slog"
	"net/http"

	"consultation-booking/internal/domain/draft"
	"consultation-booking/internal/handler/dto/response"
	"consultation-booking/internal/handler/httperr"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/queries"
	"consultation-booking/migrations"

	"github.com/gin-gonic/gin"
)

const (
	msgSchemaMissing = "The bookings table is missing. Run the setup SQL against the database."
	msgInternal      = "Internal server error"
)

// abortWithUsecaseErr answers with the status the error maps to; fallback is the
// message for errors that carry no user-facing meaning of their own.
func abortWithUsecaseErr(c *gin.Context, err error, fallback string) {
	if fe, ok := draft.AsFieldErrors(err); ok {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Please correct the highlighted fields", gin.H{"fieldErrors": fe})
		return
	}

	switch {
	case errs.Is(err, errs.ErrDomainValidation), errs.Is(err, queries.ErrUnknownSlot):
		httperr.AbortWithError(c, http.StatusBadRequest, err, validationMessage(err), nil)
	case errs.Is(err, errs.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking draft not found or expired", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "That step is not available right now", nil)
	case errs.Is(err, errs.ErrSubscriptionActive):
		httperr.AbortWithError(c, http.StatusConflict, err, "A live update stream is already open for this session", nil)
	case errs.Is(err, errs.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
	case errs.Is(err, errs.ErrSessionNotFound), errs.Is(err, errs.ErrSessionExpired):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session", nil)
	case errs.Is(err, errs.ErrSchemaMissing):
		abortSchemaMissing(c, err)
	default:
		slog.Error("Unhandled usecase error", "path", c.FullPath(), "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

func abortSchemaMissing(c *gin.Context, err error) {
	sql, sqlErr := migrations.SetupSQL()
	if sqlErr != nil {
		slog.Error("Failed to load setup SQL", "error", sqlErr.Error())
	}
	httperr.AbortWithError(c, http.StatusServiceUnavailable, err, msgSchemaMissing, response.SetupResponse{
		Message: msgSchemaMissing,
		SQL:     sql,
	})
}

// validationMessage surfaces the domain's own wording, which is written for end users.
func validationMessage(err error) string {
	if msg := errs.UserMessage(err); msg != "" {
		return msg
	}
	return "Invalid request"
}

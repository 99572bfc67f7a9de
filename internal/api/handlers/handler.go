package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bharatha-dev/brainly-server/internal/api/services"
	"github.com/bharatha-dev/brainly-server/internal/common"
	"github.com/bharatha-dev/brainly-server/internal/utils"
)

type Handler struct {
	logger  zerolog.Logger
	auth    *services.AuthService
	content *services.ContentService
	share   *services.ShareService
}

func NewHandler(
	logger zerolog.Logger,
	auth *services.AuthService,
	content *services.ContentService,
	share *services.ShareService,
) *Handler {
	return &Handler{
		logger:  logger,
		auth:    auth,
		content: content,
		share:   share,
	}
}

// respondError translates a service error into an HTTP response. Validation
// errors keep their field detail; anything unexpected is logged and hidden
// behind a generic 500 message.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := common.HTTPStatusFromError(err)

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		utils.JSONResponse(w, status, utils.Payload{
			Success: false,
			Message: "An internal server error occurred",
		})
		return
	}

	payload := utils.Payload{Success: false, Message: err.Error()}
	var fields common.FieldErrors
	if errors.As(err, &fields) {
		payload.Message = "Invalid input"
		payload.Data = map[string]any{"errors": fields}
	}
	utils.JSONResponse(w, status, payload)
}

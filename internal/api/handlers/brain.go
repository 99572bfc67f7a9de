package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bharatha-dev/brainly-server/internal/api/middleware"
	"github.com/bharatha-dev/brainly-server/internal/utils"
)

type shareInput struct {
	Share bool `json:"share"`
}

// POST /api/v1/brain/share
// ShareBrain godoc
// @Summary Enable or disable public sharing
// @Description With share=true returns the (possibly pre-existing) share hash; with share=false revokes it.
// @Tags Brain
// @Accept json
// @Produce json
// @Param body body shareInput true "Share toggle"
// @Success 200 {object} utils.Payload "Hash or confirmation"
// @Failure 401 {object} utils.Payload "Missing token"
// @Security BearerAuth
// @Router /api/v1/brain/share [post]
func (h *Handler) ShareBrain(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	var input shareInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	if !input.Share {
		if err := h.share.Disable(userID); err != nil {
			h.respondError(w, r, err)
			return
		}
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Sharing has been disabled",
		})
		return
	}

	hash, err := h.share.Enable(userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Sharing is enabled",
		Data:    map[string]any{"hash": hash},
	})
}

// GET /api/v1/brain/share/{shareLink}
// GetSharedBrain godoc
// @Summary View a shared collection
// @Description Public, unauthenticated view of the owner's username and full content list for a valid share hash.
// @Tags Brain
// @Produce json
// @Param shareLink path string true "Share hash"
// @Success 200 {object} utils.Payload "Username and content"
// @Failure 404 {object} utils.Payload "Invalid or expired share link"
// @Router /api/v1/brain/share/{shareLink} [get]
func (h *Handler) GetSharedBrain(w http.ResponseWriter, r *http.Request) {
	hash := r.PathValue("shareLink")
	if hash == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Missing share link",
		})
		return
	}

	username, content, err := h.share.Resolve(hash)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Shared brain retrieved successfully",
		Data: map[string]any{
			"username": username,
			"content":  content,
		},
	})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bharatha-dev/brainly-server/internal/api/middleware"
	"github.com/bharatha-dev/brainly-server/internal/models"
	"github.com/bharatha-dev/brainly-server/internal/utils"
)

type contentInput struct {
	Title string             `json:"title"`
	Link  string             `json:"link"`
	Type  models.ContentType `json:"type"`
}

// POST /api/v1/content
// CreateContent godoc
// @Summary Save a new content item
// @Description Stores a titled link of a known type for the authenticated user.
// @Tags Content
// @Accept json
// @Produce json
// @Param body body contentInput true "Content to save"
// @Success 201 {object} utils.Payload "Content added"
// @Failure 400 {object} utils.Payload "Invalid input"
// @Failure 401 {object} utils.Payload "Missing token"
// @Security BearerAuth
// @Router /api/v1/content [post]
func (h *Handler) CreateContent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	var input contentInput

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		// Unknown content types are rejected here by ContentType's decoder.
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	content, err := h.content.Create(userID, input.Title, input.Link, input.Type)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Content added",
		Data:    map[string]any{"content": content},
	})
}

// GET /api/v1/content
// ListContent godoc
// @Summary List saved content
// @Description Returns all of the authenticated user's items, newest first.
// @Tags Content
// @Produce json
// @Success 200 {object} utils.Payload "Content list"
// @Failure 401 {object} utils.Payload "Missing token"
// @Security BearerAuth
// @Router /api/v1/content [get]
func (h *Handler) ListContent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	content, err := h.content.List(userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Content retrieved successfully",
		Data:    map[string]any{"content": content},
	})
}

// DELETE /api/v1/content/{contentId}
// DeleteContent godoc
// @Summary Delete a saved content item
// @Description Deletes an item owned by the authenticated user. Items that do not exist and items owned by someone else are both reported as not found.
// @Tags Content
// @Produce json
// @Param contentId path string true "Content ID"
// @Success 200 {object} utils.Payload "Deleted"
// @Failure 400 {object} utils.Payload "Invalid content ID"
// @Failure 404 {object} utils.Payload "Content not found"
// @Security BearerAuth
// @Router /api/v1/content/{contentId} [delete]
func (h *Handler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	if err := h.content.Delete(userID, r.PathValue("contentId")); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Deleted successfully",
	})
}

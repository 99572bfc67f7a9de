package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bharatha-dev/brainly-server/internal/utils"
)

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/v1/signup
// Signup godoc
// @Summary Register a new user
// @Description Creates an account with a unique username and a bcrypt-hashed password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body credentialsInput true "Credentials"
// @Success 201 {object} utils.Payload "User signed up"
// @Failure 400 {object} utils.Payload "Invalid input"
// @Failure 409 {object} utils.Payload "Username already taken"
// @Router /api/v1/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	if err := h.auth.SignUp(input.Username, input.Password); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "User signed up successfully. Please sign in.",
	})
}

// POST /api/v1/signin
// Signin godoc
// @Summary Sign in and receive a bearer token
// @Description Verifies credentials and returns a signed token valid for seven days.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body credentialsInput true "Credentials"
// @Success 200 {object} utils.Payload "Token and username"
// @Failure 400 {object} utils.Payload "Invalid input"
// @Failure 403 {object} utils.Payload "Incorrect username or password"
// @Router /api/v1/signin [post]
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	token, err := h.auth.SignIn(input.Username, input.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Signed in successfully",
		Data: map[string]any{
			"token":    token,
			"username": input.Username,
		},
	})
}

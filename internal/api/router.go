package api

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/bharatha-dev/brainly-server/docs"
	"github.com/bharatha-dev/brainly-server/internal/api/handlers"
	"github.com/bharatha-dev/brainly-server/internal/api/middleware"
	"github.com/bharatha-dev/brainly-server/internal/config"
)

func SetupRouter(cfg *config.Config, logger zerolog.Logger, h *handlers.Handler) http.Handler {
	mux := http.NewServeMux()
	c := cors.New(cfg.CorsConfig)
	auth := middleware.Auth([]byte(cfg.JWTSecret))

	// ---------- PUBLIC ROUTES ----------
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	mux.HandleFunc("POST /api/v1/signup", h.Signup)
	mux.HandleFunc("POST /api/v1/signin", h.Signin)
	mux.HandleFunc("GET /api/v1/brain/share/{shareLink}", h.GetSharedBrain)

	// ---------- PROTECTED ROUTES ----------
	mux.Handle("POST /api/v1/content", auth(http.HandlerFunc(h.CreateContent)))
	mux.Handle("GET /api/v1/content", auth(http.HandlerFunc(h.ListContent)))
	mux.Handle("DELETE /api/v1/content/{contentId}", auth(http.HandlerFunc(h.DeleteContent)))
	mux.Handle("POST /api/v1/brain/share", auth(http.HandlerFunc(h.ShareBrain)))

	handler := c.Handler(mux)
	handler = middleware.Logger(logger)(handler)
	return handler
}

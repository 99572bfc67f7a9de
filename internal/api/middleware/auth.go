package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/bharatha-dev/brainly-server/internal/common/security"
	"github.com/bharatha-dev/brainly-server/internal/utils"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserID returns the authenticated user's id attached by Auth.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// Auth guards protected routes. A missing or malformed Authorization header is
// 401; a token that fails verification (bad signature, expired, bogus claims)
// is 403. On success the decoded user id is attached to the request context.
func Auth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" {
				utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
					Success: false,
					Message: "Access denied. No token provided or token is malformed.",
				})
				return
			}

			claims, err := security.ParseToken(secret, tokenStr)
			if err != nil {
				utils.JSONResponse(w, http.StatusForbidden, utils.Payload{
					Success: false,
					Message: "Authentication failed. The provided token is invalid or has expired.",
				})
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				utils.JSONResponse(w, http.StatusForbidden, utils.Payload{
					Success: false,
					Message: "Authentication failed. The provided token is invalid or has expired.",
				})
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

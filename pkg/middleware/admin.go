package middleware

import (
	"net/http"
	"strings"

	"guesthouse-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Admin middleware gates the content-management routes behind the admin API
// key. The key is checked against its bcrypt hash from config, so the plain
// key never lives in the environment.
func Admin(config utils.AdminConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.APIKeyHash == "" {
				logger.Error("Admin API key hash not configured")
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(config.APIKeyHash), []byte(parts[1])); err != nil {
				logger.Warn("Admin authentication failed",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr),
				)
				utils.ResponseUnauthorized(w, "Invalid admin credentials")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

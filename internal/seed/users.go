package seed

import (
	"pagecraft-backend/internal/service"
	"pagecraft-backend/pkg/logger"
)

// EnsureAdminUser bootstraps the first admin account from configuration.
func EnsureAdminUser(authService *service.AuthService, email, password string) {
	if authService == nil {
		return
	}

	if err := authService.EnsureAdmin(email, password); err != nil {
		logger.Error(err, "Failed to ensure admin user", nil)
		return
	}

	logger.Info("Admin user verified", map[string]interface{}{"email": email})
}

// Package di provides dependency injection configuration for the DayGrid server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/daygridapp/daygrid-server/internal/auth"
	"github.com/daygridapp/daygrid-server/internal/config"
	"github.com/daygridapp/daygrid-server/internal/di/providers"
	"github.com/daygridapp/daygrid-server/internal/logger"
	"github.com/daygridapp/daygrid-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideAuthKey)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Auth layer
	do.Provide(injector, providers.ProvideTokenService)

	// Business services
	do.Provide(injector, providers.ProvideSessionService)
	do.Provide(injector, providers.ProvideAuthService)
	do.Provide(injector, providers.ProvideAccountService)
	do.Provide(injector, providers.ProvideTrackingService)
	do.Provide(injector, providers.ProvideSubcategoryService)
	do.Provide(injector, providers.ProvideGoalService)
	do.Provide(injector, providers.ProvideAnalyticsService)

	// Workers
	do.Provide(injector, providers.ProvideSessionCleanupJob)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[providers.AuthKey](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*auth.TokenService](injector)

	// Business services
	_ = do.MustInvoke[*service.SessionService](injector)
	_ = do.MustInvoke[*service.AuthService](injector)
	_ = do.MustInvoke[*service.AccountService](injector)
	_ = do.MustInvoke[*service.TrackingService](injector)
	_ = do.MustInvoke[*service.SubcategoryService](injector)
	_ = do.MustInvoke[*service.GoalService](injector)
	_ = do.MustInvoke[*service.AnalyticsService](injector)

	// Workers
	_ = do.MustInvoke[*providers.SessionCleanupJob](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}

package providers

import (
	"github.com/samber/do/v2"

	"github.com/daygridapp/daygrid-server/internal/auth"
	"github.com/daygridapp/daygrid-server/internal/logger"
	"github.com/daygridapp/daygrid-server/internal/service"
)

// ProvideSessionService provides the session management service.
func ProvideSessionService(i do.Injector) (*service.SessionService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenService := do.MustInvoke[*auth.TokenService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSessionService(storeHandle.Store, tokenService, log.Logger), nil
}

// ProvideAuthService provides the authentication service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenService := do.MustInvoke[*auth.TokenService](i)
	sessionService := do.MustInvoke[*service.SessionService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(storeHandle.Store, tokenService, sessionService, log.Logger), nil
}

// ProvideAccountService provides the profile and onboarding service.
func ProvideAccountService(i do.Injector) (*service.AccountService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAccountService(storeHandle.Store, log.Logger), nil
}

// ProvideTrackingService provides the day record tracking service.
func ProvideTrackingService(i do.Injector) (*service.TrackingService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTrackingService(storeHandle.Store, log.Logger), nil
}

// ProvideSubcategoryService provides the subcategory service.
func ProvideSubcategoryService(i do.Injector) (*service.SubcategoryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSubcategoryService(storeHandle.Store, log.Logger), nil
}

// ProvideGoalService provides the goal service.
func ProvideGoalService(i do.Injector) (*service.GoalService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	trackingService := do.MustInvoke[*service.TrackingService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewGoalService(storeHandle.Store, trackingService, log.Logger), nil
}

// ProvideAnalyticsService provides the analytics service.
func ProvideAnalyticsService(i do.Injector) (*service.AnalyticsService, error) {
	trackingService := do.MustInvoke[*service.TrackingService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAnalyticsService(trackingService, log.Logger), nil
}

package services

import (
	portsrepo "github.com/pranavks/user_account_app/internal/core/ports/repositories"
	portssvc "github.com/pranavks/user_account_app/internal/core/ports/services"
	"github.com/pranavks/user_account_app/internal/platform/config"
)

// NewServiceContainer wires all services against a single repository facade.
func NewServiceContainer(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:          NewUserService(userRepo),
		Token:         NewTokenService(cfg, userRepo),
		PasswordReset: NewPasswordResetService(cfg, userRepo),
	}
}

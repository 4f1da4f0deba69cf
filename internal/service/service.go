package service

import (
	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Service holds all business logic services.
type Service struct {
	Accounts *AccountService
	Auth     *AuthService
}

// NewService creates a new Service over the given ledger.
func NewService(ldg *ledger.Ledger, auth AuthConfig) *Service {
	return &Service{
		Accounts: NewAccountService(ldg),
		Auth:     NewAuthService(ldg, auth),
	}
}

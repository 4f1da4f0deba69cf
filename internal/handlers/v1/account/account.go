package account

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Account is the API response model for an account summary.
type Account struct {
	ID         string `json:"id" doc:"Account id"`
	HolderName string `json:"holderName" doc:"Account holder name"`
	Class      int    `json:"class" doc:"Account class: 0=Savings, 1=Current"`
	Balance    string `json:"balance" doc:"Decimal balance"`
}

// bearerSecurity marks an operation as requiring a customer token.
var bearerSecurity = []map[string][]string{{"bearer": {}}}

// domainError maps engine errors onto HTTP statuses.
func domainError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return huma.NewError(http.StatusBadRequest, "amount must be positive", err)
	case errors.Is(err, ledger.ErrAccountNotFound):
		return huma.NewError(http.StatusNotFound, "account not found", err)
	case errors.Is(err, ledger.ErrAuthenticationFailed):
		return huma.NewError(http.StatusUnauthorized, "authentication failed", err)
	case errors.Is(err, ledger.ErrSessionLocked):
		return huma.NewError(http.StatusLocked, "too many failed attempts", err)
	default:
		return huma.NewError(http.StatusInternalServerError, "internal error", err)
	}
}

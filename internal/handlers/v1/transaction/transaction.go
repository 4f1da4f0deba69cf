package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
)

// actionProcessor is the interface to the operator queue that executes
// ledger mutations.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// balanceReader fetches the post-operation balance for the response.
type balanceReader interface {
	GetAccount(ctx context.Context, id string) (*service.Account, error)
}

// BalanceResponse reports the balance after a money operation.
type BalanceResponse struct {
	Balance string `json:"balance" doc:"Decimal balance after the operation"`
}

// bearerSecurity marks an operation as requiring a customer token.
var bearerSecurity = []map[string][]string{{"bearer": {}}}

// domainError maps engine errors onto HTTP statuses.
func domainError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return huma.NewError(http.StatusBadRequest, "amount must be positive", err)
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return huma.NewError(http.StatusConflict, "insufficient funds", err)
	case errors.Is(err, ledger.ErrAccountNotFound):
		return huma.NewError(http.StatusNotFound, "account not found", err)
	default:
		return huma.NewError(http.StatusInternalServerError, "internal error", err)
	}
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	return amount, nil
}

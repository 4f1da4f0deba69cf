package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Withdraw debits an account, subject to the engine's funds guard.
type Withdraw struct {
	AccountID   string
	Amount      decimal.Decimal
	Description string
}

func (a *Withdraw) Perform(ctx context.Context, ldg *ledger.Ledger) error {
	acct, err := ldg.Account(a.AccountID)
	if err != nil {
		return err
	}
	return acct.Withdraw(a.Amount, a.Description)
}

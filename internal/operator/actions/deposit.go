package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Deposit credits an account.
type Deposit struct {
	AccountID   string
	Amount      decimal.Decimal
	Description string
}

func (a *Deposit) Perform(ctx context.Context, ldg *ledger.Ledger) error {
	acct, err := ldg.Account(a.AccountID)
	if err != nil {
		return err
	}
	return acct.Deposit(a.Amount, a.Description)
}

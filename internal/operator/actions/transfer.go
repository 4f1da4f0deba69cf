package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Transfer moves funds between two accounts via the ledger's
// debit-then-credit protocol.
type Transfer struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

func (a *Transfer) Perform(ctx context.Context, ldg *ledger.Ledger) error {
	from, err := ldg.Account(a.FromAccountID)
	if err != nil {
		return err
	}
	return ldg.Transfer(from, a.ToAccountID, a.Amount)
}

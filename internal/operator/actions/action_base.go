// Package actions defines the ledger mutations executed on the operator
// queue. Each action applies exactly one engine operation; the engine's
// own guards mean a failed action leaves no partial state behind.
package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

type IAction interface {
	Perform(ctx context.Context, ldg *ledger.Ledger) error
}

package actions

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// AccrueInterest runs the monthly interest sweep over every account.
type AccrueInterest struct{}

func (a *AccrueInterest) Perform(ctx context.Context, ldg *ledger.Ledger) error {
	credited := ldg.AccrueInterestAll()
	logrus.WithField("accounts", credited).Info("Actions.AccrueInterest.swept")
	return nil
}

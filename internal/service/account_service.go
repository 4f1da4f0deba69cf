package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// The original statement depth; used when the caller asks for no
// particular limit.
const defaultStatementDepth = 5

// AccountService handles account business logic over the ledger core.
type AccountService struct {
	ledger *ledger.Ledger
}

// NewAccountService creates a new AccountService.
func NewAccountService(ldg *ledger.Ledger) *AccountService {
	return &AccountService{ledger: ldg}
}

// CreateAccount opens a new account and returns its id.
func (s *AccountService) CreateAccount(ctx context.Context, input CreateAccount) (string, error) {
	if input.Class != AccountClassSavings && input.Class != AccountClassCurrent {
		return "", ErrInvalidClass
	}
	a, err := s.ledger.CreateAccount(input.HolderName, input.PIN, classToLedger(input.Class), input.InitialDeposit)
	if err != nil {
		return "", err
	}
	return a.ID(), nil
}

// GetAccount retrieves an account summary by id.
func (s *AccountService) GetAccount(ctx context.Context, id string) (*Account, error) {
	a, err := s.ledger.Account(id)
	if err != nil {
		return nil, err
	}
	out := Account{
		ID:         a.ID(),
		HolderName: a.HolderName(),
		Class:      classFromLedger(a.Class()),
		Balance:    a.Balance(),
	}
	return &out, nil
}

// Statement returns the last limit transactions in chronological order;
// a non-positive limit means the default depth.
func (s *AccountService) Statement(ctx context.Context, id string, limit int) ([]StatementEntry, error) {
	a, err := s.ledger.Account(id)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultStatementDepth
	}

	transactions := a.RecentTransactions(limit)
	entries := make([]StatementEntry, len(transactions))
	for i, t := range transactions {
		entries[i] = StatementEntry{
			ID:           t.ID.String(),
			Timestamp:    t.Timestamp,
			Kind:         t.Kind.String(),
			Delta:        t.Delta,
			Description:  t.Description,
			BalanceAfter: t.BalanceAfter,
		}
	}
	return entries, nil
}

// ChangePIN replaces the account's credential. Callers must have
// authenticated already; the operation itself does not re-verify.
func (s *AccountService) ChangePIN(ctx context.Context, id, newPIN string) error {
	a, err := s.ledger.Account(id)
	if err != nil {
		return err
	}
	return a.ChangePIN(newPIN)
}

// ListAccounts returns summaries for every account, ordered by id. This
// is the admin-gated export; callers are expected to have passed the admin
// gate already.
func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	summaries := s.ledger.Snapshot()
	out := make([]Account, len(summaries))
	for i, summary := range summaries {
		out[i] = accountFromSummary(summary)
	}
	return out, nil
}

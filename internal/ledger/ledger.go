package ledger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const (
	idPrefix = "ACCT"
	seqStart = 1000

	// placeholderPIN seeds restored accounts; the snapshot format does not
	// carry credentials, so a restored account never authenticates against
	// its original PIN.
	placeholderPIN = "0000"
)

// Ledger is the registry owning all accounts. It mints ids, authenticates
// PIN-based sessions, and orchestrates transfers across accounts it owns.
// The map and sequence are guarded by an RWMutex; individual account state
// is guarded by each account's own lock.
type Ledger struct {
	mu       sync.RWMutex
	seq      int64
	accounts map[string]*Account
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		seq:      seqStart,
		accounts: make(map[string]*Account),
	}
}

// CreateAccount mints a fresh unique id, registers a new account with the
// initial deposit as its genesis balance (no Deposit record), and returns
// it. A negative initial deposit fails with ErrInvalidAmount.
func (l *Ledger) CreateAccount(holderName, pin string, class Class, initialDeposit decimal.Decimal) (*Account, error) {
	if initialDeposit.IsNegative() {
		return nil, ErrInvalidAmount
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	id := fmt.Sprintf("%s%d", idPrefix, l.seq)
	a := newAccount(id, holderName, hash, class, initialDeposit)
	l.accounts[id] = a
	return a, nil
}

// Account looks up an account by id.
func (l *Ledger) Account(id string) (*Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// Authenticate verifies the PIN for the given account against the caller's
// session budget. An unknown id fails with ErrAccountNotFound without
// consuming an attempt. A wrong PIN consumes one attempt and fails with
// ErrAuthenticationFailed, or ErrSessionLocked on the failure that
// exhausts the budget. Success resets the budget and returns the account.
func (l *Ledger) Authenticate(id, pin string, session *Session) (*Account, error) {
	if session.Locked() {
		return nil, ErrSessionLocked
	}
	a, err := l.Account(id)
	if err != nil {
		return nil, err
	}
	if !a.VerifyPIN(pin) {
		if session.fail() {
			return nil, ErrSessionLocked
		}
		return nil, ErrAuthenticationFailed
	}
	session.reset()
	return a, nil
}

// Transfer moves amount from the given account to the account with id
// toID. The debit runs first; only if it succeeds is the credit applied,
// so a failed transfer leaves both accounts untouched. The two steps are
// independently locked in debit-then-credit order, never holding both
// account locks at once.
func (l *Ledger) Transfer(from *Account, toID string, amount decimal.Decimal) error {
	to, err := l.Account(toID)
	if err != nil {
		return err
	}
	if err := from.debit(KindTransferOut, amount, "Transfer to "+toID); err != nil {
		return err
	}
	// The credit of a positive amount cannot fail; the debit above already
	// validated the amount.
	return to.credit(KindTransferIn, amount, "Transfer from "+from.ID())
}

// AccrueInterestAll credits one month of interest on every account and
// returns the number of accounts credited. Accounts are independent; the
// sweep as a whole is not atomic, but each individual credit is a
// complete, valid state.
func (l *Ledger) AccrueInterestAll() int {
	accounts := l.snapshotAccounts()
	for _, a := range accounts {
		a.AccrueInterest()
	}
	return len(accounts)
}

// Size returns the number of registered accounts.
func (l *Ledger) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.accounts)
}

// Summary is the read-only per-account export used for persistence and
// admin listings. It omits credentials and transaction history.
type Summary struct {
	ID         string
	HolderName string
	Class      Class
	Balance    decimal.Decimal
}

// Snapshot exports every account as a Summary, ordered by id.
func (l *Ledger) Snapshot() []Summary {
	accounts := l.snapshotAccounts()
	out := make([]Summary, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, Summary{
			ID:         a.ID(),
			HolderName: a.HolderName(),
			Class:      a.Class(),
			Balance:    a.Balance(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Restore reconstructs accounts from persisted summaries. The snapshot
// format drops credentials and history, so each account is seeded with the
// placeholder PIN and an empty log; only the balance, holder, and class
// survive. The id sequence advances past the highest restored suffix so
// new ids never collide with restored ones.
func (l *Ledger) Restore(records []Summary) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(placeholderPIN), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range records {
		l.accounts[r.ID] = newAccount(r.ID, r.HolderName, hash, r.Class, r.Balance)
		if suffix, ok := idSuffix(r.ID); ok && suffix > l.seq {
			l.seq = suffix
		}
	}
	return nil
}

func (l *Ledger) snapshotAccounts() []*Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, a)
	}
	return out
}

func idSuffix(id string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimPrefix(id, idPrefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Package ledger implements the in-process account ledger: accounts with
// PIN-gated identities, balances, append-only transaction logs, and the
// registry that creates accounts and runs the cross-account transfer
// protocol. All balance mutation goes through Account methods; nothing
// outside this package touches an account's state directly.
package ledger

import (
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Class fixes an account's interest rate.
type Class int8

const (
	ClassSavings Class = iota
	ClassCurrent
)

// String returns the display name of the account class.
func (c Class) String() string {
	if c == ClassSavings {
		return "Savings"
	}
	return "Current"
}

// Annual interest rates, applied monthly as balance * rate / 12.
var (
	savingsAnnualRate = decimal.NewFromFloat(0.04)
	currentAnnualRate = decimal.NewFromFloat(0.01)
	monthsPerYear     = decimal.NewFromInt(12)
)

// Account owns its balance and transaction log. The mutex serializes all
// mutations so two concurrent withdrawals cannot both observe sufficient
// funds when only one would succeed serially.
type Account struct {
	mu           sync.Mutex
	id           string
	holderName   string
	pinHash      []byte
	class        Class
	genesis      decimal.Decimal
	balance      decimal.Decimal
	transactions []Transaction
}

func newAccount(id, holderName string, pinHash []byte, class Class, initialDeposit decimal.Decimal) *Account {
	return &Account{
		id:         id,
		holderName: holderName,
		pinHash:    pinHash,
		class:      class,
		genesis:    initialDeposit,
		balance:    initialDeposit,
	}
}

// ID returns the immutable account id.
func (a *Account) ID() string { return a.id }

// HolderName returns the immutable holder name.
func (a *Account) HolderName() string { return a.holderName }

// Class returns the immutable account class.
func (a *Account) Class() Class { return a.class }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// VerifyPIN compares the candidate against the stored credential. It has
// no side effects; attempt budgets are a caller-side concern.
func (a *Account) VerifyPIN(candidate string) bool {
	a.mu.Lock()
	hash := a.pinHash
	a.mu.Unlock()
	return bcrypt.CompareHashAndPassword(hash, []byte(candidate)) == nil
}

// ChangePIN replaces the stored credential unconditionally; the calling
// context must already have authenticated. A zero-delta record is appended
// for audit.
func (a *Account) ChangePIN(newPIN string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPIN), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pinHash = hash
	a.record(KindCredentialChange, decimal.Zero, "PIN Changed")
	return nil
}

// Deposit increases the balance by amount. Amounts <= 0 are rejected with
// ErrInvalidAmount; there is no upper bound.
func (a *Account) Deposit(amount decimal.Decimal, description string) error {
	if description == "" {
		description = "Deposit"
	}
	return a.credit(KindDeposit, amount, description)
}

// Withdraw decreases the balance by amount. Amounts <= 0 are rejected with
// ErrInvalidAmount; amounts above the balance fail with
// ErrInsufficientFunds without mutating state. This is the sole
// funds-insufficiency guard in the system.
func (a *Account) Withdraw(amount decimal.Decimal, description string) error {
	if description == "" {
		description = "Withdrawal"
	}
	return a.debit(KindWithdrawal, amount, description)
}

// AccrueInterest credits one month of interest (balance * annualRate / 12,
// rounded to cents) and returns the credited amount. It does not track the
// last accrual time; the scheduler is responsible for calling it at most
// once per period.
func (a *Account) AccrueInterest() decimal.Decimal {
	rate := currentAnnualRate
	if a.class == ClassSavings {
		rate = savingsAnnualRate
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	interest := a.balance.Mul(rate).Div(monthsPerYear).Round(2)
	a.balance = a.balance.Add(interest)
	a.record(KindInterestCredit, interest, "Interest Credited")
	return interest
}

// RecentTransactions returns the last min(n, len(log)) entries in
// chronological order. The result is a copy; the log itself is never
// exposed or mutated.
func (a *Account) RecentTransactions(n int) []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	if n > len(a.transactions) {
		n = len(a.transactions)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Transaction, n)
	copy(out, a.transactions[len(a.transactions)-n:])
	return out
}

// TransactionCount returns the length of the transaction log.
func (a *Account) TransactionCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.transactions)
}

func (a *Account) credit(kind Kind, amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	a.record(kind, amount, description)
	return nil
}

func (a *Account) debit(kind Kind, amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	a.record(kind, amount.Neg(), description)
	return nil
}

// record appends an audit entry; the caller must hold a.mu and have
// already applied the delta to the balance.
func (a *Account) record(kind Kind, delta decimal.Decimal, description string) {
	a.transactions = append(a.transactions, Transaction{
		ID:           uuid.Must(uuid.NewV4()),
		Timestamp:    time.Now(),
		Kind:         kind,
		Delta:        delta,
		Description:  description,
		BalanceAfter: a.balance,
	})
}

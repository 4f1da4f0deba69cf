package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// AccountClass represents an account class in the service layer.
type AccountClass int8

const (
	AccountClassSavings AccountClass = iota
	AccountClassCurrent
)

// Account represents an account summary in the service layer.
type Account struct {
	ID         string
	HolderName string
	Class      AccountClass
	Balance    decimal.Decimal
}

// CreateAccount is the input for opening a new account.
type CreateAccount struct {
	HolderName     string
	PIN            string
	Class          AccountClass
	InitialDeposit decimal.Decimal
}

// StatementEntry represents one transaction in an account statement.
type StatementEntry struct {
	ID           string
	Timestamp    time.Time
	Kind         string
	Delta        decimal.Decimal
	Description  string
	BalanceAfter decimal.Decimal
}

func classToLedger(c AccountClass) ledger.Class {
	return ledger.Class(c)
}

func classFromLedger(c ledger.Class) AccountClass {
	return AccountClass(c)
}

func accountFromSummary(s ledger.Summary) Account {
	return Account{
		ID:         s.ID,
		HolderName: s.HolderName,
		Class:      classFromLedger(s.Class),
		Balance:    s.Balance,
	}
}

package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Kind classifies a transaction record.
type Kind int8

const (
	KindDeposit Kind = iota
	KindWithdrawal
	KindTransferIn
	KindTransferOut
	KindInterestCredit
	KindCredentialChange
)

// String returns the display name used in statements.
func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "Deposit"
	case KindWithdrawal:
		return "Withdrawal"
	case KindTransferIn:
		return "Transfer In"
	case KindTransferOut:
		return "Transfer Out"
	case KindInterestCredit:
		return "Interest"
	case KindCredentialChange:
		return "PIN Change"
	default:
		return "Unknown"
	}
}

// Transaction is an immutable record of one balance-affecting event.
// Delta is signed; it is zero for credential-change markers. BalanceAfter
// is the balance snapshot immediately following this entry and always
// equals the running sum of deltas over the genesis balance.
type Transaction struct {
	ID           uuid.UUID
	Timestamp    time.Time
	Kind         Kind
	Delta        decimal.Decimal
	Description  string
	BalanceAfter decimal.Decimal
}

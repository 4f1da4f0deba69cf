package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount_MintsSequentialIDs(t *testing.T) {
	l := New()

	first, err := l.CreateAccount("Alice", "1234", ClassSavings, d("100"))
	require.NoError(t, err)
	second, err := l.CreateAccount("Bob", "5678", ClassCurrent, d("0"))
	require.NoError(t, err)

	assert.Equal(t, "ACCT1001", first.ID())
	assert.Equal(t, "ACCT1002", second.ID())
	assert.Equal(t, 2, l.Size())
}

func TestCreateAccount_GenesisHasNoTransactionRecord(t *testing.T) {
	l := New()

	a, err := l.CreateAccount("Alice", "1234", ClassSavings, d("250.00"))
	require.NoError(t, err)

	assert.True(t, a.Balance().Equal(d("250.00")))
	assert.Equal(t, 0, a.TransactionCount())
}

func TestCreateAccount_RejectsNegativeInitialDeposit(t *testing.T) {
	l := New()

	_, err := l.CreateAccount("Alice", "1234", ClassSavings, d("-1"))
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, 0, l.Size())
}

func TestAccount_UnknownID(t *testing.T) {
	l := New()

	_, err := l.Account("ACCT9999")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAuthenticate_SuccessResetsBudget(t *testing.T) {
	l := New()
	a, err := l.CreateAccount("Alice", "1234", ClassSavings, d("0"))
	require.NoError(t, err)

	session := NewSession(3)
	_, err = l.Authenticate(a.ID(), "0000", session)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
	require.Equal(t, 2, session.Remaining())

	got, err := l.Authenticate(a.ID(), "1234", session)
	require.NoError(t, err)
	assert.Same(t, a, got)
	assert.Equal(t, 3, session.Remaining())
}

func TestAuthenticate_LocksAfterBudgetExhausted(t *testing.T) {
	l := New()
	a, err := l.CreateAccount("Alice", "1234", ClassSavings, d("0"))
	require.NoError(t, err)

	session := NewSession(3)
	_, err = l.Authenticate(a.ID(), "1111", session)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	_, err = l.Authenticate(a.ID(), "2222", session)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	_, err = l.Authenticate(a.ID(), "3333", session)
	assert.ErrorIs(t, err, ErrSessionLocked)

	// Even the correct PIN is rejected once the session is locked.
	_, err = l.Authenticate(a.ID(), "1234", session)
	assert.ErrorIs(t, err, ErrSessionLocked)
	assert.True(t, session.Locked())
}

func TestAuthenticate_UnknownAccountDoesNotConsumeAttempt(t *testing.T) {
	l := New()

	session := NewSession(3)
	_, err := l.Authenticate("ACCT9999", "1234", session)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Equal(t, 3, session.Remaining())
}

func TestTransfer_MovesFundsAndRecordsBothLegs(t *testing.T) {
	l := New()
	from, err := l.CreateAccount("Alice", "1234", ClassSavings, d("500.00"))
	require.NoError(t, err)
	to, err := l.CreateAccount("Bob", "5678", ClassCurrent, d("0"))
	require.NoError(t, err)

	require.NoError(t, l.Transfer(from, to.ID(), d("10.00")))

	assert.True(t, from.Balance().Equal(d("490.00")))
	assert.True(t, to.Balance().Equal(d("10.00")))

	fromTx := from.RecentTransactions(1)
	require.Len(t, fromTx, 1)
	assert.Equal(t, KindTransferOut, fromTx[0].Kind)
	assert.Equal(t, "Transfer to "+to.ID(), fromTx[0].Description)

	toTx := to.RecentTransactions(1)
	require.Len(t, toTx, 1)
	assert.Equal(t, KindTransferIn, toTx[0].Kind)
	assert.Equal(t, "Transfer from "+from.ID(), toTx[0].Description)
}

func TestTransfer_UnknownTargetLeavesSourceUntouched(t *testing.T) {
	l := New()
	from, err := l.CreateAccount("Alice", "1234", ClassSavings, d("500.00"))
	require.NoError(t, err)

	err = l.Transfer(from, "ACCT9999", d("10.00"))
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.True(t, from.Balance().Equal(d("500.00")))
	assert.Equal(t, 0, from.TransactionCount())
}

func TestTransfer_InsufficientFundsLeavesBothUntouched(t *testing.T) {
	l := New()
	from, err := l.CreateAccount("Alice", "1234", ClassSavings, d("5.00"))
	require.NoError(t, err)
	to, err := l.CreateAccount("Bob", "5678", ClassCurrent, d("0"))
	require.NoError(t, err)

	err = l.Transfer(from, to.ID(), d("10.00"))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, from.Balance().Equal(d("5.00")))
	assert.True(t, to.Balance().Equal(decimal.Zero))
	assert.Equal(t, 0, from.TransactionCount())
	assert.Equal(t, 0, to.TransactionCount())
}

func TestAccrueInterestAll_SweepsEveryAccount(t *testing.T) {
	l := New()
	savings, err := l.CreateAccount("Alice", "1234", ClassSavings, d("1200.00"))
	require.NoError(t, err)
	current, err := l.CreateAccount("Bob", "5678", ClassCurrent, d("1200.00"))
	require.NoError(t, err)

	assert.Equal(t, 2, l.AccrueInterestAll())
	assert.True(t, savings.Balance().Equal(d("1204.00")))
	assert.True(t, current.Balance().Equal(d("1201.00")))
}

func TestSnapshot_OrderedByID(t *testing.T) {
	l := New()
	_, err := l.CreateAccount("Alice", "1234", ClassSavings, d("100.00"))
	require.NoError(t, err)
	_, err = l.CreateAccount("Bob", "5678", ClassCurrent, d("200.00"))
	require.NoError(t, err)

	snapshot := l.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "ACCT1001", snapshot[0].ID)
	assert.Equal(t, "Alice", snapshot[0].HolderName)
	assert.Equal(t, ClassSavings, snapshot[0].Class)
	assert.True(t, snapshot[0].Balance.Equal(d("100.00")))
	assert.Equal(t, "ACCT1002", snapshot[1].ID)
}

func TestRestore_SeedsPlaceholderPINAndAdvancesSequence(t *testing.T) {
	l := New()
	original, err := l.CreateAccount("Alice", "1234", ClassSavings, d("100.00"))
	require.NoError(t, err)
	require.NoError(t, original.Deposit(d("50.00"), ""))

	restored := New()
	require.NoError(t, restored.Restore(l.Snapshot()))

	a, err := restored.Account(original.ID())
	require.NoError(t, err)
	assert.True(t, a.Balance().Equal(d("150.00")))
	assert.Equal(t, "Alice", a.HolderName())
	assert.Equal(t, ClassSavings, a.Class())

	// Credentials and history are not part of the snapshot.
	assert.False(t, a.VerifyPIN("1234"))
	assert.True(t, a.VerifyPIN("0000"))
	assert.Equal(t, 0, a.TransactionCount())

	// New ids continue past the highest restored suffix.
	next, err := restored.CreateAccount("Bob", "5678", ClassCurrent, d("0"))
	require.NoError(t, err)
	assert.Equal(t, "ACCT1002", next.ID())
}

// Exercises the canonical lifecycle: open, deposit, failed withdrawal,
// drain, and a transfer from a second account.
func TestLedger_EndToEnd(t *testing.T) {
	l := New()

	alice, err := l.CreateAccount("Alice", "1234", ClassSavings, d("100.00"))
	require.NoError(t, err)

	require.NoError(t, alice.Deposit(d("50.00"), ""))
	assert.True(t, alice.Balance().Equal(d("150.00")))
	assert.Equal(t, 1, alice.TransactionCount())

	assert.ErrorIs(t, alice.Withdraw(d("200.00"), ""), ErrInsufficientFunds)

	require.NoError(t, alice.Withdraw(d("150.00"), ""))
	assert.True(t, alice.Balance().Equal(decimal.Zero))

	bob, err := l.CreateAccount("Bob", "5678", ClassCurrent, d("500.00"))
	require.NoError(t, err)
	require.NoError(t, l.Transfer(bob, alice.ID(), d("10.00")))

	assert.True(t, alice.Balance().Equal(d("10.00")))
	assert.True(t, bob.Balance().Equal(d("490.00")))
	assert.True(t, alice.Balance().Equal(auditSum(alice, d("100.00"))))
	assert.True(t, bob.Balance().Equal(auditSum(bob, d("500.00"))))
}

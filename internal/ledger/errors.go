package ledger

import "errors"

var (
	// ErrInvalidAmount indicates a non-positive amount for a deposit or
	// withdrawal, or a negative initial deposit.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds indicates a withdrawal or transfer debit that
	// exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound indicates a lookup miss on an account id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAuthenticationFailed indicates a PIN mismatch.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrSessionLocked indicates the login attempt budget is exhausted.
	ErrSessionLocked = errors.New("session locked")
)

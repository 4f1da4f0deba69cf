package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
)

// TransferInput is the Huma input for a transfer.
type TransferInput struct {
	Body TransferBody
}

// TransferBody is the request body for a transfer. The source account is
// the authenticated caller's account.
type TransferBody struct {
	ToAccountID string `json:"toAccountID" minLength:"1" doc:"Recipient account id"`
	Amount      string `json:"amount" minLength:"1" doc:"Decimal amount, must be positive"`
}

// TransferOutput is the response for a transfer.
type TransferOutput struct {
	Body BalanceResponse
}

// TransferHandler handles POST /v1/transfer.
type TransferHandler struct {
	Operator       actionProcessor
	AccountService balanceReader
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(op actionProcessor, svc balanceReader) *TransferHandler {
	return &TransferHandler{Operator: op, AccountService: svc}
}

// Register registers the transfer endpoint with the Huma API.
func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transfer",
		Summary:     "Transfer funds to another account",
		Description: "Debits the authenticated account and credits the recipient. A failed debit leaves both accounts untouched.",
		Security:    bearerSecurity,
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	fromID := service.AccountIDFromContext(ctx)
	if fromID == "" {
		return nil, huma.NewError(http.StatusUnauthorized, "missing bearer token")
	}
	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	err = h.Operator.Process(ctx, &actions.Transfer{
		FromAccountID: fromID,
		ToAccountID:   input.Body.ToAccountID,
		Amount:        amount,
	})
	if err != nil {
		return nil, domainError(err)
	}

	a, err := h.AccountService.GetAccount(ctx, fromID)
	if err != nil {
		return nil, domainError(err)
	}
	return &TransferOutput{Body: BalanceResponse{Balance: a.Balance.StringFixed(2)}}, nil
}

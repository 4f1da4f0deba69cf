package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
)

// DepositInput is the Huma input for a deposit.
type DepositInput struct {
	ID   string `path:"id" doc:"Account id"`
	Body MoneyBody
}

// MoneyBody is the shared request body for deposits and withdrawals.
type MoneyBody struct {
	Amount      string `json:"amount" minLength:"1" doc:"Decimal amount, must be positive"`
	Description string `json:"description,omitempty" doc:"Optional description"`
}

// DepositOutput is the response for a deposit.
type DepositOutput struct {
	Body BalanceResponse
}

// DepositHandler handles POST /v1/account/{id}/deposit.
type DepositHandler struct {
	Operator       actionProcessor
	AccountService balanceReader
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(op actionProcessor, svc balanceReader) *DepositHandler {
	return &DepositHandler{Operator: op, AccountService: svc}
}

// Register registers the deposit endpoint with the Huma API.
func (h *DepositHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit",
		Method:      http.MethodPost,
		Path:        "/v1/account/{id}/deposit",
		Summary:     "Deposit funds",
		Security:    bearerSecurity,
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DepositHandler) handle(ctx context.Context, input *DepositInput) (*DepositOutput, error) {
	if service.AccountIDFromContext(ctx) != input.ID {
		return nil, huma.NewError(http.StatusForbidden, "token does not grant access to this account")
	}
	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("depositMs")
	}
	err = h.Operator.Process(ctx, &actions.Deposit{
		AccountID:   input.ID,
		Amount:      amount,
		Description: input.Body.Description,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, domainError(err)
	}

	a, err := h.AccountService.GetAccount(ctx, input.ID)
	if err != nil {
		return nil, domainError(err)
	}
	return &DepositOutput{Body: BalanceResponse{Balance: a.Balance.StringFixed(2)}}, nil
}

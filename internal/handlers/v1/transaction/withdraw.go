package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
)

// WithdrawInput is the Huma input for a withdrawal.
type WithdrawInput struct {
	ID   string `path:"id" doc:"Account id"`
	Body MoneyBody
}

// WithdrawOutput is the response for a withdrawal.
type WithdrawOutput struct {
	Body BalanceResponse
}

// WithdrawHandler handles POST /v1/account/{id}/withdraw.
type WithdrawHandler struct {
	Operator       actionProcessor
	AccountService balanceReader
}

// NewWithdrawHandler creates a new WithdrawHandler.
func NewWithdrawHandler(op actionProcessor, svc balanceReader) *WithdrawHandler {
	return &WithdrawHandler{Operator: op, AccountService: svc}
}

// Register registers the withdraw endpoint with the Huma API.
func (h *WithdrawHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "withdraw",
		Method:      http.MethodPost,
		Path:        "/v1/account/{id}/withdraw",
		Summary:     "Withdraw funds",
		Description: "Fails with a conflict when the amount exceeds the balance; the balance never goes negative.",
		Security:    bearerSecurity,
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *WithdrawHandler) handle(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	if service.AccountIDFromContext(ctx) != input.ID {
		return nil, huma.NewError(http.StatusForbidden, "token does not grant access to this account")
	}
	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	err = h.Operator.Process(ctx, &actions.Withdraw{
		AccountID:   input.ID,
		Amount:      amount,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, domainError(err)
	}

	a, err := h.AccountService.GetAccount(ctx, input.ID)
	if err != nil {
		return nil, domainError(err)
	}
	return &WithdrawOutput{Body: BalanceResponse{Balance: a.Balance.StringFixed(2)}}, nil
}

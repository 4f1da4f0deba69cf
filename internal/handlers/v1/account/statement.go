package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// StatementInput is the Huma input for fetching an account statement.
type StatementInput struct {
	ID    string `path:"id" doc:"Account id"`
	Limit int    `query:"limit" minimum:"1" maximum:"100" doc:"Number of most recent transactions, default 5"`
}

// StatementEntry is one transaction row in the statement response.
type StatementEntry struct {
	ID           string    `json:"id" doc:"Transaction id"`
	Timestamp    time.Time `json:"timestamp" doc:"Time the transaction was recorded"`
	Kind         string    `json:"kind" doc:"Transaction kind"`
	Delta        string    `json:"delta" doc:"Signed decimal amount"`
	Description  string    `json:"description" doc:"Transaction description"`
	BalanceAfter string    `json:"balanceAfter" doc:"Balance immediately after this entry"`
}

// StatementResponseBody is the response body for a statement.
type StatementResponseBody struct {
	Transactions []StatementEntry `json:"transactions" doc:"Oldest first"`
}

// StatementOutput is the response for fetching a statement.
type StatementOutput struct {
	Body StatementResponseBody
}

// statementReader is the interface for reading statements.
type statementReader interface {
	Statement(ctx context.Context, id string, limit int) ([]service.StatementEntry, error)
}

// StatementHandler handles GET /v1/account/{id}/statement.
type StatementHandler struct {
	AccountService statementReader
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(svc statementReader) *StatementHandler {
	return &StatementHandler{AccountService: svc}
}

// Register registers the statement endpoint with the Huma API.
func (h *StatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-statement",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}/statement",
		Summary:     "Get recent transactions",
		Security:    bearerSecurity,
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *StatementHandler) handle(ctx context.Context, input *StatementInput) (*StatementOutput, error) {
	if service.AccountIDFromContext(ctx) != input.ID {
		return nil, huma.NewError(http.StatusForbidden, "token does not grant access to this account")
	}

	entries, err := h.AccountService.Statement(ctx, input.ID, input.Limit)
	if err != nil {
		return nil, domainError(err)
	}

	transactions := make([]StatementEntry, len(entries))
	for i, e := range entries {
		transactions[i] = StatementEntry{
			ID:           e.ID,
			Timestamp:    e.Timestamp,
			Kind:         e.Kind,
			Delta:        e.Delta.StringFixed(2),
			Description:  e.Description,
			BalanceAfter: e.BalanceAfter.StringFixed(2),
		}
	}
	return &StatementOutput{Body: StatementResponseBody{Transactions: transactions}}, nil
}

package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// GetAccountInput is the Huma input for fetching an account summary.
type GetAccountInput struct {
	ID string `path:"id" doc:"Account id"`
}

// GetAccountOutput is the response for fetching an account summary.
type GetAccountOutput struct {
	Body Account
}

// accountGetter is the interface for reading account summaries.
type accountGetter interface {
	GetAccount(ctx context.Context, id string) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/account/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get an account summary",
		Security:    bearerSecurity,
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	if service.AccountIDFromContext(ctx) != input.ID {
		return nil, huma.NewError(http.StatusForbidden, "token does not grant access to this account")
	}

	a, err := h.AccountService.GetAccount(ctx, input.ID)
	if err != nil {
		return nil, domainError(err)
	}

	return &GetAccountOutput{Body: Account{
		ID:         a.ID,
		HolderName: a.HolderName,
		Class:      int(a.Class),
		Balance:    a.Balance.StringFixed(2),
	}}, nil
}

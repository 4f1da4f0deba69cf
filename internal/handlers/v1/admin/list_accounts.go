package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// ListAccountsInput is the Huma input for the all-accounts summary.
type ListAccountsInput struct {
	AdminPassword string `header:"X-Admin-Password" doc:"Admin gate password"`
}

// AccountSummary is one row of the all-accounts listing.
type AccountSummary struct {
	ID         string `json:"id" doc:"Account id"`
	HolderName string `json:"holderName" doc:"Account holder name"`
	Class      int    `json:"class" doc:"Account class: 0=Savings, 1=Current"`
	Balance    string `json:"balance" doc:"Decimal balance"`
}

// ListAccountsResponseBody is the response body for the listing.
type ListAccountsResponseBody struct {
	Accounts []AccountSummary `json:"accounts" doc:"All accounts ordered by id"`
}

// ListAccountsOutput is the response for the listing.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// accountLister is the interface for the accounts export.
type accountLister interface {
	ListAccounts(ctx context.Context) ([]service.Account, error)
}

// ListAccountsHandler handles GET /v1/admin/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
	Verifier       adminVerifier
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister, verifier adminVerifier) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc, Verifier: verifier}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "admin-list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/admin/accounts",
		Summary:     "List all accounts",
		Tags:        []string{"Admin"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	if err := requireAdmin(h.Verifier, input.AdminPassword); err != nil {
		return nil, err
	}

	accounts, err := h.AccountService.ListAccounts(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list accounts", err)
	}

	out := make([]AccountSummary, len(accounts))
	for i, a := range accounts {
		out[i] = AccountSummary{
			ID:         a.ID,
			HolderName: a.HolderName,
			Class:      int(a.Class),
			Balance:    a.Balance.StringFixed(2),
		}
	}
	return &ListAccountsOutput{Body: ListAccountsResponseBody{Accounts: out}}, nil
}

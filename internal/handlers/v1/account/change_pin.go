package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// ChangePINInput is the Huma input for replacing an account's PIN.
type ChangePINInput struct {
	ID   string `path:"id" doc:"Account id"`
	Body ChangePINBody
}

// ChangePINBody is the request body for replacing a PIN.
type ChangePINBody struct {
	NewPIN string `json:"newPIN" doc:"New 4-digit PIN"`
}

// ChangePINOutput is the response for replacing a PIN.
type ChangePINOutput struct {
	Status int
}

// pinChanger is the interface for replacing account credentials.
type pinChanger interface {
	ChangePIN(ctx context.Context, id, newPIN string) error
}

// ChangePINHandler handles POST /v1/account/{id}/pin.
type ChangePINHandler struct {
	AccountService pinChanger
}

// NewChangePINHandler creates a new ChangePINHandler.
func NewChangePINHandler(svc pinChanger) *ChangePINHandler {
	return &ChangePINHandler{AccountService: svc}
}

// Register registers the change PIN endpoint with the Huma API.
func (h *ChangePINHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "change-pin",
		Method:      http.MethodPost,
		Path:        "/v1/account/{id}/pin",
		Summary:     "Change the account PIN",
		Security:    bearerSecurity,
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ChangePINHandler) handle(ctx context.Context, input *ChangePINInput) (*ChangePINOutput, error) {
	if service.AccountIDFromContext(ctx) != input.ID {
		return nil, huma.NewError(http.StatusForbidden, "token does not grant access to this account")
	}
	if !validPIN(input.Body.NewPIN) {
		return nil, huma.NewError(http.StatusBadRequest, "pin must be 4 digits", nil)
	}

	if err := h.AccountService.ChangePIN(ctx, input.ID, input.Body.NewPIN); err != nil {
		return nil, domainError(err)
	}
	return &ChangePINOutput{Status: http.StatusNoContent}, nil
}

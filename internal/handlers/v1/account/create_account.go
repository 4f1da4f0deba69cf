package account

import (
	"context"
	"net/http"
	"unicode"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CreateAccountInput is the Huma input for opening an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for opening an account.
type CreateAccountBody struct {
	HolderName     string `json:"holderName" minLength:"1" doc:"Account holder name"`
	PIN            string `json:"pin" doc:"4-digit PIN"`
	Class          int    `json:"class" minimum:"0" maximum:"1" doc:"Account class: 0=Savings, 1=Current"`
	InitialDeposit string `json:"initialDeposit,omitempty" doc:"Initial deposit (e.g. '0' or '100.00'), defaults to 0"`
}

// CreateAccountResponse is the response body for opening an account.
type CreateAccountResponse struct {
	ID string `json:"id" doc:"Created account id"`
}

// CreateAccountOutput is the response for opening an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// accountCreator is the interface for opening accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, input service.CreateAccount) (string, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Open an account",
		Description: "Opens a new account with the given holder name, PIN, class, and initial deposit.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (service.CreateAccount, error) {
	if !validPIN(input.Body.PIN) {
		return service.CreateAccount{}, huma.NewError(http.StatusBadRequest, "pin must be 4 digits", nil)
	}

	depositStr := input.Body.InitialDeposit
	if depositStr == "" {
		depositStr = "0"
	}
	initialDeposit, err := decimal.NewFromString(depositStr)
	if err != nil {
		return service.CreateAccount{}, huma.NewError(http.StatusBadRequest, "invalid initialDeposit", err)
	}
	if initialDeposit.IsNegative() {
		return service.CreateAccount{}, huma.NewError(http.StatusBadRequest, "initialDeposit must not be negative", nil)
	}

	return service.CreateAccount{
		HolderName:     input.Body.HolderName,
		PIN:            input.Body.PIN,
		Class:          service.AccountClass(input.Body.Class),
		InitialDeposit: initialDeposit,
	}, nil
}

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.AccountService.CreateAccount(ctx, create)
	if err != nil {
		return nil, domainError(err)
	}

	if logData != nil {
		logData.AddData("accountID", id)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{ID: id},
	}, nil
}

package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// LoginInput is the Huma input for a PIN login.
type LoginInput struct {
	Body LoginBody
}

// LoginBody is the request body for a PIN login.
type LoginBody struct {
	AccountID string `json:"accountID" minLength:"1" doc:"Account id"`
	PIN       string `json:"pin" doc:"4-digit PIN"`
}

// LoginResponse carries the bearer token for subsequent requests.
type LoginResponse struct {
	Token string `json:"token" doc:"Bearer token"`
}

// LoginOutput is the response for a PIN login.
type LoginOutput struct {
	Body LoginResponse
}

// pinAuthenticator is the interface for PIN logins.
type pinAuthenticator interface {
	Login(ctx context.Context, accountID, pin string) (string, error)
}

// LoginHandler handles POST /v1/login.
type LoginHandler struct {
	AuthService pinAuthenticator
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc pinAuthenticator) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/login",
		Summary:     "Log in with account id and PIN",
		Description: "Verifies the PIN and returns a bearer token. Repeated failures lock the login session until the server restarts.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	token, err := h.AuthService.Login(ctx, input.Body.AccountID, input.Body.PIN)
	if err != nil {
		return nil, domainError(err)
	}
	return &LoginOutput{Body: LoginResponse{Token: token}}, nil
}

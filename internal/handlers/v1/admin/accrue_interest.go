package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// AccrueInterestInput is the Huma input for the interest sweep.
type AccrueInterestInput struct {
	AdminPassword string `header:"X-Admin-Password" doc:"Admin gate password"`
}

// AccrueInterestOutput is the response for the interest sweep.
type AccrueInterestOutput struct {
	Status int
}

// actionProcessor is the interface to the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// AccrueInterestHandler handles POST /v1/admin/interest.
type AccrueInterestHandler struct {
	Operator actionProcessor
	Verifier adminVerifier
}

// NewAccrueInterestHandler creates a new AccrueInterestHandler.
func NewAccrueInterestHandler(op actionProcessor, verifier adminVerifier) *AccrueInterestHandler {
	return &AccrueInterestHandler{Operator: op, Verifier: verifier}
}

// Register registers the interest sweep endpoint with the Huma API.
func (h *AccrueInterestHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "accrue-interest",
		Method:      http.MethodPost,
		Path:        "/v1/admin/interest",
		Summary:     "Apply monthly interest to all accounts",
		Tags:        []string{"Admin"},
	}, h.handle)
}

func (h *AccrueInterestHandler) handle(ctx context.Context, input *AccrueInterestInput) (*AccrueInterestOutput, error) {
	if err := requireAdmin(h.Verifier, input.AdminPassword); err != nil {
		return nil, err
	}
	if err := h.Operator.Process(ctx, &actions.AccrueInterest{}); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "interest sweep failed", err)
	}
	return &AccrueInterestOutput{Status: http.StatusNoContent}, nil
}

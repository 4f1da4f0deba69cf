package transaction

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
)

// newTestAPI wires the money handlers against a real ledger and a running
// operator queue. Operations that declare a security requirement see
// subject as the authenticated account id, mirroring what the bearer
// middleware injects.
func newTestAPI(t *testing.T, subject string) (humatest.TestAPI, *ledger.Ledger) {
	t.Helper()
	ldg := ledger.New()
	svc := service.NewService(ldg, service.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Minute,
		AttemptBudget: 3,
		AdminPassword: "admin123",
	})
	delegator := operator.NewOperatorDelegator(ldg, 2)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}
		if subject != "" {
			ctx = huma.WithValue(ctx, service.AccountIDKey, subject)
		}
		next(ctx)
	})
	NewDepositHandler(delegator, svc.Accounts).Register(api)
	NewWithdrawHandler(delegator, svc.Accounts).Register(api)
	NewTransferHandler(delegator, svc.Accounts).Register(api)
	return api, ldg
}

func mustCreateAccount(t *testing.T, ldg *ledger.Ledger, name, balance string) *ledger.Account {
	t.Helper()
	a, err := ldg.CreateAccount(name, "1234", ledger.ClassSavings, decimal.RequireFromString(balance))
	require.NoError(t, err)
	return a
}

func TestHTTP_Deposit_Success(t *testing.T) {
	api, ldg := newTestAPI(t, "ACCT1001")
	a := mustCreateAccount(t, ldg, "Alice", "100.00")

	resp := api.Post("/v1/account/ACCT1001/deposit", MoneyBody{Amount: "50.00"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BalanceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "150.00", body.Balance)
	assert.True(t, a.Balance().Equal(decimal.RequireFromString("150.00")))
}

func TestHTTP_Deposit_CustomDescription(t *testing.T) {
	api, ldg := newTestAPI(t, "ACCT1001")
	a := mustCreateAccount(t, ldg, "Alice", "0")

	resp := api.Post("/v1/account/ACCT1001/deposit", MoneyBody{
		Amount:      "10.00",
		Description: "Payday",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	transactions := a.RecentTransactions(1)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Payday", transactions[0].Description)
}

func TestHTTP_Deposit_RejectsNonPositiveAmount(t *testing.T) {
	api, ldg := newTestAPI(t, "ACCT1001")
	a := mustCreateAccount(t, ldg, "Alice", "100.00")

	resp := api.Post("/v1/account/ACCT1001/deposit", MoneyBody{Amount: "0"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = api.Post("/v1/account/ACCT1001/deposit", MoneyBody{Amount: "-5.00"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	assert.True(t, a.Balance().Equal(decimal.RequireFromString("100.00")))
}

func TestHTTP_Deposit_RejectsMalformedAmount(t *testing.T) {
	api, ldg := newTestAPI(t, "ACCT1001")
	mustCreateAccount(t, ldg, "Alice", "100.00")

	resp := api.Post("/v1/account/ACCT1001/deposit", MoneyBody{Amount: "not-a-decimal"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_Deposit_ForbiddenForOtherAccount(t *testing.T) {
	api, ldg := newTestAPI(t, "ACCT1002")
	a := mustCreateAccount(t, ldg, "Alice", "100.00")

	resp := api.Post("/v1/account/ACCT1001/deposit", MoneyBody{Amount: "50.00"})
	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.True(t, a.Balance().Equal(decimal.RequireFromString("100.00")))
}

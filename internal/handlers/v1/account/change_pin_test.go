package account

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP_ChangePIN_Success(t *testing.T) {
	api, ldg := newTestAPI(t, "ACCT1001")
	a := mustCreateAccount(t, ldg, "0")

	resp := api.Post("/v1/account/ACCT1001/pin", ChangePINBody{NewPIN: "9876"})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.True(t, a.VerifyPIN("9876"))
	assert.False(t, a.VerifyPIN("1234"))

	// The change leaves an audit record without moving the balance.
	transactions := a.RecentTransactions(1)
	require.Len(t, transactions, 1)
	assert.True(t, transactions[0].Delta.IsZero())
}

func TestHTTP_ChangePIN_RejectsBadPIN(t *testing.T) {
	api, ldg := newTestAPI(t, "ACCT1001")
	a := mustCreateAccount(t, ldg, "0")

	resp := api.Post("/v1/account/ACCT1001/pin", ChangePINBody{NewPIN: "12"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.True(t, a.VerifyPIN("1234"))
}

func TestHTTP_ChangePIN_ForbiddenForOtherAccount(t *testing.T) {
	api, ldg := newTestAPI(t, "ACCT1002")
	a := mustCreateAccount(t, ldg, "0")

	resp := api.Post("/v1/account/ACCT1001/pin", ChangePINBody{NewPIN: "9876"})

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.True(t, a.VerifyPIN("1234"))
}

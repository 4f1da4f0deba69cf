package account

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTP_Login_Success(t *testing.T) {
	api, ldg := newTestAPI(t, "")
	a := mustCreateAccount(t, ldg, "0")

	resp := api.Post("/v1/login", LoginBody{
		AccountID: a.ID(),
		PIN:       "1234",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body LoginResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Token)
}

func TestHTTP_Login_WrongPIN(t *testing.T) {
	api, ldg := newTestAPI(t, "")
	a := mustCreateAccount(t, ldg, "0")

	resp := api.Post("/v1/login", LoginBody{
		AccountID: a.ID(),
		PIN:       "0000",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_Login_UnknownAccountLooksLikeWrongPIN(t *testing.T) {
	api, _ := newTestAPI(t, "")

	// Unknown ids must not be distinguishable from a wrong PIN.
	resp := api.Post("/v1/login", LoginBody{
		AccountID: "ACCT9999",
		PIN:       "1234",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_Login_LockedAfterRepeatedFailures(t *testing.T) {
	api, ldg := newTestAPI(t, "")
	a := mustCreateAccount(t, ldg, "0")

	for i := 0; i < 2; i++ {
		resp := api.Post("/v1/login", LoginBody{AccountID: a.ID(), PIN: "0000"})
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	}
	resp := api.Post("/v1/login", LoginBody{AccountID: a.ID(), PIN: "0000"})
	assert.Equal(t, http.StatusLocked, resp.Code)

	// The correct PIN no longer helps.
	resp = api.Post("/v1/login", LoginBody{AccountID: a.ID(), PIN: "1234"})
	assert.Equal(t, http.StatusLocked, resp.Code)
}

//go:build e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "slotbooker/internal/handler/dto/request"
	"slotbooker/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser authenticates against the running router and returns the access token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	_ = httptest.DecodeResponseBody(t, w.Body, &body)
	require.NotEmpty(t, body.AccessToken, "access token missing in login response")

	return body.AccessToken
}

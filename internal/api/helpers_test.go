package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet_ledger/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testUserID = "0f8fad5b-d9cb-469f-a165-70867728950e"
)

func testToken(t *testing.T, userID, email string) string {
	t.Helper()
	token, err := utils.GenerateJWT(userID, email, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func newUsersRouter(users UserManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterUserRoutes(r, users, testSecret)
	return r
}

func newWalletRouter(ledger Ledger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterWalletRoutes(r, ledger, testSecret)
	return r
}

// doRequest sends body (a string is sent verbatim, anything else as JSON)
func doRequest(router http.Handler, method, url, token string, body any) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = &bytes.Buffer{}
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		buf = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, url, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

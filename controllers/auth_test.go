package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"barbershop-backend/services"
	"barbershop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newAuthRouter(t *testing.T, email, password string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.BcryptCost = bcrypt.MinCost

	admin, err := services.NewAdminAuth(context.Background(), nil, "shop-a", email, password)
	require.NoError(t, err)

	ac := &AuthController{
		Admin:     admin,
		JWTSecret: testSecret,
		JWTExpiry: time.Hour,
		SiteKey:   "shop-a",
		Logger:    zap.NewNop(),
	}
	r := gin.New()
	r.POST("/auth/login", ac.Login)
	r.GET("/auth/me", utils.AuthMiddleware(testSecret, "shop-a"), ac.Me)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	r := newAuthRouter(t, "admin@shop.com", "s3nha")

	rec := postJSON(r, "/auth/login", `{"password":"errada"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Senha incorreta"}`, rec.Body.String())

	rec = postJSON(r, "/auth/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(r, "/auth/login", `{"password":"s3nha"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@shop.com", resp.User.Email)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == utils.TokenCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	// bearer header
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	me := httptest.NewRecorder()
	r.ServeHTTP(me, req)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), `"email":"admin@shop.com"`)

	// cookie
	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: utils.TokenCookie, Value: resp.Token})
	me = httptest.NewRecorder()
	r.ServeHTTP(me, req)
	assert.Equal(t, http.StatusOK, me.Code)
}

func TestLoginNotConfigured(t *testing.T) {
	r := newAuthRouter(t, "", "")
	rec := postJSON(r, "/auth/login", `{"password":"x"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMeRejectsBadTokens(t *testing.T) {
	r := newAuthRouter(t, "admin@shop.com", "s3nha")

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	otherSite, err := utils.GenerateToken(testSecret, "u", "shop-b", time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+otherSite)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	expired, err := utils.GenerateToken(testSecret, "u", "shop-a", -time.Minute)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"prompt-hub/cmd/api/auth"
)

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name        string
		headerValue string
		wantToken   string
		wantErr     bool
	}{
		{name: "missing header", wantErr: true},
		{name: "wrong scheme", headerValue: "Basic abc", wantErr: true},
		{name: "scheme only", headerValue: "Bearer", wantErr: true},
		{name: "blank token", headerValue: "Bearer   ", wantErr: true},
		{name: "valid token", headerValue: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase scheme", headerValue: "bearer abc.def.ghi", wantToken: "abc.def.ghi"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tc.headerValue != "" {
				c.Request.Header.Set("Authorization", tc.headerValue)
			}

			token, err := bearerToken(c)
			if tc.wantErr {
				if !errors.Is(err, errBadAuthHeader) {
					t.Fatalf("expected errBadAuthHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != tc.wantToken {
				t.Fatalf("expected token %q, got %q", tc.wantToken, token)
			}
		})
	}
}

func TestAuthMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "middleware-test-secret")

	m, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := gin.New()
	r.GET("/me", AuthRequired(m), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUID))
	})
	r.GET("/admin", AdminAuth(m), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	do := func(path, header string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		return w
	}

	userToken, err := m.Sign("user-1", auth.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	adminToken, err := m.Sign("admin-1", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w := do("/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no header: expected 401, got %d", w.Code)
	}
	if w := do("/me", "Bearer not-a-token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", w.Code)
	}
	if w := do("/me", "Bearer "+userToken); w.Code != http.StatusOK || w.Body.String() != "user-1" {
		t.Fatalf("valid token: expected 200 with uid, got %d %q", w.Code, w.Body.String())
	}

	if w := do("/admin", "Bearer "+userToken); w.Code != http.StatusForbidden {
		t.Fatalf("user on admin route: expected 403, got %d", w.Code)
	}
	if w := do("/admin", "Bearer "+adminToken); w.Code != http.StatusOK {
		t.Fatalf("admin token: expected 200, got %d", w.Code)
	}
}

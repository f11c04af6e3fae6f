package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/damoang/angple-moderation/pkg/jwt"
	"github.com/gin-gonic/gin"
)

func TestJWTAuth_ValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := jwt.NewManager("test-secret", time.Hour)
	token, err := manager.GenerateToken(7, "운영자", 10)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.Use(JWTAuth(manager))
	r.GET("/test", func(c *gin.Context) {
		if GetUserID(c) != 7 {
			t.Errorf("expected userID 7, got %d", GetUserID(c))
		}
		if GetUserLevel(c) != 10 {
			t.Errorf("expected level 10, got %d", GetUserLevel(c))
		}
		if GetNickname(c) != "운영자" {
			t.Errorf("expected nickname 운영자, got %s", GetNickname(c))
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	c.Request, _ = http.NewRequest("GET", "/test", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, c.Request)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := jwt.NewManager("test-secret", time.Hour)

	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.Use(JWTAuth(manager))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	c.Request, _ = http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, c.Request)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := jwt.NewManager("test-secret", time.Hour)

	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.Use(JWTAuth(manager))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	c.Request, _ = http.NewRequest("GET", "/test", nil)
	c.Request.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, c.Request)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	issuer := jwt.NewManager("other-secret", time.Hour)
	token, err := issuer.GenerateToken(7, "", 1)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.Use(JWTAuth(jwt.NewManager("test-secret", time.Hour)))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	c.Request, _ = http.NewRequest("GET", "/test", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, c.Request)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAdminOnly_Allowed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.Use(func(c *gin.Context) {
		c.Set("level", AdminLevel)
		c.Next()
	})
	r.Use(AdminOnly())
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	c.Request, _ = http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, c.Request)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAdminOnly_Denied(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.Use(func(c *gin.Context) {
		c.Set("level", 5)
		c.Next()
	})
	r.Use(AdminOnly())
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	c.Request, _ = http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, c.Request)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

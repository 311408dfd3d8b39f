package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lks7470-gif/bt-admin/internal/config"
	"github.com/lks7470-gif/bt-admin/internal/middleware"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			AccessTokenExpire: time.Hour,
			Issuer:            "bt-admin",
		},
		Auth: config.AuthConfig{
			AdminPassword:   "1234",
			WorkerPassword:  "0000",
			MonitorPassword: "1111",
		},
	}
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	token, err := svc.Login(RoleWorker, "0000", "작업자A")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims := &middleware.JWTClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Role != RoleWorker {
		t.Fatalf("role = %q", claims.Role)
	}
	if claims.Worker != "작업자A" {
		t.Fatalf("worker = %q", claims.Worker)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	for _, role := range []string{RoleAdmin, RoleWorker, RoleMonitor} {
		if _, err := svc.Login(role, "wrong", ""); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("role %s wrong password: %v", role, err)
		}
	}
}

func TestLoginUnknownRole(t *testing.T) {
	svc := NewAuthService(testAuthConfig())
	if _, err := svc.Login("manager", "1234", ""); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("unknown role: %v", err)
	}
}

func TestLoginEmptyConfiguredPassword(t *testing.T) {
	cfg := testAuthConfig()
	cfg.Auth.MonitorPassword = ""
	svc := NewAuthService(cfg)

	// 비밀번호가 설정되지 않은 역할은 빈 입력으로도 로그인되면 안 된다
	if _, err := svc.Login(RoleMonitor, "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("empty configured password: %v", err)
	}
}

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lks7470-gif/bt-admin/internal/config"
	"github.com/lks7470-gif/bt-admin/internal/middleware"
)

// 역할 코드
const (
	RoleAdmin   = "admin"   // 관리자
	RoleWorker  = "worker"  // 작업자
	RoleMonitor = "monitor" // 모니터링 전광판
)

var (
	ErrInvalidRole        = errors.New("unknown role")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService 역할별 공용 비밀번호 로그인. 개인 계정 체계는 없고
// 현장 공용 비밀번호 세 개로 역할만 구분한다.
type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Login 역할 + 비밀번호 → JWT. worker 는 토큰에 실어 두고 이후 스캔
// 기록의 작업자 식별 문자열로 쓴다.
func (s *AuthService) Login(role, password, worker string) (string, error) {
	var expected string
	switch role {
	case RoleAdmin:
		expected = s.cfg.Auth.AdminPassword
	case RoleWorker:
		expected = s.cfg.Auth.WorkerPassword
	case RoleMonitor:
		expected = s.cfg.Auth.MonitorPassword
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	if expected == "" || password != expected {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := middleware.JWTClaims{
		Role:   role,
		Worker: worker,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.AccessTokenExpire)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.Secret))
}

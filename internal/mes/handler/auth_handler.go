package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/lks7470-gif/bt-admin/internal/mes/service"
)

// AuthHandler 로그인 API
type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Role     string `json:"role" binding:"required"`
		Password string `json:"password" binding:"required"`
		Worker   string `json:"worker"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "잘못된 요청: "+err.Error())
		return
	}

	token, err := h.svc.Login(req.Role, req.Password, req.Worker)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			BadRequest(c, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			Error(c, 40101, "비밀번호가 틀렸습니다")
		default:
			InternalError(c, "로그인 중 오류가 발생했습니다")
		}
		return
	}

	Success(c, gin.H{"token": token, "role": req.Role, "worker": req.Worker})
}

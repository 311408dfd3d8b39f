package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lks7470-gif/bt-admin/internal/mes/service"
)

// Handlers 핸들러 모음
type Handlers struct {
	Auth      *AuthHandler
	Tracking  *TrackingHandler
	Defect    *DefectHandler
	Dashboard *DashboardHandler
	Order     *OrderHandler
	Fabric    *FabricHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(services.Auth),
		Tracking:  NewTrackingHandler(services.Tracking),
		Defect:    NewDefectHandler(services.Defect),
		Dashboard: NewDashboardHandler(services.Dashboard),
		Order:     NewOrderHandler(services.Order),
		Fabric:    NewFabricHandler(services.Fabric),
	}
}

// === 응답 헬퍼 ===

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	ErrorData(c, code, message, nil)
}

func ErrorData(c *gin.Context, code int, message string, data interface{}) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// GetWorker 토큰의 작업자 식별 문자열
func GetWorker(c *gin.Context) string {
	worker, _ := c.Get("worker")
	if w, ok := worker.(string); ok {
		return w
	}
	return ""
}

func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}

	return page, pageSize
}

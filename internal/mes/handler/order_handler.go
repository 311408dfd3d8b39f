package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
	"github.com/lks7470-gif/bt-admin/internal/mes/service"
)

// OrderHandler 작업 지시서 API (관리자)
type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Publish POST /api/v1/orders/publish
// 지시서 배치를 발행하고 QR 페이로드가 될 LOT 번호 목록을 돌려준다.
func (h *OrderHandler) Publish(c *gin.Context) {
	var req service.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "잘못된 요청: "+err.Error())
		return
	}

	orders, err := h.svc.PublishBatch(c.Request.Context(), &req, GetWorker(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownProduct):
			BadRequest(c, err.Error())
		case errors.Is(err, service.ErrInsufficientFabric):
			Error(c, 42210, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "원단 정보가 없습니다")
		default:
			InternalError(c, "지시서 발행 중 오류가 발생했습니다")
		}
		return
	}

	lotNos := make([]string, len(orders))
	for i, o := range orders {
		lotNos[i] = o.LotNo
	}
	Created(c, gin.H{"orders": orders, "lot_nos": lotNos})
}

// List GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	params := repository.WorkOrderListParams{
		Customer: c.Query("customer"),
		Product:  c.Query("product"),
		Keyword:  c.Query("keyword"),
		Page:     page,
		Size:     pageSize,
	}

	orders, total, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "이력 조회 중 오류가 발생했습니다")
		return
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	Success(c, ListResponse{
		Items: orders,
		Pagination: &Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// Get GET /api/v1/orders/:lotNo
func (h *OrderHandler) Get(c *gin.Context) {
	detail, err := h.svc.GetDetail(c.Request.Context(), c.Param("lotNo"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "등록되지 않은 LOT 번호입니다")
			return
		}
		InternalError(c, "조회 중 오류가 발생했습니다")
		return
	}
	Success(c, detail)
}

// Delete DELETE /api/v1/orders/:lotNo
// body 의 confirm 문구가 일치해야 삭제된다.
func (h *OrderHandler) Delete(c *gin.Context) {
	var req struct {
		Confirm string `json:"confirm" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "확인 문구를 입력해 주세요")
		return
	}

	err := h.svc.Delete(c.Request.Context(), c.Param("lotNo"), req.Confirm)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConfirmPhrase):
			BadRequest(c, fmt.Sprintf("확인 문구가 일치하지 않습니다 (%q 입력 필요)", service.DeleteConfirmPhrase))
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "등록되지 않은 LOT 번호입니다")
		default:
			InternalError(c, "삭제 중 오류가 발생했습니다")
		}
		return
	}
	Success(c, nil)
}

// Export GET /api/v1/orders/export 발행 이력 엑셀 다운로드
func (h *OrderHandler) Export(c *gin.Context) {
	params := repository.WorkOrderListParams{
		Customer: c.Query("customer"),
		Product:  c.Query("product"),
		Keyword:  c.Query("keyword"),
	}

	buf, err := h.svc.ExportHistory(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "내보내기 중 오류가 발생했습니다")
		return
	}

	filename := fmt.Sprintf("work_orders_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
	"github.com/lks7470-gif/bt-admin/internal/mes/service"
	"github.com/lks7470-gif/bt-admin/internal/mes/testutil"
	"go.uber.org/zap"
)

func setupScanRouter(t *testing.T) (*gin.Engine, *repository.Repositories) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := service.NewTrackingService(repos.WorkOrder, repos.ProductionLog, zap.NewNop())
	h := NewTrackingHandler(svc)

	r := testutil.SetupRouter()
	api := testutil.AuthGroup(r, "/api/v1")
	api.POST("/scan", h.Scan)
	return r, repos
}

func TestScanEndpoint(t *testing.T) {
	router, repos := setupScanRouter(t)

	lotNo := "AB12250601G00"
	testutil.SeedWorkOrder(t, repos.WorkOrder.DB(), lotNo, "작업 대기", nil)
	token := testutil.WorkerToken("작업자A")

	// 인증 없이 호출하면 401
	w := testutil.DoRequest(router, "POST", "/api/v1/scan",
		map[string]string{"lot_no": lotNo, "step": "full_cut"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token status = %d", w.Code)
	}

	// 정상 스캔 (worker 는 토큰에서 채워진다)
	w = testutil.DoRequest(router, "POST", "/api/v1/scan",
		map[string]string{"lot_no": lotNo, "step": "full_cut"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("scan status = %d, body %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 0 {
		t.Fatalf("code = %v", resp["code"])
	}

	// 같은 공정 재제출은 422 + duplicate_step
	w = testutil.DoRequest(router, "POST", "/api/v1/scan",
		map[string]string{"lot_no": lotNo, "step": "full_cut"}, token)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("duplicate status = %d", w.Code)
	}
	resp = testutil.ParseResponse(w)
	if resp["code"].(float64) != 42201 {
		t.Fatalf("duplicate code = %v", resp["code"])
	}
	data := resp["data"].(map[string]interface{})
	if data["reason"] != "duplicate_step" {
		t.Fatalf("reason = %v", data["reason"])
	}

	// 미등록 LOT은 404
	w = testutil.DoRequest(router, "POST", "/api/v1/scan",
		map[string]string{"lot_no": "ZZ99250601G99", "step": "full_cut"}, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown lot status = %d", w.Code)
	}

	// 작업 등록 대상이 아닌 공정 코드는 400
	w = testutil.DoRequest(router, "POST", "/api/v1/scan",
		map[string]string{"lot_no": lotNo, "step": "polishing"}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid step status = %d", w.Code)
	}
}

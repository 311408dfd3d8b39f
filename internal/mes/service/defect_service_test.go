package service

import (
	"context"
	"testing"

	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
	"github.com/lks7470-gif/bt-admin/internal/mes/process"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
	"github.com/lks7470-gif/bt-admin/internal/mes/testutil"
	"go.uber.org/zap"
)

func newDefectService(t *testing.T) (*DefectService, *repository.Repositories) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	return NewDefectService(repos.WorkOrder, repos.Defect, zap.NewNop()), repos
}

func TestReportDefect(t *testing.T) {
	svc, repos := newDefectService(t)
	ctx := context.Background()

	lotNo := "AB12250601G00"
	testutil.SeedWorkOrder(t, repos.WorkOrder.DB(), lotNo, "Half Cut", nil)

	record, err := svc.ReportDefect(ctx, &DefectRequest{
		LotNo:      lotNo,
		Step:       "half_cut",
		DefectType: "스크래치",
		Note:       "우측 모서리",
		Worker:     "작업자A",
	})
	if err != nil {
		t.Fatalf("ReportDefect: %v", err)
	}
	if record.Status != entity.DefectResolutionPending {
		t.Fatalf("resolution = %q, want %q", record.Status, entity.DefectResolutionPending)
	}

	// 상태 칸이 불량 마커로 덮여야 한다
	order, err := repos.WorkOrder.GetByLotNo(ctx, lotNo)
	if err != nil {
		t.Fatalf("GetByLotNo: %v", err)
	}
	info := process.ParseStatus(order.Status)
	if !info.Defective || info.DefectType != "스크래치" {
		t.Fatalf("status after defect = %q (%+v)", order.Status, info)
	}

	// 불량 기록이 남아야 한다
	records, err := repos.Defect.ListByLot(ctx, lotNo)
	if err != nil || len(records) != 1 {
		t.Fatalf("defect records: %v, %v", records, err)
	}
}

func TestReportDefectTwiceRejected(t *testing.T) {
	svc, repos := newDefectService(t)
	ctx := context.Background()

	lotNo := "AB12250601G01"
	testutil.SeedWorkOrder(t, repos.WorkOrder.DB(), lotNo, "Half Cut", nil)

	req := &DefectRequest{
		LotNo: lotNo, Step: "half_cut", DefectType: "이물질", Worker: "작업자A",
	}
	if _, err := svc.ReportDefect(ctx, req); err != nil {
		t.Fatalf("first report: %v", err)
	}

	_, err := svc.ReportDefect(ctx, req)
	re, ok := process.AsReject(err)
	if !ok || re.Code != process.RejectAlreadyDefective {
		t.Fatalf("second report: %v", err)
	}
}

// 불량 처리 후 추적 스캔이 전부 막히는지 (불량 게이트의 핵심)
func TestDefectGateBlocksScans(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	defectSvc := NewDefectService(repos.WorkOrder, repos.Defect, zap.NewNop())
	trackingSvc := NewTrackingService(repos.WorkOrder, repos.ProductionLog, zap.NewNop())
	ctx := context.Background()

	lam := "표준 접합"
	lotNo := "CD34250601F01"
	testutil.SeedWorkOrder(t, db, lotNo, "작업 대기", &lam)

	if _, err := trackingSvc.ValidateAndRecordStep(ctx, scan(lotNo, "full_cut")); err != nil {
		t.Fatalf("full_cut: %v", err)
	}

	if _, err := defectSvc.ReportDefect(ctx, &DefectRequest{
		LotNo: lotNo, Step: "full_cut", DefectType: "기포/들뜸", Worker: "작업자A",
	}); err != nil {
		t.Fatalf("ReportDefect: %v", err)
	}

	// 다음 공정 스캔이 거절되어야 한다
	_, err := trackingSvc.ValidateAndRecordStep(ctx, scan(lotNo, "half_cut"))
	re, ok := process.AsReject(err)
	if !ok || re.Code != process.RejectAlreadyDefective {
		t.Fatalf("scan after defect: %v", err)
	}
}

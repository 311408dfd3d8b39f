package service

import (
	"context"
	"testing"

	"github.com/lks7470-gif/bt-admin/internal/mes/process"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
	"github.com/lks7470-gif/bt-admin/internal/mes/testutil"
	"go.uber.org/zap"
)

// Redis 없이 DB만으로 스냅샷을 만드는 경로
func TestGetSnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewDashboardService(repos.WorkOrder, repos.ProductionLog, nil, zap.NewNop())
	ctx := context.Background()

	lam := "표준 접합"
	testutil.SeedWorkOrder(t, db, "AB12250601G00", "작업 대기", nil)
	testutil.SeedWorkOrder(t, db, "AB12250601G01", "Full Cut", nil)
	testutil.SeedWorkOrder(t, db, "CD34250601F00", "접합: 2. 가열 시작", &lam)
	testutil.SeedWorkOrder(t, db, "CD34250601F01", "불량(스크래치)", &lam)
	testutil.SeedWorkOrder(t, db, "CD34250601F02", "접합: 3. 공정 완료 (End)", &lam)

	snapshot, err := svc.GetSnapshot(ctx)
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}

	if len(snapshot.Lots) != 5 {
		t.Fatalf("lots = %d, want 5", len(snapshot.Lots))
	}

	c := snapshot.Counts
	if c.Waiting != 1 || c.FullCut != 1 || c.InLamination != 1 || c.Defect != 1 || c.Done != 1 {
		t.Fatalf("counts: %+v", c)
	}
	if c.Total() != 5 {
		t.Fatalf("Total = %d, want 5", c.Total())
	}
}

func TestGetSnapshotEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewDashboardService(repos.WorkOrder, repos.ProductionLog, nil, zap.NewNop())

	snapshot, err := svc.GetSnapshot(context.Background())
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if snapshot.Counts.Total() != 0 || len(snapshot.Lots) != 0 {
		t.Fatalf("empty snapshot: %+v", snapshot)
	}
}

// 상태 칸이 어긋나 있어도 로그 기준으로 환원된다
func TestGetSnapshotLogReconciliation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	trackingSvc := NewTrackingService(repos.WorkOrder, repos.ProductionLog, zap.NewNop())
	dashSvc := NewDashboardService(repos.WorkOrder, repos.ProductionLog, nil, zap.NewNop())
	ctx := context.Background()

	lotNo := "AB12250601G00"
	testutil.SeedWorkOrder(t, db, lotNo, "작업 대기", nil)
	if _, err := trackingSvc.ValidateAndRecordStep(ctx, scan(lotNo, "full_cut")); err != nil {
		t.Fatalf("full_cut: %v", err)
	}

	// 상태 칸을 어휘 밖 문자열로 망가뜨린다
	if err := repos.WorkOrder.UpdateStatus(ctx, lotNo, "???"); err != nil {
		t.Fatalf("force status: %v", err)
	}

	snapshot, err := dashSvc.GetSnapshot(ctx)
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if len(snapshot.Lots) != 1 {
		t.Fatalf("lots = %d", len(snapshot.Lots))
	}
	if snapshot.Lots[0].State.Phase != process.PhaseFullCut {
		t.Fatalf("phase = %s, want full_cut", snapshot.Lots[0].State.Phase)
	}
}

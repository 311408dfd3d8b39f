package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
	"github.com/lks7470-gif/bt-admin/internal/mes/metrics"
	"github.com/lks7470-gif/bt-admin/internal/mes/process"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	dashboardCacheKey = "mes:dashboard:v1"
	dashboardCacheTTL = 5 * time.Second

	recentOrderLimit = 50
	recentLogLimit   = 200
)

// DashboardService 모니터 전광판용 스냅샷. 전광판은 몇 초 간격으로
// 폴링하므로 짧은 TTL의 Redis 캐시를 앞에 둔다. LOT별 상태 자체는
// 캐시하지 않고, 캐시 대상은 집계된 표시 페이로드뿐이다.
type DashboardService struct {
	orders *repository.WorkOrderRepository
	logs   *repository.ProductionLogRepository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewDashboardService(orders *repository.WorkOrderRepository, logs *repository.ProductionLogRepository, rdb *redis.Client, logger *zap.Logger) *DashboardService {
	return &DashboardService{orders: orders, logs: logs, rdb: rdb, logger: logger}
}

// LotView 전광판 한 줄
type LotView struct {
	LotNo     string           `json:"lot_no"`
	Customer  string           `json:"customer"`
	Product   string           `json:"product"`
	WidthMM   int              `json:"width_mm"`
	HeightMM  int              `json:"height_mm"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	State     process.LotState `json:"state"`
}

// Snapshot 대시보드 스냅샷
type Snapshot struct {
	Counts      process.Counts `json:"counts"`
	Lots        []LotView      `json:"lots"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// GetSnapshot 최근 지시서 묶음을 읽어 LOT별 상태를 환원하고 단계별로
// 집계한다. 읽기 전용이며 매 호출이 그 시점의 스냅샷이다.
func (s *DashboardService) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	timer := time.Now()
	defer func() {
		metrics.DashboardRefreshDuration.Observe(time.Since(timer).Seconds())
	}()

	orders, err := s.orders.ListRecent(ctx, recentOrderLimit)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.ListRecent(ctx, recentLogLimit)
	if err != nil {
		return nil, err
	}

	// 최근 로그에서 LOT별 최신 건만 추린다 (ListRecent 는 최신순)
	latest := make(map[string]*entity.ProductionLog, len(orders))
	for i := range logs {
		l := &logs[i]
		if _, ok := latest[l.LotNo]; !ok {
			latest[l.LotNo] = l
		}
	}

	snapshot := &Snapshot{
		Lots:        make([]LotView, 0, len(orders)),
		GeneratedAt: time.Now(),
	}

	states := make([]process.LotState, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		state := process.Reduce(o, latest[o.LotNo])
		states = append(states, state)
		snapshot.Lots = append(snapshot.Lots, LotView{
			LotNo:     o.LotNo,
			Customer:  o.Customer,
			Product:   o.Product,
			WidthMM:   o.WidthMM,
			HeightMM:  o.HeightMM,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
			State:     state,
		})
	}
	snapshot.Counts = process.Aggregate(states)

	s.toCache(ctx, snapshot)
	return snapshot, nil
}

func (s *DashboardService) fromCache(ctx context.Context) *Snapshot {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		return nil // miss 든 장애든 DB로 내려간다
	}
	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil
	}
	return &snapshot
}

func (s *DashboardService) toCache(ctx context.Context, snapshot *Snapshot) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
		s.logger.Warn("Dashboard cache write failed", zap.Error(err))
	}
}

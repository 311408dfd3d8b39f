package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus 지표 정의
var (
	// ScansTotal 스캔 처리 건수 (accepted / rejected 사유별)
	ScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mes_scans_total",
		Help: "The total number of processed lot scans",
	}, []string{"result"})

	// DefectsTotal 불량 등록 건수 (유형별)
	DefectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mes_defects_total",
		Help: "The total number of reported defects",
	}, []string{"defect_type"})

	// StatusConflictsTotal 상태 CAS 갱신 충돌 건수
	StatusConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mes_status_conflicts_total",
		Help: "The total number of optimistic status update conflicts",
	})

	// DashboardRefreshDuration 대시보드 집계 소요 시간 분포
	DashboardRefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mes_dashboard_refresh_duration_seconds",
		Help:    "Time spent recomputing the dashboard snapshot",
		Buckets: prometheus.DefBuckets,
	})
)

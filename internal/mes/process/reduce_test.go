package process

import (
	"testing"

	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
)

func strPtr(s string) *string { return &s }

func order(lotNo, status string, lamination *string) *entity.WorkOrder {
	return &entity.WorkOrder{
		LotNo:          lotNo,
		Status:         status,
		LaminationSpec: lamination,
	}
}

func logAt(lotNo, step string) *entity.ProductionLog {
	return &entity.ProductionLog{LotNo: lotNo, Step: step}
}

func TestReduceLaminationPercentTable(t *testing.T) {
	lam := strPtr("표준 접합")
	tests := []struct {
		status  string
		phase   Phase
		percent int
		badge   string
	}{
		{"작업 대기", PhaseWaiting, 5, "white"},
		{"Full Cut", PhaseFullCut, 25, "blue"},
		{"Half Cut", PhaseHalfCut, 40, "blue"},
		{"전극 완료", PhaseElectrode, 50, "blue"},
		{"접합: 1. 준비 완료", PhaseWaitingLamination, 75, "orange"},
		{"접합: 2. 가열 시작", PhaseInLamination, 85, "orange"},
		{"접합: 3. 공정 완료 (End)", PhaseDone, 100, "green"},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			state := Reduce(order("CD34250601F01", tt.status, lam), nil)
			if state.Phase != tt.phase {
				t.Errorf("Phase = %s, want %s", state.Phase, tt.phase)
			}
			if state.PercentComplete != tt.percent {
				t.Errorf("Percent = %d, want %d", state.PercentComplete, tt.percent)
			}
			if state.Badge != tt.badge {
				t.Errorf("Badge = %s, want %s", state.Badge, tt.badge)
			}
		})
	}
}

func TestReduceNoLaminationPercentTable(t *testing.T) {
	tests := []struct {
		status  string
		phase   Phase
		percent int
	}{
		{"작업 대기", PhaseWaiting, 5},
		{"Full Cut", PhaseFullCut, 40},
		{"Half Cut", PhaseHalfCut, 70},
		// 접합 생략 LOT은 전극 완료가 곧 생산 완료
		{"전극 완료", PhaseDone, 100},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			state := Reduce(order("AB12250601G00", tt.status, nil), nil)
			if state.Phase != tt.phase {
				t.Errorf("Phase = %s, want %s", state.Phase, tt.phase)
			}
			if state.PercentComplete != tt.percent {
				t.Errorf("Percent = %d, want %d", state.PercentComplete, tt.percent)
			}
		})
	}
}

func TestReduceDefect(t *testing.T) {
	state := Reduce(order("AB12250601G00", "불량(스크래치)", nil), nil)
	if state.Phase != PhaseDefect {
		t.Fatalf("Phase = %s, want defect", state.Phase)
	}
	if !state.IsTerminal {
		t.Fatal("defect state not terminal")
	}
	if state.Badge != "red" {
		t.Fatalf("Badge = %s, want red", state.Badge)
	}
	if state.DefectType != "스크래치" {
		t.Fatalf("DefectType = %q, want 스크래치", state.DefectType)
	}

	// 불량 마커는 로그가 더 진행돼 있어도 우선한다
	state = Reduce(order("AB12250601G00", "불량(기타)", nil), logAt("AB12250601G00", "Half Cut"))
	if state.Phase != PhaseDefect {
		t.Fatalf("defect overridden by log: %s", state.Phase)
	}
}

func TestReduceHeld(t *testing.T) {
	state := Reduce(order("AB12250601G00", "보류", nil), nil)
	if state.Phase != PhaseDefect || !state.IsTerminal {
		t.Fatalf("held state: %+v", state)
	}
}

func TestReduceLogFallback(t *testing.T) {
	// 상태 칸이 어휘에 없으면 최근 로그로 보강한다
	// (로그 기록 후 상태 갱신 전에 죽은 경우의 조정 경로)
	state := Reduce(order("CD34250601F01", "???", strPtr("접합")), logAt("CD34250601F01", "전극 완료"))
	if state.Phase != PhaseElectrode {
		t.Fatalf("Phase = %s, want electrode", state.Phase)
	}

	// 로그도 없으면 작업 대기
	state = Reduce(order("CD34250601F01", "???", strPtr("접합")), nil)
	if state.Phase != PhaseWaiting || state.PercentComplete != 5 {
		t.Fatalf("no-log fallback: %+v", state)
	}
}

func TestReduceIdempotent(t *testing.T) {
	o := order("CD34250601F01", "접합: 2. 가열 시작", strPtr("접합"))
	l := logAt("CD34250601F01", "접합: 2. 가열 시작")
	first := Reduce(o, l)
	for i := 0; i < 10; i++ {
		if got := Reduce(o, l); got != first {
			t.Fatalf("Reduce not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestAggregate(t *testing.T) {
	if c := Aggregate(nil); c.Total() != 0 {
		t.Fatalf("empty aggregate Total = %d", c.Total())
	}

	states := []LotState{
		{Phase: PhaseDefect},
		{Phase: PhaseDefect},
		{Phase: PhaseDone},
		{Phase: PhaseInLamination},
		{Phase: PhaseWaitingLamination},
		{Phase: PhaseElectrode},
		{Phase: PhaseHalfCut},
		{Phase: PhaseFullCut},
		{Phase: PhaseWaiting},
		{Phase: PhaseWaiting},
	}
	c := Aggregate(states)
	if c.Defect != 2 || c.Done != 1 || c.InLamination != 1 || c.WaitingLamination != 1 ||
		c.Electrode != 1 || c.HalfCut != 1 || c.FullCut != 1 || c.Waiting != 2 {
		t.Fatalf("counts: %+v", c)
	}
	if c.Total() != len(states) {
		t.Fatalf("Total = %d, want %d", c.Total(), len(states))
	}
}

func TestAggregateLarge(t *testing.T) {
	states := make([]LotState, 0, 1000)
	for i := 0; i < 1000; i++ {
		states = append(states, LotState{Phase: PhaseFullCut})
	}
	c := Aggregate(states)
	if c.FullCut != 1000 || c.Total() != 1000 {
		t.Fatalf("counts: %+v", c)
	}
}

package process

import "testing"

func TestCheckTransitionAccept(t *testing.T) {
	tests := []struct {
		name     string
		last     Step
		incoming Step
	}{
		{"대기에서 Full Cut", StepWaiting, StepFullCut},
		{"Full Cut에서 Half Cut", StepFullCut, StepHalfCut},
		{"대기에서 전극으로 건너뜀", StepWaiting, StepElectrode},
		{"Half Cut에서 접합 준비로 건너뜀", StepHalfCut, StepLaminationReady},
		{"접합 준비에서 가열", StepLaminationReady, StepLaminationHeating},
		{"가열에서 접합 완료", StepLaminationHeating, StepLaminationDone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CheckTransition(tt.last, false, "", tt.incoming); err != nil {
				t.Fatalf("CheckTransition(%v → %v) rejected: %v", tt.last, tt.incoming, err)
			}
		})
	}
}

func TestCheckTransitionDuplicate(t *testing.T) {
	err := CheckTransition(StepFullCut, false, "Full Cut", StepFullCut)
	re, ok := AsReject(err)
	if !ok {
		t.Fatalf("want RejectError, got %v", err)
	}
	if re.Code != RejectDuplicateStep {
		t.Fatalf("Code = %s, want %s", re.Code, RejectDuplicateStep)
	}
	if re.LastStep != StepFullCut {
		t.Fatalf("LastStep = %v, want StepFullCut", re.LastStep)
	}
}

func TestCheckTransitionBackward(t *testing.T) {
	tests := []struct {
		name     string
		last     Step
		incoming Step
	}{
		{"전극 후 Full Cut 재스캔", StepElectrode, StepFullCut},
		{"전극 후 Half Cut 재스캔", StepElectrode, StepHalfCut},
		{"접합 완료 후 가열 재스캔", StepLaminationDone, StepLaminationHeating},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTransition(tt.last, false, "", tt.incoming)
			re, ok := AsReject(err)
			if !ok {
				t.Fatalf("want RejectError, got %v", err)
			}
			if re.Code != RejectSequenceViolation {
				t.Fatalf("Code = %s, want %s", re.Code, RejectSequenceViolation)
			}
		})
	}
}

func TestCheckTransitionBlocked(t *testing.T) {
	// 불량 LOT은 앞으로 가는 스캔이라도 전부 거절
	err := CheckTransition(StepHalfCut, true, "불량(스크래치)", StepElectrode)
	re, ok := AsReject(err)
	if !ok {
		t.Fatalf("want RejectError, got %v", err)
	}
	if re.Code != RejectAlreadyDefective {
		t.Fatalf("Code = %s, want %s", re.Code, RejectAlreadyDefective)
	}
}

func TestParseStepCode(t *testing.T) {
	for _, s := range WorkSteps {
		got, err := ParseStepCode(s.Code())
		if err != nil {
			t.Fatalf("ParseStepCode(%q) error: %v", s.Code(), err)
		}
		if got != s {
			t.Fatalf("ParseStepCode(%q) = %v, want %v", s.Code(), got, s)
		}
	}

	// waiting 은 작업 등록 대상이 아니다
	if _, err := ParseStepCode("waiting"); err == nil {
		t.Fatal("ParseStepCode(waiting) succeeded, want error")
	}
	if _, err := ParseStepCode("unknown"); err == nil {
		t.Fatal("ParseStepCode(unknown) succeeded, want error")
	}
}

func TestNextStep(t *testing.T) {
	if next, ok := NextStep(StepWaiting, true); !ok || next != StepFullCut {
		t.Fatalf("NextStep(waiting) = %v, %v", next, ok)
	}
	if next, ok := NextStep(StepElectrode, true); !ok || next != StepLaminationReady {
		t.Fatalf("NextStep(electrode, lamination) = %v, %v", next, ok)
	}
	// 접합 생략 LOT은 전극이 마지막
	if _, ok := NextStep(StepElectrode, false); ok {
		t.Fatal("NextStep(electrode, no lamination) = ok, want false")
	}
	if _, ok := NextStep(StepLaminationDone, true); ok {
		t.Fatal("NextStep(lamination_done) = ok, want false")
	}
}

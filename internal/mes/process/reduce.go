package process

import (
	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
)

// Phase 대시보드 집계 단위
type Phase string

const (
	PhaseWaiting           Phase = "waiting"
	PhaseFullCut           Phase = "full_cut"
	PhaseHalfCut           Phase = "half_cut"
	PhaseElectrode         Phase = "electrode"
	PhaseWaitingLamination Phase = "lamination_waiting"
	PhaseInLamination      Phase = "lamination"
	PhaseDone              Phase = "done"
	PhaseDefect            Phase = "defect"
)

// LotState LOT 하나의 정규화된 현재 상태. 표시 전용이며 저장하지 않는다.
type LotState struct {
	LotNo           string `json:"lot_no"`
	Phase           Phase  `json:"phase"`
	PercentComplete int    `json:"percent_complete"`
	Badge           string `json:"badge"` // white / blue / orange / green / red
	Label           string `json:"label"`
	IsTerminal      bool   `json:"is_terminal"`
	DefectType      string `json:"defect_type,omitempty"`
}

// Reduce 작업 지시서의 상태 칸과 최근 공정 로그를 하나의 LotState 로
// 환원한다. 상태 칸은 검증 통과 후 마지막으로 기록된 값이므로 종결/불량
// 마커에 대해서는 상태 칸이 우선한다. 상태 문자열이 어휘에 없을 때만
// 로그로 보강한다. 입력만 읽는 순수 함수라 같은 스냅샷에는 항상 같은
// 결과를 낸다.
func Reduce(order *entity.WorkOrder, lastLog *entity.ProductionLog) LotState {
	hasLamination := order.LaminationSpec != nil
	info := ParseStatus(order.Status)

	switch {
	case info.Defective:
		return LotState{
			LotNo:           order.LotNo,
			Phase:           PhaseDefect,
			PercentComplete: 100,
			Badge:           "red",
			Label:           "불량 발생",
			IsTerminal:      true,
			DefectType:      info.DefectType,
		}
	case info.Held:
		return LotState{
			LotNo:           order.LotNo,
			Phase:           PhaseDefect,
			PercentComplete: 100,
			Badge:           "red",
			Label:           "보류",
			IsTerminal:      true,
		}
	case info.Done:
		return doneState(order.LotNo)
	}

	step := info.Step
	if !info.Known && lastLog != nil {
		if logInfo := ParseStatus(lastLog.Step); logInfo.Known && !logInfo.Defective && !logInfo.Held {
			step = logInfo.Step
		}
	}

	return stepState(order.LotNo, step, hasLamination)
}

func doneState(lotNo string) LotState {
	return LotState{
		LotNo:           lotNo,
		Phase:           PhaseDone,
		PercentComplete: 100,
		Badge:           "green",
		Label:           "생산 완료",
		IsTerminal:      true,
	}
}

// stepState 공정 → (단계, 진행률) 매핑. 접합 생략 LOT은 전극 완료가 곧
// 생산 완료라 진행률 표가 다르다. 이 분기는 제품 사양에 따른 핵심 업무
// 규칙이다.
func stepState(lotNo string, step Step, hasLamination bool) LotState {
	if !hasLamination {
		switch step {
		case StepFullCut:
			return LotState{LotNo: lotNo, Phase: PhaseFullCut, PercentComplete: 40, Badge: "blue", Label: "커팅 중"}
		case StepHalfCut:
			return LotState{LotNo: lotNo, Phase: PhaseHalfCut, PercentComplete: 70, Badge: "blue", Label: "커팅 중"}
		case StepElectrode, StepLaminationReady, StepLaminationHeating, StepLaminationDone:
			// 접합 생략 LOT은 전극에서 종료
			return doneState(lotNo)
		default:
			return LotState{LotNo: lotNo, Phase: PhaseWaiting, PercentComplete: 5, Badge: "white", Label: "작업 대기"}
		}
	}

	switch step {
	case StepFullCut:
		return LotState{LotNo: lotNo, Phase: PhaseFullCut, PercentComplete: 25, Badge: "blue", Label: "커팅 중"}
	case StepHalfCut:
		return LotState{LotNo: lotNo, Phase: PhaseHalfCut, PercentComplete: 40, Badge: "blue", Label: "커팅 중"}
	case StepElectrode:
		return LotState{LotNo: lotNo, Phase: PhaseElectrode, PercentComplete: 50, Badge: "blue", Label: "전극 중"}
	case StepLaminationReady:
		return LotState{LotNo: lotNo, Phase: PhaseWaitingLamination, PercentComplete: 75, Badge: "orange", Label: "접합 대기"}
	case StepLaminationHeating:
		return LotState{LotNo: lotNo, Phase: PhaseInLamination, PercentComplete: 85, Badge: "orange", Label: "접합 중"}
	case StepLaminationDone:
		return doneState(lotNo)
	default:
		return LotState{LotNo: lotNo, Phase: PhaseWaiting, PercentComplete: 5, Badge: "white", Label: "작업 대기"}
	}
}

// Package process 는 공정 순서 검증, LOT 상태 환원, 대시보드 집계 등
// 생산 추적의 순수 도메인 로직을 담는다. 외부 저장소에는 접근하지 않는다.
package process

import "fmt"

// Step 공정 단계. 레벨 값은 기존 현장 시스템의 STEP_LEVEL 표를 그대로 따른다.
type Step int

const (
	StepWaiting           Step = 0  // 작업 대기
	StepFullCut           Step = 10 // Full Cut
	StepHalfCut           Step = 20 // Half Cut
	StepElectrode         Step = 30 // 전극 완료
	StepLaminationReady   Step = 41 // 접합: 1. 준비 완료
	StepLaminationHeating Step = 42 // 접합: 2. 가열 시작
	StepLaminationDone    Step = 43 // 접합: 3. 공정 완료 (End)
)

// WorkSteps 작업자가 스캔으로 등록할 수 있는 공정 (레벨 오름차순)
var WorkSteps = []Step{
	StepFullCut,
	StepHalfCut,
	StepElectrode,
	StepLaminationReady,
	StepLaminationHeating,
	StepLaminationDone,
}

// statusTexts 저장소에 기록되는 표시 문자열. 기존 데이터와의 호환을 위해
// 현장에서 쓰던 한국어 표기를 그대로 유지한다.
var statusTexts = map[Step]string{
	StepWaiting:           "작업 대기",
	StepFullCut:           "Full Cut",
	StepHalfCut:           "Half Cut",
	StepElectrode:         "전극 완료",
	StepLaminationReady:   "접합: 1. 준비 완료",
	StepLaminationHeating: "접합: 2. 가열 시작",
	StepLaminationDone:    "접합: 3. 공정 완료 (End)",
}

// codes API 에서 쓰는 단계 코드
var codes = map[Step]string{
	StepWaiting:           "waiting",
	StepFullCut:           "full_cut",
	StepHalfCut:           "half_cut",
	StepElectrode:         "electrode",
	StepLaminationReady:   "lamination_ready",
	StepLaminationHeating: "lamination_heating",
	StepLaminationDone:    "lamination_done",
}

// StatusText 저장용 표시 문자열
func (s Step) StatusText() string {
	return statusTexts[s]
}

// Code API 단계 코드
func (s Step) Code() string {
	return codes[s]
}

func (s Step) String() string {
	if c, ok := codes[s]; ok {
		return c
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Level 단조 진행 비교에 쓰는 정수 레벨
func (s Step) Level() int {
	return int(s)
}

// IsLamination 접합 공정 여부
func (s Step) IsLamination() bool {
	return s >= StepLaminationReady && s <= StepLaminationDone
}

// ParseStepCode API 단계 코드 → Step. 작업 등록 대상이 아닌 코드는 에러.
func ParseStepCode(code string) (Step, error) {
	for _, s := range WorkSteps {
		if codes[s] == code {
			return s, nil
		}
	}
	return StepWaiting, fmt.Errorf("unknown step code %q", code)
}

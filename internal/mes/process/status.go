package process

import "strings"

// StatusInfo 레거시 상태 문자열을 해석한 결과
type StatusInfo struct {
	Step       Step
	Defective  bool
	Held       bool
	Done       bool // 완료/출고 등 종결 마커
	DefectType string
	Known      bool // false 면 어휘에 없어 작업 대기로 간주한 것
}

// ParseStatus 는 work_orders.status 의 자유 텍스트를 공정 어휘로 해석하는
// 유일한 호환 계층이다. 과거 시스템이 상태 칸에 공정 표시 문자열을 그대로
// 덮어쓰던 방식을 흡수하기 위한 것으로, 이 함수 밖에서 상태 문자열을
// 키워드 매칭하면 안 된다.
//
// 우선순위: 불량/보류 마커 → 공정 표시 문자열(높은 레벨부터) → 종결 마커 →
// 대기 마커. "전극 완료"처럼 공정명 안에 "완료"가 들어 있으므로 공정
// 문자열을 종결 마커보다 먼저 본다.
func ParseStatus(text string) StatusInfo {
	if strings.Contains(text, "불량") {
		return StatusInfo{
			Defective:  true,
			DefectType: extractDefectType(text),
			Known:      true,
		}
	}
	if strings.Contains(text, "보류") {
		return StatusInfo{Held: true, Known: true}
	}

	// 높은 레벨부터: "접합: 3. 공정 완료 (End)"가 "완료" 마커로 오인되지 않게
	for i := len(WorkSteps) - 1; i >= 0; i-- {
		s := WorkSteps[i]
		if strings.Contains(text, s.StatusText()) {
			return StatusInfo{Step: s, Known: true}
		}
	}

	if strings.Contains(text, "출고") || strings.Contains(text, "완료") {
		return StatusInfo{Done: true, Known: true}
	}
	if strings.Contains(text, "대기") {
		return StatusInfo{Step: StepWaiting, Known: true}
	}

	return StatusInfo{Step: StepWaiting}
}

// DefectStatusText 불량 마커 문자열. 리듀서가 조인 없이 유형을 복원할 수
// 있도록 유형을 괄호에 담는다.
func DefectStatusText(defectType string) string {
	return "불량(" + defectType + ")"
}

func extractDefectType(text string) string {
	open := strings.Index(text, "(")
	end := strings.LastIndex(text, ")")
	if open >= 0 && end > open {
		return text[open+1 : end]
	}
	return ""
}

package process

// 공정 경로는 고정이다: 커팅 → 전극 → 접합.
// preceding 은 각 공정의 정규 선행 공정을 담는다. 수락 판정 자체는
// 레벨 단조성만 보지만(validate.go 참조), 거절 사유 메시지와
// 화면 표시는 이 표를 사용한다.
var preceding = map[Step]Step{
	StepFullCut:           StepWaiting,
	StepHalfCut:           StepFullCut,
	StepElectrode:         StepHalfCut,
	StepLaminationReady:   StepElectrode,
	StepLaminationHeating: StepLaminationReady,
	StepLaminationDone:    StepLaminationHeating,
}

// PrecedingStep 정규 경로상 바로 앞 공정
func PrecedingStep(s Step) Step {
	if p, ok := preceding[s]; ok {
		return p
	}
	return StepWaiting
}

// NextStep 정규 경로상 다음 공정. 마지막 공정이면 ok=false.
// hasLamination=false 인 LOT은 전극에서 경로가 끝난다.
func NextStep(s Step, hasLamination bool) (Step, bool) {
	if !hasLamination && s >= StepElectrode {
		return s, false
	}
	for _, w := range WorkSteps {
		if w.Level() > s.Level() {
			return w, true
		}
	}
	return s, false
}

package process

// Counts 대시보드 상단 집계. 스냅샷에 대한 순수 폴드 결과라 잠금이 필요
// 없고, 모니터가 폴링할 때마다 새로 계산한다.
type Counts struct {
	Defect            int `json:"defect"`
	Done              int `json:"done"`
	InLamination      int `json:"lamination"`
	WaitingLamination int `json:"lamination_waiting"`
	Electrode         int `json:"electrode"`
	HalfCut           int `json:"half_cut"`
	FullCut           int `json:"full_cut"`
	Waiting           int `json:"waiting"`
}

// Total 전체 LOT 수
func (c Counts) Total() int {
	return c.Defect + c.Done + c.InLamination + c.WaitingLamination +
		c.Electrode + c.HalfCut + c.FullCut + c.Waiting
}

// Aggregate LOT 상태 스냅샷을 단계별 건수로 접는다. Reduce 가 LOT마다
// 단계를 하나로 정해 주므로(우선순위: 불량 > 완료 > 접합 > 접합대기 >
// 전극 > Half Cut > Full Cut > 대기) 중복 집계는 생기지 않는다.
// 빈 스냅샷이면 전부 0이다.
func Aggregate(states []LotState) Counts {
	var c Counts
	for _, s := range states {
		switch s.Phase {
		case PhaseDefect:
			c.Defect++
		case PhaseDone:
			c.Done++
		case PhaseInLamination:
			c.InLamination++
		case PhaseWaitingLamination:
			c.WaitingLamination++
		case PhaseElectrode:
			c.Electrode++
		case PhaseHalfCut:
			c.HalfCut++
		case PhaseFullCut:
			c.FullCut++
		default:
			c.Waiting++
		}
	}
	return c
}

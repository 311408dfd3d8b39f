package process

import (
	"errors"
	"fmt"
)

// RejectCode 스캔 거절 사유 코드. 사유별로 작업자 화면의 안내가 다르다.
type RejectCode string

const (
	RejectDuplicateStep     RejectCode = "duplicate_step"     // 같은 공정 재제출
	RejectSequenceViolation RejectCode = "sequence_violation" // 이미 지난 공정
	RejectAlreadyDefective  RejectCode = "already_defective"  // 불량/보류 LOT
)

// RejectError 업무상 예상되는 거절. 예외로 로깅하지 않고 그대로
// 작업자에게 전달한다.
type RejectError struct {
	Code    RejectCode
	Message string
	// LastStep 거절 시점에 알고 있던 마지막 공정
	LastStep Step
}

func (e *RejectError) Error() string {
	return e.Message
}

// AsReject err 가 RejectError 면 꺼낸다
func AsReject(err error) (*RejectError, bool) {
	var re *RejectError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// CheckTransition 스캔 수락/거절 판정의 핵심 규칙.
//
// 불량/보류 LOT은 무조건 거절한다. 그 외에는 레벨 단조성만 본다:
// 요청 공정의 레벨이 마지막 공정 레벨보다 높아야 수락한다. 현장
// 스캐너(휴대폰)는 이중 제출이나 순서가 어긋난 재스캔이 흔하므로,
// 이 함수가 생산 기록 오염을 막는 유일한 방어선이다.
func CheckTransition(last Step, blocked bool, blockedStatus string, incoming Step) error {
	if blocked {
		return &RejectError{
			Code:     RejectAlreadyDefective,
			Message:  fmt.Sprintf("불량/보류 제품입니다 (%s)", blockedStatus),
			LastStep: last,
		}
	}

	if incoming == last {
		return &RejectError{
			Code:     RejectDuplicateStep,
			Message:  fmt.Sprintf("이미 완료된 공정입니다 (%s)", last.StatusText()),
			LastStep: last,
		}
	}

	if incoming.Level() <= last.Level() {
		return &RejectError{
			Code: RejectSequenceViolation,
			Message: fmt.Sprintf("이미 지난 공정입니다 (현재: %s, 요청: %s)",
				last.StatusText(), incoming.StatusText()),
			LastStep: last,
		}
	}

	return nil
}

package entity

import (
	"time"
)

// DefectResolutionPending 불량 등록 직후의 조치 대기 상태.
// 현재 운영 절차상 불량 LOT은 신규 LOT으로 재등록하므로
// 시스템 내에서 이 값을 해제하는 경로는 없다.
const DefectResolutionPending = "조치대기"

// DefectRecord 불량 기록. DefectGate 를 통해서만 생성되며,
// 생성 즉시 해당 작업 지시서의 상태가 불량 마커로 덮어써진다.
type DefectRecord struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	LotNo      string    `json:"lot_no" gorm:"size:13;not null;index"`
	Step       string    `json:"step" gorm:"size:64;not null"` // 발견 공정
	DefectType string    `json:"defect_type" gorm:"size:32;not null"`
	Note       string    `json:"note" gorm:"size:512"`
	Worker     string    `json:"worker" gorm:"size:64;not null"`
	Status     string    `json:"status" gorm:"size:16;not null;default:조치대기"`
	CreatedAt  time.Time `json:"created_at"`
}

func (DefectRecord) TableName() string {
	return "defects"
}

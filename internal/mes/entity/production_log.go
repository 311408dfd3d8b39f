package entity

import (
	"time"
)

// ProductionLog 공정 이벤트 로그. 승인된 스캔마다 한 건씩 쌓이는
// append-only 기록으로, 생성 후 수정/삭제하지 않는다.
type ProductionLog struct {
	ID     string `json:"id" gorm:"primaryKey;size:36"`
	LotNo  string `json:"lot_no" gorm:"size:13;not null;index"`
	Step   string `json:"step" gorm:"size:64;not null"`
	Data   string `json:"data" gorm:"size:256"` // 장비 세팅값, 온도 등 공정별 자유 입력
	Worker string `json:"worker" gorm:"size:64;not null"`
	Result string `json:"result" gorm:"size:8;not null;default:OK"` // OK / NG
	CreatedAt time.Time `json:"created_at"`
}

func (ProductionLog) TableName() string {
	return "production_logs"
}

const (
	ResultOK = "OK"
	ResultNG = "NG"
)

package entity

import (
	"time"
)

// WorkOrder 작업 지시서. LOT 번호가 시스템 전체의 기본 키이며
// QR 코드에 그대로 담기는 13자리 외부 식별자다.
type WorkOrder struct {
	LotNo          string     `json:"lot_no" gorm:"primaryKey;size:13"`
	Customer       string     `json:"customer" gorm:"size:128;not null"`
	Product        string     `json:"product" gorm:"size:64;not null"` // 스마트글라스 / 접합필름 / PDLC원단 / 일반유리
	WidthMM        int        `json:"width_mm" gorm:"not null"`
	HeightMM       int        `json:"height_mm" gorm:"not null"`
	ElectrodeSpec  string     `json:"electrode_spec" gorm:"size:256"`
	CuttingSpec    string     `json:"cutting_spec" gorm:"size:256"`
	LaminationSpec *string    `json:"lamination_spec" gorm:"size:256"` // nil이면 접합 공정 생략 (전극에서 100% 완료)
	FabricLot      string     `json:"fabric_lot" gorm:"size:64;index"`
	DeliveryDate   *time.Time `json:"delivery_date"`
	// Status 는 마지막으로 승인된 공정의 표시 문자열을 비정규화해 캐시한 값.
	// 진실의 원본은 production_logs 이며 둘이 어긋나면 리듀서가 조정한다.
	Status    string    `json:"status" gorm:"size:64;not null"`
	CreatedBy string    `json:"created_by" gorm:"size:64;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Logs    []ProductionLog `json:"logs,omitempty" gorm:"foreignKey:LotNo;references:LotNo"`
	Defects []DefectRecord  `json:"defects,omitempty" gorm:"foreignKey:LotNo;references:LotNo"`
}

func (WorkOrder) TableName() string {
	return "work_orders"
}

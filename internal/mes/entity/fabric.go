package entity

import (
	"time"
)

// FabricRoll 원단 롤 재고. 지시서 발행 시 사용 길이를 차감한다.
type FabricRoll struct {
	LotNo    string  `json:"lot_no" gorm:"primaryKey;size:64"`
	WidthMM  int     `json:"width_mm" gorm:"not null"`
	TotalLen float64 `json:"total_len" gorm:"type:decimal(10,2);not null"` // m
	UsedLen  float64 `json:"used_len" gorm:"type:decimal(10,2);default:0"` // m
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FabricRoll) TableName() string {
	return "fabric_stock"
}

// Remaining 잔량(m)
func (f *FabricRoll) Remaining() float64 {
	return f.TotalLen - f.UsedLen
}

package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound 미등록 LOT 등 조회 실패
	ErrNotFound = errors.New("record not found")
	// ErrStatusConflict 상태 CAS 갱신 실패. 다른 세션이 먼저 상태를
	// 바꾼 것이므로 호출자는 재조회 후 재시도하면 된다.
	ErrStatusConflict = errors.New("status was changed by another session")
)

// Repositories 저장소 모음
type Repositories struct {
	WorkOrder     *WorkOrderRepository
	ProductionLog *ProductionLogRepository
	Defect        *DefectRepository
	Fabric        *FabricRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		WorkOrder:     NewWorkOrderRepository(db),
		ProductionLog: NewProductionLogRepository(db),
		Defect:        NewDefectRepository(db),
		Fabric:        NewFabricRepository(db),
	}
}

package repository

import (
	"context"
	"errors"

	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
	"gorm.io/gorm"
)

type ProductionLogRepository struct {
	db *gorm.DB
}

func NewProductionLogRepository(db *gorm.DB) *ProductionLogRepository {
	return &ProductionLogRepository{db: db}
}

// Append 공정 로그 추가. 로그는 append-only 라 Update/Delete 메서드를
// 두지 않는다.
func (r *ProductionLogRepository) Append(ctx context.Context, log *entity.ProductionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// GetLatestByLot 해당 LOT의 가장 최근 로그. 로그가 아직 없으면
// (nil, nil) 을 반환한다. "이전 공정 없음"은 정상 상태이고 저장소
// 장애와 구분되어야 한다.
func (r *ProductionLogRepository) GetLatestByLot(ctx context.Context, lotNo string) (*entity.ProductionLog, error) {
	var log entity.ProductionLog
	err := r.db.WithContext(ctx).
		Where("lot_no = ?", lotNo).
		Order("created_at DESC").
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

// ListByLot LOT의 전체 공정 이력 (시간순)
func (r *ProductionLogRepository) ListByLot(ctx context.Context, lotNo string) ([]entity.ProductionLog, error) {
	var logs []entity.ProductionLog
	err := r.db.WithContext(ctx).
		Where("lot_no = ?", lotNo).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}

// ListRecent 최근 로그 (모니터 화면 보강용)
func (r *ProductionLogRepository) ListRecent(ctx context.Context, limit int) ([]entity.ProductionLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var logs []entity.ProductionLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

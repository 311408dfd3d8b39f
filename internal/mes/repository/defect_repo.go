package repository

import (
	"context"

	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
	"gorm.io/gorm"
)

type DefectRepository struct {
	db *gorm.DB
}

func NewDefectRepository(db *gorm.DB) *DefectRepository {
	return &DefectRepository{db: db}
}

func (r *DefectRepository) Create(ctx context.Context, d *entity.DefectRecord) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DefectRepository) ListByLot(ctx context.Context, lotNo string) ([]entity.DefectRecord, error) {
	var defects []entity.DefectRecord
	err := r.db.WithContext(ctx).
		Where("lot_no = ?", lotNo).
		Order("created_at ASC").
		Find(&defects).Error
	return defects, err
}

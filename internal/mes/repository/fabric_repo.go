package repository

import (
	"context"
	"errors"

	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
	"gorm.io/gorm"
)

type FabricRepository struct {
	db *gorm.DB
}

func NewFabricRepository(db *gorm.DB) *FabricRepository {
	return &FabricRepository{db: db}
}

func (r *FabricRepository) Create(ctx context.Context, roll *entity.FabricRoll) error {
	return r.db.WithContext(ctx).Create(roll).Error
}

func (r *FabricRepository) GetByLotNo(ctx context.Context, lotNo string) (*entity.FabricRoll, error) {
	var roll entity.FabricRoll
	err := r.db.WithContext(ctx).Where("lot_no = ?", lotNo).First(&roll).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &roll, nil
}

func (r *FabricRepository) List(ctx context.Context) ([]entity.FabricRoll, error) {
	var rolls []entity.FabricRoll
	err := r.db.WithContext(ctx).Order("lot_no ASC").Find(&rolls).Error
	return rolls, err
}

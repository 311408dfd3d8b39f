package repository

import (
	"context"
	"errors"

	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
	"gorm.io/gorm"
)

type WorkOrderRepository struct {
	db *gorm.DB
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

func (r *WorkOrderRepository) GetByLotNo(ctx context.Context, lotNo string) (*entity.WorkOrder, error) {
	var wo entity.WorkOrder
	err := r.db.WithContext(ctx).Where("lot_no = ?", lotNo).First(&wo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &wo, nil
}

// UpdateStatusCAS 상태 칸 낙관적 갱신. expected 와 현재 값이 같을 때만
// 바꾼다. 같은 LOT을 두 단말이 동시에 스캔하면 한쪽만 성공하고 다른
// 쪽은 ErrStatusConflict 를 받아 재시도하게 된다.
func (r *WorkOrderRepository) UpdateStatusCAS(ctx context.Context, lotNo, expected, next string) error {
	res := r.db.WithContext(ctx).Model(&entity.WorkOrder{}).
		Where("lot_no = ? AND status = ?", lotNo, expected).
		Update("status", next)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// LOT 자체가 없는 건지 상태가 달라진 건지 구분
		var count int64
		if err := r.db.WithContext(ctx).Model(&entity.WorkOrder{}).
			Where("lot_no = ?", lotNo).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrStatusConflict
	}
	return nil
}

// UpdateStatus 무조건 덮어쓰기. 불량 게이트처럼 현재 값과 무관하게
// 강제해야 하는 경로에서만 쓴다.
func (r *WorkOrderRepository) UpdateStatus(ctx context.Context, lotNo, next string) error {
	res := r.db.WithContext(ctx).Model(&entity.WorkOrder{}).
		Where("lot_no = ?", lotNo).
		Update("status", next)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRecent 최근 발행 순 조회 (모니터 화면용 스냅샷)
func (r *WorkOrderRepository) ListRecent(ctx context.Context, limit int) ([]entity.WorkOrder, error) {
	if limit <= 0 {
		limit = 50
	}
	var wos []entity.WorkOrder
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&wos).Error
	return wos, err
}

type WorkOrderListParams struct {
	Customer string
	Product  string
	Keyword  string
	Page     int
	Size     int
}

// List 발행 이력 조회 (관리자 화면용)
func (r *WorkOrderRepository) List(ctx context.Context, params WorkOrderListParams) ([]entity.WorkOrder, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.WorkOrder{})
	if params.Customer != "" {
		query = query.Where("customer = ?", params.Customer)
	}
	if params.Product != "" {
		query = query.Where("product = ?", params.Product)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("lot_no ILIKE ? OR customer ILIKE ?", kw, kw)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}

	var wos []entity.WorkOrder
	err := query.
		Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&wos).Error
	return wos, total, err
}

// Delete 지시서 삭제. 운영자 확인 문구를 거친 경로에서만 호출된다.
func (r *WorkOrderRepository) Delete(ctx context.Context, lotNo string) error {
	res := r.db.WithContext(ctx).Where("lot_no = ?", lotNo).Delete(&entity.WorkOrder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DB 트랜잭션용 내부 db
func (r *WorkOrderRepository) DB() *gorm.DB {
	return r.db
}

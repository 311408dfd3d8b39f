package service

import (
	"context"
	"time"

	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
)

// FabricService 원단 롤 재고 관리
type FabricService struct {
	fabric *repository.FabricRepository
}

func NewFabricService(fabric *repository.FabricRepository) *FabricService {
	return &FabricService{fabric: fabric}
}

// RegisterRequest 원단 롤 등록
type RegisterRequest struct {
	LotNo    string  `json:"lot_no" binding:"required"`
	WidthMM  int     `json:"width_mm" binding:"required"`
	TotalLen float64 `json:"total_len" binding:"required"`
}

func (s *FabricService) Register(ctx context.Context, req *RegisterRequest) (*entity.FabricRoll, error) {
	now := time.Now()
	roll := &entity.FabricRoll{
		LotNo:     req.LotNo,
		WidthMM:   req.WidthMM,
		TotalLen:  req.TotalLen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.fabric.Create(ctx, roll); err != nil {
		return nil, err
	}
	return roll, nil
}

func (s *FabricService) Get(ctx context.Context, lotNo string) (*entity.FabricRoll, error) {
	return s.fabric.GetByLotNo(ctx, lotNo)
}

func (s *FabricService) List(ctx context.Context) ([]entity.FabricRoll, error) {
	return s.fabric.List(ctx)
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
	"github.com/lks7470-gif/bt-admin/internal/mes/lotid"
	"github.com/lks7470-gif/bt-admin/internal/mes/process"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrUnknownProduct 발행 화면의 제품 종류 4종 외 입력
	ErrUnknownProduct = errors.New("unknown product type")
	// ErrConfirmPhrase 삭제 확인 문구 불일치
	ErrConfirmPhrase = errors.New("confirmation phrase mismatch")
	// ErrInsufficientFabric 원단 잔량 부족
	ErrInsufficientFabric = errors.New("insufficient fabric remaining")
)

// DeleteConfirmPhrase 지시서 삭제는 이 문구를 그대로 입력해야 실행된다.
// 자동 삭제 경로는 없으며 운영자 삭제가 유일한 파기 경로다.
const DeleteConfirmPhrase = "삭제합니다"

// OrderService 작업 지시서 발행/조회/삭제와 이력 내보내기
type OrderService struct {
	orders  *repository.WorkOrderRepository
	logs    *repository.ProductionLogRepository
	defects *repository.DefectRepository
	fabric  *repository.FabricRepository
	logger  *zap.Logger
}

func NewOrderService(orders *repository.WorkOrderRepository, logs *repository.ProductionLogRepository, defects *repository.DefectRepository, fabric *repository.FabricRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, logs: logs, defects: defects, fabric: fabric, logger: logger}
}

// PublishRequest 발행 배치 입력
type PublishRequest struct {
	Customer       string  `json:"customer" binding:"required"`
	Product        string  `json:"product" binding:"required"` // 스마트글라스 / 접합필름 / PDLC원단 / 일반유리
	MaterialCode   string  `json:"material_code" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required,min=1"`
	WidthMM        int     `json:"width_mm" binding:"required"`
	HeightMM       int     `json:"height_mm" binding:"required"`
	ElectrodeSpec  string  `json:"electrode_spec"`
	CuttingSpec    string  `json:"cutting_spec"`
	LaminationSpec *string `json:"lamination_spec"` // 생략하면 접합 공정 없는 제품
	FabricLot      string  `json:"fabric_lot"`
	DeliveryDate   *time.Time `json:"delivery_date"`
}

// PublishBatch 지시서 배치를 발행한다. LOT 번호 순번은 배치마다 0부터
// 시작한다. 같은 날 같은 (자재, 제품) 조합을 배치를 나눠 100장 이상
// 발행하면 번호가 겹칠 수 있는데, 기존 운영 방식 그대로 두었고 중복
// 발생 시 기본 키 충돌로 발행이 실패한다.
func (s *OrderService) PublishBatch(ctx context.Context, req *PublishRequest, createdBy string) ([]entity.WorkOrder, error) {
	productCode, ok := lotid.ProductCodeOf(req.Product)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, req.Product)
	}

	// 원단을 지정했으면 잔량부터 확인
	var usage float64
	if req.FabricLot != "" {
		roll, err := s.fabric.GetByLotNo(ctx, req.FabricLot)
		if err != nil {
			return nil, fmt.Errorf("fetch fabric roll: %w", err)
		}
		usage = float64(req.HeightMM) / 1000 * float64(req.Quantity)
		if roll.Remaining() < usage {
			return nil, fmt.Errorf("%w: need %.1fm, remaining %.1fm",
				ErrInsufficientFabric, usage, roll.Remaining())
		}
	}

	now := time.Now()
	seq := lotid.NewSequencer()
	orders := make([]entity.WorkOrder, 0, req.Quantity)
	for i := 0; i < req.Quantity; i++ {
		orders = append(orders, entity.WorkOrder{
			LotNo:          lotid.Encode(req.MaterialCode, now, productCode, seq.Next()),
			Customer:       req.Customer,
			Product:        req.Product,
			WidthMM:        req.WidthMM,
			HeightMM:       req.HeightMM,
			ElectrodeSpec:  req.ElectrodeSpec,
			CuttingSpec:    req.CuttingSpec,
			LaminationSpec: req.LaminationSpec,
			FabricLot:      req.FabricLot,
			DeliveryDate:   req.DeliveryDate,
			Status:         process.StepWaiting.StatusText(),
			CreatedBy:      createdBy,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	err := s.orders.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&orders).Error; err != nil {
			return fmt.Errorf("create work orders: %w", err)
		}
		if req.FabricLot != "" {
			res := tx.Model(&entity.FabricRoll{}).
				Where("lot_no = ?", req.FabricLot).
				Update("used_len", gorm.Expr("used_len + ?", usage))
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Batch published",
		zap.String("customer", req.Customer),
		zap.String("product", req.Product),
		zap.Int("quantity", req.Quantity),
		zap.String("first_lot", orders[0].LotNo),
	)
	return orders, nil
}

// OrderDetail 지시서 상세 (공정 이력, 불량 기록 포함)
type OrderDetail struct {
	Order   *entity.WorkOrder      `json:"order"`
	Logs    []entity.ProductionLog `json:"logs"`
	Defects []entity.DefectRecord  `json:"defects"`
	State   process.LotState       `json:"state"`
}

// GetDetail 지시서 상세 조회
func (s *OrderService) GetDetail(ctx context.Context, lotNo string) (*OrderDetail, error) {
	order, err := s.orders.GetByLotNo(ctx, lotNo)
	if err != nil {
		return nil, err
	}
	logs, err := s.logs.ListByLot(ctx, lotNo)
	if err != nil {
		return nil, err
	}
	defects, err := s.defects.ListByLot(ctx, lotNo)
	if err != nil {
		return nil, err
	}

	var lastLog *entity.ProductionLog
	if len(logs) > 0 {
		lastLog = &logs[len(logs)-1]
	}

	return &OrderDetail{
		Order:   order,
		Logs:    logs,
		Defects: defects,
		State:   process.Reduce(order, lastLog),
	}, nil
}

// List 발행 이력
func (s *OrderService) List(ctx context.Context, params repository.WorkOrderListParams) ([]entity.WorkOrder, int64, error) {
	return s.orders.List(ctx, params)
}

// Delete 지시서 삭제. confirm 이 확인 문구와 정확히 일치해야 한다.
func (s *OrderService) Delete(ctx context.Context, lotNo, confirm string) error {
	if confirm != DeleteConfirmPhrase {
		return ErrConfirmPhrase
	}
	if err := s.orders.Delete(ctx, lotNo); err != nil {
		return err
	}
	s.logger.Warn("Work order deleted", zap.String("lot_no", lotNo))
	return nil
}

// ExportHistory 발행 이력을 엑셀로 내보낸다 (관리자 이력 조회 탭)
func (s *OrderService) ExportHistory(ctx context.Context, params repository.WorkOrderListParams) (*bytes.Buffer, error) {
	params.Page = 1
	if params.Size <= 0 || params.Size > 1000 {
		params.Size = 1000
	}
	orders, _, err := s.orders.List(ctx, params)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "작업지시"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"LOT 번호", "고객사", "제품", "규격(W×H)", "원단 LOT", "상태", "발행일"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, o := range orders {
		values := []interface{}{
			o.LotNo,
			o.Customer,
			o.Product,
			fmt.Sprintf("%d×%d", o.WidthMM, o.HeightMM),
			o.FabricLot,
			o.Status,
			o.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf, nil
}

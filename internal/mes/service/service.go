package service

import (
	"github.com/lks7470-gif/bt-admin/internal/config"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Services 서비스 모음
type Services struct {
	Auth      *AuthService
	Tracking  *TrackingService
	Defect    *DefectService
	Dashboard *DashboardService
	Order     *OrderService
	Fabric    *FabricService
}

func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	return &Services{
		Auth:      NewAuthService(cfg),
		Tracking:  NewTrackingService(repos.WorkOrder, repos.ProductionLog, logger),
		Defect:    NewDefectService(repos.WorkOrder, repos.Defect, logger),
		Dashboard: NewDashboardService(repos.WorkOrder, repos.ProductionLog, rdb, logger),
		Order:     NewOrderService(repos.WorkOrder, repos.ProductionLog, repos.Defect, repos.Fabric, logger),
		Fabric:    NewFabricService(repos.Fabric),
	}
}

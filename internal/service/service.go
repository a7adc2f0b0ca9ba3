package service

import (
	"go.uber.org/zap"

	"github.com/DeusBlu/sports-season-system/config"
	"github.com/DeusBlu/sports-season-system/internal/repository"
)

// Service 所有业务 Service 的聚合入口
type Service struct {
	Season     SeasonService
	Membership MembershipService
	Game       GameService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Season:     NewSeasonService(repo, logger),
		Membership: NewMembershipService(repo, logger),
		Game:       NewGameService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}

// hasPermission 判断权限列表中是否包含指定权限
func hasPermission(permissions []string, perm string) bool {
	for _, p := range permissions {
		if p == perm {
			return true
		}
	}
	return false
}

package handler

import (
	"go.uber.org/zap"

	"github.com/DeusBlu/sports-season-system/internal/service"
)

// Handler 所有 HTTP Handler 的聚合入口
type Handler struct {
	Season     *SeasonHandler
	Membership *MembershipHandler
	Game       *GameHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Season:     NewSeasonHandler(svc.Season, logger),
		Membership: NewMembershipHandler(svc.Membership, logger),
		Game:       NewGameHandler(svc.Game, logger),
		Export:     NewExportHandler(svc.Export, logger),
	}
}

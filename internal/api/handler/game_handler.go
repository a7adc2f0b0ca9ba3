package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DeusBlu/sports-season-system/internal/dto"
	"github.com/DeusBlu/sports-season-system/internal/service"
	"github.com/DeusBlu/sports-season-system/pkg/response"
)

// GameHandler 比赛模块 HTTP Handler
type GameHandler struct {
	svc    service.GameService
	logger *zap.Logger
}

// NewGameHandler 创建 GameHandler 实例
func NewGameHandler(svc service.GameService, logger *zap.Logger) *GameHandler {
	return &GameHandler{svc: svc, logger: logger}
}

// Create 创建比赛
// POST /api/v1/games
func (h *GameHandler) Create(c *gin.Context) {
	var req dto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "请求参数错误: "+err.Error())
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleGameError(c, err)
		return
	}
	response.Created(c, resp)
}

// Get 查询单场比赛
// GET /api/v1/games/:id
func (h *GameHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleGameError(c, err)
		return
	}
	response.OK(c, resp)
}

// List 列出比赛，支持 ?seasonId= 过滤
// GET /api/v1/games
func (h *GameHandler) List(c *gin.Context) {
	var (
		resp []dto.GameResponse
		err  error
	)
	if seasonID := c.Query("seasonId"); seasonID != "" {
		resp, err = h.svc.ListBySeason(c.Request.Context(), seasonID)
	} else {
		resp, err = h.svc.List(c.Request.Context())
	}
	if err != nil {
		h.handleGameError(c, err)
		return
	}
	response.OK(c, resp)
}

// Update 更新比赛（部分更新）
// PUT /api/v1/games/:id
func (h *GameHandler) Update(c *gin.Context) {
	var req dto.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "请求参数错误: "+err.Error())
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleGameError(c, err)
		return
	}
	response.OK(c, resp)
}

// Delete 删除比赛
// DELETE /api/v1/games/:id
func (h *GameHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleGameError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// handleGameError 比赛模块业务错误 → HTTP 响应
func (h *GameHandler) handleGameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSeasonNotFound):
		response.NotFound(c, 12001, "赛季不存在")
	case errors.Is(err, service.ErrGameNotFound):
		response.NotFound(c, 12201, "比赛不存在")
	case errors.Is(err, service.ErrInvalidGameTime),
		errors.Is(err, service.ErrInvalidGameType):
		response.BadRequest(c, 10001, err.Error())
	default:
		h.logger.Error("比赛接口内部错误", zap.Error(err))
		response.InternalError(c)
	}
}

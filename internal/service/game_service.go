package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DeusBlu/sports-season-system/internal/dto"
	"github.com/DeusBlu/sports-season-system/internal/model"
	"github.com/DeusBlu/sports-season-system/internal/repository"
)

var (
	ErrGameNotFound    = errors.New("比赛不存在")
	ErrInvalidGameTime = errors.New("比赛时间不合法")
	ErrInvalidGameType = errors.New("比赛类型不合法")
)

// GameService 比赛业务接口
type GameService interface {
	Create(ctx context.Context, req *dto.CreateGameRequest) (*dto.GameResponse, error)
	GetByID(ctx context.Context, id string) (*dto.GameResponse, error)
	List(ctx context.Context) ([]dto.GameResponse, error)
	ListBySeason(ctx context.Context, seasonID string) ([]dto.GameResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateGameRequest) (*dto.GameResponse, error)
	Delete(ctx context.Context, id string) error
}

type gameService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGameService 创建 GameService 实例
func NewGameService(repo *repository.Repository, logger *zap.Logger) GameService {
	return &gameService{repo: repo, logger: logger}
}

// Create 创建比赛，所属赛季必须存在
func (s *gameService) Create(ctx context.Context, req *dto.CreateGameRequest) (*dto.GameResponse, error) {
	if _, err := s.repo.Season.GetByID(ctx, req.SeasonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return nil, ErrInvalidGameTime
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return nil, ErrInvalidGameTime
	}
	if !end.After(start) {
		return nil, ErrInvalidGameTime
	}

	gameType := model.GameTypeScheduled
	if req.GameType != "" {
		if !model.ValidGameType(req.GameType) {
			return nil, ErrInvalidGameType
		}
		gameType = req.GameType
	}

	game := &model.Game{
		SeasonID:      req.SeasonID,
		Title:         req.Title,
		StartDatetime: start,
		EndDatetime:   end,
		IsMyGame:      req.IsMyGame,
		Opponent:      req.Opponent,
		GameType:      gameType,
		IsHome:        req.IsHome,
		PlayerID:      req.PlayerID,
	}
	if err := s.repo.Game.Create(ctx, game); err != nil {
		s.logger.Error("创建比赛失败", zap.String("season_id", req.SeasonID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("比赛创建成功",
		zap.String("game_id", game.GameID),
		zap.String("season_id", game.SeasonID))

	return toGameResponse(game), nil
}

func (s *gameService) GetByID(ctx context.Context, id string) (*dto.GameResponse, error) {
	game, err := s.repo.Game.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return toGameResponse(game), nil
}

// List 按开赛时间升序列出全部比赛（不区分赛季）
func (s *gameService) List(ctx context.Context) ([]dto.GameResponse, error) {
	games, err := s.repo.Game.List(ctx)
	if err != nil {
		return nil, err
	}

	resps := make([]dto.GameResponse, 0, len(games))
	for i := range games {
		resps = append(resps, *toGameResponse(&games[i]))
	}
	return resps, nil
}

// ListBySeason 按开赛时间升序列出赛季的全部比赛
func (s *gameService) ListBySeason(ctx context.Context, seasonID string) ([]dto.GameResponse, error) {
	if _, err := s.repo.Season.GetByID(ctx, seasonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}

	games, err := s.repo.Game.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	resps := make([]dto.GameResponse, 0, len(games))
	for i := range games {
		resps = append(resps, *toGameResponse(&games[i]))
	}
	return resps, nil
}

// Update 部分更新：请求中为 nil 的字段保留原值
func (s *gameService) Update(ctx context.Context, id string, req *dto.UpdateGameRequest) (*dto.GameResponse, error) {
	game, err := s.repo.Game.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		game.Title = *req.Title
	}
	if req.Start != nil {
		t, err := time.Parse(time.RFC3339, *req.Start)
		if err != nil {
			return nil, ErrInvalidGameTime
		}
		game.StartDatetime = t
	}
	if req.End != nil {
		t, err := time.Parse(time.RFC3339, *req.End)
		if err != nil {
			return nil, ErrInvalidGameTime
		}
		game.EndDatetime = t
	}
	if !game.EndDatetime.After(game.StartDatetime) {
		return nil, ErrInvalidGameTime
	}
	if req.IsMyGame != nil {
		game.IsMyGame = *req.IsMyGame
	}
	if req.Opponent != nil {
		game.Opponent = req.Opponent
	}
	if req.GameType != nil {
		if !model.ValidGameType(*req.GameType) {
			return nil, ErrInvalidGameType
		}
		game.GameType = *req.GameType
	}
	if req.IsHome != nil {
		game.IsHome = *req.IsHome
	}
	if req.PlayerID != nil {
		game.PlayerID = req.PlayerID
	}

	if err := s.repo.Game.Update(ctx, game); err != nil {
		s.logger.Error("更新比赛失败", zap.String("game_id", id), zap.Error(err))
		return nil, err
	}

	return toGameResponse(game), nil
}

func (s *gameService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Game.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}
	if err := s.repo.Game.Delete(ctx, id); err != nil {
		s.logger.Error("删除比赛失败", zap.String("game_id", id), zap.Error(err))
		return err
	}
	return nil
}

func toGameResponse(game *model.Game) *dto.GameResponse {
	return &dto.GameResponse{
		ID:       game.GameID,
		SeasonID: game.SeasonID,
		Title:    game.Title,
		Start:    game.StartDatetime.Format(time.RFC3339),
		End:      game.EndDatetime.Format(time.RFC3339),
		IsMyGame: game.IsMyGame,
		Opponent: game.Opponent,
		GameType: game.GameType,
		IsHome:   game.IsHome,
		PlayerID: game.PlayerID,
	}
}

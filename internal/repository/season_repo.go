package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DeusBlu/sports-season-system/internal/model"
)

// SeasonRepository 赛季数据访问接口
type SeasonRepository interface {
	Create(ctx context.Context, season *model.Season) error
	GetByID(ctx context.Context, id string) (*model.Season, error)
	List(ctx context.Context) ([]model.Season, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Season, error)
	ListByActiveMember(ctx context.Context, userID string) ([]model.Season, error)
	Update(ctx context.Context, season *model.Season) error
	Delete(ctx context.Context, id string) error
}

type seasonRepo struct {
	db *gorm.DB
}

// NewSeasonRepo 创建 SeasonRepository 实例
func NewSeasonRepo(db *gorm.DB) SeasonRepository {
	return &seasonRepo{db: db}
}

func (r *seasonRepo) Create(ctx context.Context, season *model.Season) error {
	return r.db.WithContext(ctx).Create(season).Error
}

func (r *seasonRepo) GetByID(ctx context.Context, id string) (*model.Season, error) {
	var season model.Season
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&season).Error
	if err != nil {
		return nil, err
	}
	return &season, nil
}

func (r *seasonRepo) List(ctx context.Context) ([]model.Season, error) {
	var seasons []model.Season
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&seasons).Error
	return seasons, err
}

func (r *seasonRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Season, error) {
	var seasons []model.Season
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&seasons).Error
	return seasons, err
}

// ListByActiveMember 通过 season_members 联查用户作为活跃成员的赛季
func (r *seasonRepo) ListByActiveMember(ctx context.Context, userID string) ([]model.Season, error) {
	var seasons []model.Season
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN season_members sm ON seasons.id = sm.season_id").
		Where("sm.user_id = ? AND sm.status = ?", userID, model.MemberStatusActive).
		Order("seasons.created_at DESC").
		Find(&seasons).Error
	return seasons, err
}

func (r *seasonRepo) Update(ctx context.Context, season *model.Season) error {
	return r.db.WithContext(ctx).Save(season).Error
}

func (r *seasonRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Season{}).Error
}

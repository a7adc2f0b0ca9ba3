package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DeusBlu/sports-season-system/internal/model"
)

// UserSeasonRepository 旧版 user_seasons 关联表的数据访问接口。
// 该表仅为兼容历史客户端而保留，加入赛季时双写，级联删除时清理。
type UserSeasonRepository interface {
	Create(ctx context.Context, link *model.UserSeason) error
	Exists(ctx context.Context, seasonID, userID string) (bool, error)
	Delete(ctx context.Context, seasonID, userID string) error
	DeleteBySeason(ctx context.Context, seasonID string) error
}

type userSeasonRepo struct {
	db *gorm.DB
}

// NewUserSeasonRepo 创建 UserSeasonRepository 实例
func NewUserSeasonRepo(db *gorm.DB) UserSeasonRepository {
	return &userSeasonRepo{db: db}
}

func (r *userSeasonRepo) Create(ctx context.Context, link *model.UserSeason) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *userSeasonRepo) Exists(ctx context.Context, seasonID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserSeason{}).
		Where("season_id = ? AND user_id = ?", seasonID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *userSeasonRepo) Delete(ctx context.Context, seasonID, userID string) error {
	return r.db.WithContext(ctx).
		Where("season_id = ? AND user_id = ?", seasonID, userID).
		Delete(&model.UserSeason{}).Error
}

func (r *userSeasonRepo) DeleteBySeason(ctx context.Context, seasonID string) error {
	return r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Delete(&model.UserSeason{}).Error
}

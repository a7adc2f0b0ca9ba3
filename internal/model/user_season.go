package model

import "time"

// UserSeason 旧版用户赛季关联表 — 对应 user_seasons
// 历史版本的成员关系表，读取方尚未全部下线，写入与清理均与 season_members 同步
type UserSeason struct {
	LinkID    string    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SeasonID  string    `gorm:"column:season_id;type:uuid;not null;uniqueIndex:uq_user_seasons" json:"seasonId"`
	UserID    string    `gorm:"column:user_id;type:varchar(128);not null;uniqueIndex:uq_user_seasons" json:"userId"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName 指定表名
func (UserSeason) TableName() string { return "user_seasons" }

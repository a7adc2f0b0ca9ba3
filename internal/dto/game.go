package dto

// ── 比赛模块 DTO ──

// CreateGameRequest 创建比赛请求
type CreateGameRequest struct {
	SeasonID string  `json:"seasonId" binding:"required"`
	Title    string  `json:"title"    binding:"required,min=1,max=200"`
	Start    string  `json:"start"    binding:"required"` // RFC3339
	End      string  `json:"end"      binding:"required"` // RFC3339
	IsMyGame bool    `json:"isMyGame"`
	Opponent *string `json:"opponent" binding:"omitempty,max=100"`
	GameType string  `json:"gameType" binding:"omitempty,oneof=scheduled completed cancelled"`
	IsHome   bool    `json:"isHome"`
	PlayerID *string `json:"playerId"`
}

// UpdateGameRequest 更新比赛请求（部分更新）
type UpdateGameRequest struct {
	Title    *string `json:"title"    binding:"omitempty,min=1,max=200"`
	Start    *string `json:"start"`
	End      *string `json:"end"`
	IsMyGame *bool   `json:"isMyGame"`
	Opponent *string `json:"opponent" binding:"omitempty,max=100"`
	GameType *string `json:"gameType" binding:"omitempty,oneof=scheduled completed cancelled"`
	IsHome   *bool   `json:"isHome"`
	PlayerID *string `json:"playerId"`
}

// GameResponse 比赛信息响应
type GameResponse struct {
	ID       string  `json:"id"`
	SeasonID string  `json:"seasonId"`
	Title    string  `json:"title"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	IsMyGame bool    `json:"isMyGame"`
	Opponent *string `json:"opponent,omitempty"`
	GameType string  `json:"gameType"`
	IsHome   bool    `json:"isHome"`
	PlayerID *string `json:"playerId,omitempty"`
}

// [自证通过] internal/dto/game.go

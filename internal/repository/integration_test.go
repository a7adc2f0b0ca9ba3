//go:build integration

package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/DeusBlu/sports-season-system/internal/model"
)

// 集成测试依赖真实 Postgres：
//
//	TEST_DATABASE_DSN="host=localhost user=postgres dbname=season_hub_test sslmode=disable" \
//	go test -tags=integration ./internal/repository/
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("未设置 TEST_DATABASE_DSN，跳过集成测试")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Season{}, &model.SeasonMember{}, &model.UserSeason{}, &model.Game{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM games")
		db.Exec("DELETE FROM season_members")
		db.Exec("DELETE FROM user_seasons")
		db.Exec("DELETE FROM seasons")
	})
	return db
}

func TestSeasonRepo_CRUD(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	season := &model.Season{Name: "集成测试赛季", OwnerID: "owner-1", Status: model.SeasonStatusPreseason}
	if err := repo.Season.Create(ctx, season); err != nil {
		t.Fatalf("创建赛季失败: %v", err)
	}
	if season.SeasonID == "" {
		t.Fatal("数据库未回填赛季 ID")
	}

	got, err := repo.Season.GetByID(ctx, season.SeasonID)
	if err != nil {
		t.Fatalf("查询赛季失败: %v", err)
	}
	if got.Name != "集成测试赛季" {
		t.Errorf("期望名称 集成测试赛季，实际=%s", got.Name)
	}

	_, err = repo.Season.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 ErrRecordNotFound，实际=%v", err)
	}
}

func TestMemberRepo_UniqueConstraint(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	season := &model.Season{Name: "唯一约束赛季", OwnerID: "owner-1", Status: model.SeasonStatusPreseason}
	if err := repo.Season.Create(ctx, season); err != nil {
		t.Fatalf("创建赛季失败: %v", err)
	}

	m1 := &model.SeasonMember{SeasonID: season.SeasonID, UserID: "user-1", Status: model.MemberStatusActive}
	if err := repo.Member.Create(ctx, m1); err != nil {
		t.Fatalf("创建成员失败: %v", err)
	}

	// 同一 (season_id, user_id) 第二行必须被唯一约束拒绝
	m2 := &model.SeasonMember{SeasonID: season.SeasonID, UserID: "user-1", Status: model.MemberStatusActive}
	if err := repo.Member.Create(ctx, m2); err == nil {
		t.Error("重复成员行未被唯一约束拒绝")
	}
}

func TestRepository_TxRollback(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		t.Fatalf("开启事务失败: %v", err)
	}
	txRepo := repo.WithTx(tx)

	season := &model.Season{Name: "回滚赛季", OwnerID: "owner-1", Status: model.SeasonStatusPreseason}
	if err := txRepo.Season.Create(ctx, season); err != nil {
		t.Fatalf("事务内创建失败: %v", err)
	}
	tx.Rollback()

	// 回滚后数据不可见
	if _, err := repo.Season.GetByID(ctx, season.SeasonID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("回滚后仍能查到赛季: %v", err)
	}
}

func TestSeasonRepo_ListByActiveMember(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	active := &model.Season{Name: "在役赛季", OwnerID: "owner-1", Status: model.SeasonStatusPreseason}
	left := &model.Season{Name: "已退赛季", OwnerID: "owner-1", Status: model.SeasonStatusPreseason}
	for _, s := range []*model.Season{active, left} {
		if err := repo.Season.Create(ctx, s); err != nil {
			t.Fatalf("创建赛季失败: %v", err)
		}
	}
	for _, m := range []*model.SeasonMember{
		{SeasonID: active.SeasonID, UserID: "user-1", Status: model.MemberStatusActive},
		{SeasonID: left.SeasonID, UserID: "user-1", Status: model.MemberStatusInactive},
	} {
		if err := repo.Member.Create(ctx, m); err != nil {
			t.Fatalf("创建成员失败: %v", err)
		}
	}

	seasons, err := repo.Season.ListByActiveMember(ctx, "user-1")
	if err != nil {
		t.Fatalf("联查失败: %v", err)
	}
	if len(seasons) != 1 || seasons[0].SeasonID != active.SeasonID {
		t.Errorf("期望只返回活跃成员的赛季，实际=%+v", seasons)
	}
}

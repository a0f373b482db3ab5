package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lucasliu251/TrashBox-Server/internal/model"
	"github.com/Lucasliu251/TrashBox-Server/internal/repository"
)

func TestPostCreate_DefaultTag(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewPostService(repository.NewPostRepository(db))
	ctx := context.Background()

	id, err := svc.Create(ctx, CreatePostParams{OpenID: "u1", Title: "Hello", Content: "World"})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	var post model.Post
	require.NoError(t, db.First(&post, id).Error)
	assert.Equal(t, "讨论", post.Tag)
}

func TestPostCreate_ExplicitTagVerbatim(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewPostService(repository.NewPostRepository(db))

	id, err := svc.Create(context.Background(), CreatePostParams{
		OpenID: "u1", Title: "t", Content: "c", Tag: "攻略",
	})
	require.NoError(t, err)

	var post model.Post
	require.NoError(t, db.First(&post, id).Error)
	assert.Equal(t, "攻略", post.Tag)
}

func TestPostList_OrderDateAndPlaceholder(t *testing.T) {
	db := setupServiceDB(t)
	repo := repository.NewPostRepository(db)
	svc := NewPostService(repo)
	ctx := context.Background()

	nickname := "玩家甲"
	require.NoError(t, db.Create(&model.User{UUID: "author", SteamID: "s", Nickname: &nickname}).Error)

	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)
	t2 := time.Date(2025, 3, 2, 10, 0, 0, 0, time.Local)
	require.NoError(t, repo.Create(ctx, &model.Post{UUID: "author", Title: "first", Tag: "讨论", CreatedAt: t1}))
	require.NoError(t, repo.Create(ctx, &model.Post{UUID: "ghost", Title: "second", Tag: "讨论", CreatedAt: t2}))

	items, err := svc.List(ctx, 20)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// 新帖在前，日期只保留年月日
	assert.Equal(t, "second", items[0].Title)
	assert.Equal(t, "2025-03-02", items[0].Date)
	assert.Equal(t, "first", items[1].Title)
	assert.Equal(t, "2025-03-01", items[1].Date)

	// 作者行缺失走占位昵称，头像保持空
	assert.Equal(t, "神秘玩家", items[0].Author)
	assert.Nil(t, items[0].Avatar)
	assert.Equal(t, "玩家甲", items[1].Author)
}

func TestPostList_EmptyNicknameUsesPlaceholder(t *testing.T) {
	db := setupServiceDB(t)
	repo := repository.NewPostRepository(db)
	svc := NewPostService(repo)
	ctx := context.Background()

	// 用户存在但未设置昵称
	require.NoError(t, db.Create(&model.User{UUID: "noname", SteamID: "s"}).Error)
	require.NoError(t, repo.Create(ctx, &model.Post{UUID: "noname", Title: "t", Tag: "讨论"}))

	items, err := svc.List(ctx, 20)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "神秘玩家", items[0].Author)
}

func TestPostList_LimitDefaultsAndClamp(t *testing.T) {
	db := setupServiceDB(t)
	repo := repository.NewPostRepository(db)
	svc := NewPostService(repo)
	ctx := context.Background()

	base := time.Now().Add(-2 * time.Hour)
	for i := 0; i < 25; i++ {
		require.NoError(t, repo.Create(ctx, &model.Post{
			UUID: "u", Title: "t", Tag: "讨论", CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	items, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, items, 20, "limit<=0 falls back to default 20")

	items, err = svc.List(ctx, 100000)
	require.NoError(t, err)
	assert.Len(t, items, 25, "oversized limit is clamped, not an error")

	items, err = svc.List(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

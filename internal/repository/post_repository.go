package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Lucasliu251/TrashBox-Server/internal/model"
)

// PostWithAuthor 列表页一行：帖子字段 + 左连出来的作者展示字段
type PostWithAuthor struct {
	ID        int64
	Title     string
	Tag       string
	Views     int64
	CreatedAt time.Time
	Nickname  *string
	Avatar    *string
}

type PostRepository interface {
	// Create 插入帖子，自增 id 回填到 post.ID
	Create(ctx context.Context, post *model.Post) error
	// ListWithAuthor 按创建时间倒序取前 limit 条，作者缺行时 Nickname/Avatar 为 nil
	ListWithAuthor(ctx context.Context, limit int) ([]*PostWithAuthor, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) ListWithAuthor(ctx context.Context, limit int) ([]*PostWithAuthor, error) {
	var rows []*PostWithAuthor
	err := r.db.WithContext(ctx).
		Table("posts AS p").
		Select("p.id, p.title, p.tag, p.views, p.created_at, u.nickname, u.avatar").
		Joins("LEFT JOIN users u ON p.uuid = u.uuid").
		Order("p.created_at DESC, p.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

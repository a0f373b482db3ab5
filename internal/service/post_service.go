package service

import (
	"context"

	"github.com/Lucasliu251/TrashBox-Server/internal/model"
	"github.com/Lucasliu251/TrashBox-Server/internal/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	// 作者行缺失或未设置昵称时的占位作者
	placeholderAuthor = "神秘玩家"
)

// CreatePostParams 发帖入参；Tag 为空时落默认分区
type CreatePostParams struct {
	OpenID  string
	Title   string
	Content string
	Tag     string
}

// PostItem 列表页单项
type PostItem struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Tag    string  `json:"tag"`
	Views  int64   `json:"views"`
	Date   string  `json:"date"`
	Author string  `json:"author"`
	Avatar *string `json:"avatar"`
}

type PostService interface {
	// Create 插入一条帖子并返回自增 id。非幂等，重复调用产生重复帖子。
	Create(ctx context.Context, p CreatePostParams) (int64, error)
	// List 按创建时间倒序返回前 limit 条；limit<=0 取默认值并封顶 maxListLimit
	List(ctx context.Context, limit int) ([]PostItem, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) Create(ctx context.Context, p CreatePostParams) (int64, error) {
	tag := p.Tag
	if tag == "" {
		tag = model.DefaultPostTag
	}
	post := &model.Post{
		UUID:    p.OpenID,
		Title:   p.Title,
		Content: p.Content,
		Tag:     tag,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return 0, err
	}
	return post.ID, nil
}

func (s *postService) List(ctx context.Context, limit int) ([]PostItem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	rows, err := s.postRepo.ListWithAuthor(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]PostItem, 0, len(rows))
	for _, row := range rows {
		author := placeholderAuthor
		if row.Nickname != nil && *row.Nickname != "" {
			author = *row.Nickname
		}
		items = append(items, PostItem{
			ID:     row.ID,
			Title:  row.Title,
			Tag:    row.Tag,
			Views:  row.Views,
			Date:   row.CreatedAt.Format("2006-01-02"),
			Author: author,
			Avatar: row.Avatar,
		})
	}
	return items, nil
}

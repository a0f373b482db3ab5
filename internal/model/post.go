package model

import "time"

// DefaultPostTag 未指定 tag 时的默认分区
const DefaultPostTag = "讨论"

// Post 帖子。uuid 指向作者，不做外键约束：
// 帖子允许先于/晚于作者行存在，列表渲染时用占位作者兜底。
type Post struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID      string    `json:"uuid" gorm:"type:varchar(64);index:idx_post_author;column:uuid"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null"`
	Content   string    `json:"content" gorm:"type:text"`
	Tag       string    `json:"tag" gorm:"type:varchar(32);not null;default:'讨论'"`
	Views     int64     `json:"views" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (Post) TableName() string { return "posts" }

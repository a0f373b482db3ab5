package model

import "time"

// User 用户，uuid 为微信换取的 openid，一个 openid 只有一行。
type User struct {
	UUID      string    `json:"uuid" gorm:"primaryKey;type:varchar(64);column:uuid"`
	SteamID   string    `json:"steam_id" gorm:"type:varchar(64)"`
	AuthCode  string    `json:"auth_code" gorm:"type:varchar(128)"`
	MatchCode string    `json:"match_code" gorm:"type:varchar(128)"`
	// 展示字段，由别处填充，这里允许为空
	Nickname  *string   `json:"nickname" gorm:"type:varchar(64)"`
	Avatar    *string   `json:"avatar" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

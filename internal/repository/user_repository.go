package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Lucasliu251/TrashBox-Server/internal/model"
)

type UserRepository interface {
	// Upsert 按 uuid 插入或覆盖绑定字段，单条语句，幂等
	Upsert(ctx context.Context, user *model.User) error
	GetByUUID(ctx context.Context, uuid string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Upsert(ctx context.Context, user *model.User) error {
	// uuid 冲突时只覆盖可变字段并刷新 updated_at，created_at 保持首次值
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uuid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"steam_id", "auth_code", "match_code", "updated_at",
		}),
	}).Create(user).Error
}

func (r *userRepository) GetByUUID(ctx context.Context, uuid string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

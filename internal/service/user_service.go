package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Lucasliu251/TrashBox-Server/internal/model"
	"github.com/Lucasliu251/TrashBox-Server/internal/repository"
	"github.com/Lucasliu251/TrashBox-Server/internal/session"
	"github.com/Lucasliu251/TrashBox-Server/internal/wechat"
	"github.com/Lucasliu251/TrashBox-Server/pkg/logger"
)

// ErrUserNotFound 查无此人，属于正常业务结果而非故障
var ErrUserNotFound = errors.New("user not found")

// OnboardParams 登录绑定入参，字段均必填（HTTP 层已校验非空）
type OnboardParams struct {
	LoginCode string
	SteamID   string
	AuthCode  string
	MatchCode string
}

// OnboardResult 绑定结果：openid 与后续请求使用的会话令牌
type OnboardResult struct {
	OpenID string
	Token  string
}

type UserService interface {
	// Onboard 用 loginCode 换 openid 并落库绑定；换取失败时不写库。
	// 同一 openid 重复调用只覆盖绑定字段，不产生新行。
	Onboard(ctx context.Context, p OnboardParams) (*OnboardResult, error)
	// Profile 按 openid 读取用户，不存在返回 ErrUserNotFound
	Profile(ctx context.Context, openid string) (*model.User, error)
}

type userService struct {
	wx       wechat.Client
	userRepo repository.UserRepository
	sessions session.Store
}

func NewUserService(wx wechat.Client, userRepo repository.UserRepository, sessions session.Store) UserService {
	return &userService{wx: wx, userRepo: userRepo, sessions: sessions}
}

func (s *userService) Onboard(ctx context.Context, p OnboardParams) (*OnboardResult, error) {
	openid, err := s.wx.CodeToSession(ctx, p.LoginCode)
	if err != nil {
		return nil, err
	}

	logger.Info("user onboarding",
		zap.String("openid", openid),
		zap.String("steam_id", p.SteamID),
	)

	user := &model.User{
		UUID:      openid,
		SteamID:   p.SteamID,
		AuthCode:  p.AuthCode,
		MatchCode: p.MatchCode,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.sessions.Issue(ctx, openid)
	if err != nil {
		return nil, err
	}
	return &OnboardResult{OpenID: openid, Token: token}, nil
}

func (s *userService) Profile(ctx context.Context, openid string) (*model.User, error) {
	user, err := s.userRepo.GetByUUID(ctx, openid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

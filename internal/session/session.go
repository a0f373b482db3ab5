package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Lucasliu251/TrashBox-Server/internal/config"
)

// ErrInvalidToken 令牌缺失、过期或被篡改
var ErrInvalidToken = errors.New("invalid session token")

// Store 会话令牌：绑定成功时签发，后续请求凭它在服务端解析出 openid，
// 取代把 openid 当查询参数裸传的做法。
type Store interface {
	Issue(ctx context.Context, openid string) (token string, err error)
	Resolve(ctx context.Context, token string) (openid string, err error)
}

// New 按配置选择实现；redis 模式需要已连接的客户端。
func New(cfg config.SessionConfig, rdb *redis.Client) (Store, error) {
	switch cfg.Mode {
	case "jwt":
		return NewJWTStore(cfg.Secret, cfg.TTL), nil
	case "redis":
		if rdb == nil {
			return nil, errors.New("session mode redis requires a redis client")
		}
		return NewRedisStore(rdb, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session mode %q", cfg.Mode)
	}
}

// ---- jwt：无状态签名令牌 ----

type jwtStore struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTStore(secret string, ttl time.Duration) Store {
	return &jwtStore{secret: []byte(secret), ttl: ttl}
}

func (s *jwtStore) Issue(_ context.Context, openid string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   openid,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *jwtStore) Resolve(_ context.Context, token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// ---- redis：不透明令牌 + 服务端存储，可随时作废 ----

const redisKeyPrefix = "session:"

type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func (s *redisStore) Issue(ctx context.Context, openid string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, redisKeyPrefix+token, openid, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *redisStore) Resolve(ctx context.Context, token string) (string, error) {
	openid, err := s.rdb.Get(ctx, redisKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", err
	}
	return openid, nil
}

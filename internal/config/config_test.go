package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TRASHBOX_DATABASE_DSN", "root:root@tcp(127.0.0.1:3306)/trashbox?parseTime=true")
	t.Setenv("TRASHBOX_WECHAT_APP_ID", "wx-appid")
	t.Setenv("TRASHBOX_WECHAT_APP_SECRET", "wx-secret")
	t.Setenv("TRASHBOX_SESSION_SECRET", "s3cret")
}

func TestLoad_EnvOnlyWithDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(t.TempDir()) // 空目录，没有 config.yaml，全靠环境变量
	require.NoError(t, err)

	assert.Equal(t, 2026, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "wx-appid", cfg.WeChat.AppID)
	assert.Equal(t, "https://api.weixin.qq.com", cfg.WeChat.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.WeChat.Timeout)
	assert.Equal(t, "jwt", cfg.Session.Mode)
	assert.Equal(t, 72*time.Hour, cfg.Session.TTL)
	assert.Equal(t, float64(50), cfg.RateLimit.RPS)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TRASHBOX_SERVER_PORT", "9000")
	t.Setenv("TRASHBOX_SESSION_MODE", "redis")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Session.Mode)
}

func TestLoad_MissingCredentialsFails(t *testing.T) {
	t.Setenv("TRASHBOX_DATABASE_DSN", "dsn")
	t.Setenv("TRASHBOX_SESSION_SECRET", "s")
	// 缺少 wechat.app_id / app_secret

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestValidate_RejectsBadEnums(t *testing.T) {
	setRequiredEnv(t)
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	cfg.Database.Driver = "oracle"
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = "mysql"
	cfg.Session.Mode = "cookie"
	assert.Error(t, cfg.Validate())
}

package wechat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lucasliu251/TrashBox-Server/internal/config"
)

func newTestClient(baseURL string) Client {
	return NewClient(config.WeChatConfig{
		AppID:     "wx-test-appid",
		AppSecret: "wx-test-secret",
		BaseURL:   baseURL,
		Timeout:   2 * time.Second,
	})
}

func TestCodeToSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sns/jscode2session", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "wx-test-appid", q.Get("appid"))
		assert.Equal(t, "wx-test-secret", q.Get("secret"))
		assert.Equal(t, "code-123", q.Get("js_code"))
		assert.Equal(t, "authorization_code", q.Get("grant_type"))
		w.Write([]byte(`{"openid":"oABC123","session_key":"sk"}`))
	}))
	defer srv.Close()

	openid, err := newTestClient(srv.URL).CodeToSession(context.Background(), "code-123")
	require.NoError(t, err)
	assert.Equal(t, "oABC123", openid)
}

func TestCodeToSession_ErrCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errcode":40029,"errmsg":"invalid code"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CodeToSession(context.Background(), "bad")
	var exchErr *ExchangeError
	require.ErrorAs(t, err, &exchErr)
	assert.Equal(t, 40029, exchErr.Code)
	assert.Equal(t, "invalid code", exchErr.Msg)
}

func TestCodeToSession_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CodeToSession(context.Background(), "c")
	assert.ErrorIs(t, err, ErrExchangeUnavailable)
}

func TestCodeToSession_EmptyOpenID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CodeToSession(context.Background(), "c")
	assert.ErrorIs(t, err, ErrExchangeUnavailable)
}

func TestCodeToSession_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 立刻关掉，模拟不可达

	_, err := newTestClient(srv.URL).CodeToSession(context.Background(), "c")
	assert.ErrorIs(t, err, ErrExchangeUnavailable)
	var exchErr *ExchangeError
	assert.False(t, errors.As(err, &exchErr))
}

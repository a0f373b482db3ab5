package wechat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Lucasliu251/TrashBox-Server/internal/config"
)

// ErrExchangeUnavailable 微信端不可达或返回体无法解析，对客户端表现为 500
var ErrExchangeUnavailable = errors.New("wechat code exchange unavailable")

// ExchangeError 微信明确拒绝（errcode != 0），属于调用方问题（code 过期/无效），对客户端表现为 400
type ExchangeError struct {
	Code int
	Msg  string
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("wechat exchange failed: errcode=%d errmsg=%s", e.Code, e.Msg)
}

// Client 用一次性登录 code 换取稳定 openid。无状态，单次尽力调用，不重试。
type Client interface {
	CodeToSession(ctx context.Context, loginCode string) (openid string, err error)
}

type client struct {
	appID     string
	appSecret string
	baseURL   string
	http      *http.Client
}

func NewClient(cfg config.WeChatConfig) Client {
	return &client{
		appID:     cfg.AppID,
		appSecret: cfg.AppSecret,
		baseURL:   cfg.BaseURL,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

type sessionResponse struct {
	OpenID     string `json:"openid"`
	SessionKey string `json:"session_key"`
	ErrCode    int    `json:"errcode"`
	ErrMsg     string `json:"errmsg"`
}

func (c *client) CodeToSession(ctx context.Context, loginCode string) (string, error) {
	q := url.Values{}
	q.Set("appid", c.appID)
	q.Set("secret", c.appSecret)
	q.Set("js_code", loginCode)
	q.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/sns/jscode2session?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExchangeUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExchangeUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrExchangeUnavailable, resp.StatusCode)
	}

	var body sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExchangeUnavailable, err)
	}
	if body.ErrCode != 0 {
		return "", &ExchangeError{Code: body.ErrCode, Msg: body.ErrMsg}
	}
	if body.OpenID == "" {
		return "", fmt.Errorf("%w: empty openid", ErrExchangeUnavailable)
	}
	return body.OpenID, nil
}

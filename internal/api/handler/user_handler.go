package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lucasliu251/TrashBox-Server/internal/api/middleware"
	"github.com/Lucasliu251/TrashBox-Server/internal/service"
	"github.com/Lucasliu251/TrashBox-Server/internal/wechat"
	"github.com/Lucasliu251/TrashBox-Server/pkg/response"
)

type onboardingRequest struct {
	LoginCode string `json:"loginCode" binding:"required"`
	SteamID   string `json:"steamId" binding:"required"`
	AuthCode  string `json:"authCode" binding:"required"`
	MatchCode string `json:"matchCode" binding:"required"`
}

type profileResponse struct {
	UUID      string    `json:"uuid"`
	SteamID   string    `json:"steam_id"`
	AuthCode  string    `json:"auth_code"`
	MatchCode string    `json:"match_code"`
	CreatedAt time.Time `json:"created_at"`
}

// Onboarding 微信登录 + 绑定
// @Summary 登录绑定（code 换 openid 并落库）
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body onboardingRequest true "绑定信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /users/onboarding [post]
func (h *Handler) Onboarding(c *gin.Context) {
	var req onboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.userService.Onboard(c.Request.Context(), service.OnboardParams{
		LoginCode: req.LoginCode,
		SteamID:   req.SteamID,
		AuthCode:  req.AuthCode,
		MatchCode: req.MatchCode,
	})
	if err != nil {
		var exchErr *wechat.ExchangeError
		if errors.As(err, &exchErr) {
			response.BadRequest(c, "WeChat Login Failed: "+exchErr.Msg)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.SuccessWithMessage(c, "Binding Success", gin.H{
		"uuid":  result.OpenID,
		"token": result.Token,
	})
}

// Me 查询当前用户资料
// @Summary 用户资料
// @Tags 用户
// @Produce json
// @Param openid query string false "openid（未带会话令牌时使用）"
// @Success 200 {object} response.Response{data=profileResponse}
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /users/me [get]
func (h *Handler) Me(c *gin.Context) {
	// 优先取会话令牌解析出的身份，查询参数仅作兼容旧客户端的回退
	openid := middleware.OpenIDFrom(c)
	if openid == "" {
		openid = c.Query("openid")
	}
	if openid == "" {
		response.BadRequest(c, "openid is required")
		return
	}

	user, err := h.userService.Profile(c.Request.Context(), openid)
	if errors.Is(err, service.ErrUserNotFound) {
		response.NotFound(c, "user not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.Success(c, profileResponse{
		UUID:      user.UUID,
		SteamID:   user.SteamID,
		AuthCode:  user.AuthCode,
		MatchCode: user.MatchCode,
		CreatedAt: user.CreatedAt,
	})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lucasliu251/TrashBox-Server/internal/service"
	"github.com/Lucasliu251/TrashBox-Server/pkg/response"
)

type createPostRequest struct {
	OpenID  string `json:"openid" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Tag     string `json:"tag"`
}

// CreatePost 发布帖子
// @Summary 发布帖子
// @Tags 帖子
// @Accept json
// @Produce json
// @Param request body createPostRequest true "帖子内容"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /posts/ [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	postID, err := h.postService.Create(c.Request.Context(), service.CreatePostParams{
		OpenID:  req.OpenID,
		Title:   req.Title,
		Content: req.Content,
		Tag:     req.Tag,
	})
	if err != nil {
		response.InternalError(c, err)
		return
	}

	// 历史契约：post_id 在包体顶层而不在 data 里
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "发布成功",
		"post_id": postID,
	})
}

// ListPosts 首页帖子列表
// @Summary 帖子列表（含作者昵称头像）
// @Tags 帖子
// @Produce json
// @Param limit query int false "条数" default(20)
// @Success 200 {object} response.Response{data=[]service.PostItem}
// @Failure 500 {object} response.Response
// @Router /posts/ [get]
func (h *Handler) ListPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	items, err := h.postService.List(c.Request.Context(), limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, items)
}

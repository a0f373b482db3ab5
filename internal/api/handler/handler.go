package handler

import (
	"github.com/Lucasliu251/TrashBox-Server/internal/service"
)

// Handler 聚合各业务 service，供路由注册
type Handler struct {
	userService service.UserService
	postService service.PostService
}

func New(userService service.UserService, postService service.PostService) *Handler {
	return &Handler{userService: userService, postService: postService}
}

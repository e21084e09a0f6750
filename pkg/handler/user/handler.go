/*
 * @Description: 用户页面
 * @Author: blogly-dev
 * @Date: 2026-10-13 16:05:12
 * @LastEditTime: 2026-10-15 17:02:38
 * @LastEditors: blogly-dev
 */
package user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogly-dev/blogly/pkg/constant"
	"github.com/blogly-dev/blogly/pkg/domain/model"
	"github.com/blogly-dev/blogly/pkg/handler/param"
	"github.com/blogly-dev/blogly/pkg/response"
	user_service "github.com/blogly-dev/blogly/pkg/service/user"
)

// Handler 封装了所有与用户相关的页面处理器。
type Handler struct {
	svc *user_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *user_service.Service) *Handler {
	return &Handler{svc: svc}
}

// Home 首页直接跳转到用户列表
func (h *Handler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/users")
}

// List GET /users
func (h *Handler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "users_list.html", gin.H{
		"Title": "Users",
		"Users": users,
	})
}

func (h *Handler) renderNew(c *gin.Context, code int, form *model.CreateUserRequest, formErr error) {
	data := gin.H{
		"Title": "Create a user",
		"Form":  form,
	}
	if formErr != nil {
		data["Error"] = formErr.Error()
	}
	response.HTML(c, code, "users_new.html", data)
}

// NewForm GET /users/new
func (h *Handler) NewForm(c *gin.Context) {
	h.renderNew(c, http.StatusOK, &model.CreateUserRequest{}, nil)
}

// Create POST /users/new
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderNew(c, http.StatusBadRequest, &req, fmt.Errorf("%w: %v", constant.ErrBadRequest, err))
		return
	}

	if _, err := h.svc.Create(c.Request.Context(), &req); err != nil {
		if errors.Is(err, constant.ErrValidation) {
			h.renderNew(c, http.StatusBadRequest, &req, err)
			return
		}
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

// Show GET /users/:id
func (h *Handler) Show(c *gin.Context) {
	id, ok := param.ID(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc.GetWithPosts(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "users_detail.html", gin.H{
		"Title":  detail.User.FullName(),
		"Detail": detail,
	})
}

// EditForm GET /users/:id/edit
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := param.ID(c, "id")
	if !ok {
		return
	}
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "users_edit.html", gin.H{
		"Title": "Edit a user",
		"User":  u,
	})
}

// Update POST /users/:id/edit，表单整体覆盖用户
func (h *Handler) Update(c *gin.Context) {
	id, ok := param.ID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

// Delete POST /users/:id/delete
func (h *Handler) Delete(c *gin.Context) {
	id, ok := param.ID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

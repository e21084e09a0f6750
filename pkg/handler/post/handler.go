/*
 * @Description: 文章页面
 * @Author: blogly-dev
 * @Date: 2026-10-13 16:31:50
 * @LastEditTime: 2026-10-15 17:10:04
 * @LastEditors: blogly-dev
 */
package post

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogly-dev/blogly/pkg/constant"
	"github.com/blogly-dev/blogly/pkg/domain/model"
	"github.com/blogly-dev/blogly/pkg/handler/param"
	"github.com/blogly-dev/blogly/pkg/response"
	post_service "github.com/blogly-dev/blogly/pkg/service/post"
	tag_service "github.com/blogly-dev/blogly/pkg/service/tag"
	user_service "github.com/blogly-dev/blogly/pkg/service/user"
)

// Handler 封装了所有与文章相关的页面处理器。
type Handler struct {
	postSvc *post_service.Service
	userSvc *user_service.Service
	tagSvc  *tag_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(postSvc *post_service.Service, userSvc *user_service.Service, tagSvc *tag_service.Service) *Handler {
	return &Handler{
		postSvc: postSvc,
		userSvc: userSvc,
		tagSvc:  tagSvc,
	}
}

func (h *Handler) renderNew(c *gin.Context, code int, userID uint, form *model.CreatePostRequest, formErr error) {
	ctx := c.Request.Context()
	author, err := h.userSvc.Get(ctx, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	tags, err := h.tagSvc.List(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	data := gin.H{
		"Title":   "Add post for " + author.FullName(),
		"Author":  author,
		"Tags":    tags,
		"Form":    form,
		"Checked": param.Checked(form.TagIDs),
	}
	if formErr != nil {
		data["Error"] = formErr.Error()
	}
	response.HTML(c, code, "posts_new.html", data)
}

// NewForm GET /users/:id/posts/new
func (h *Handler) NewForm(c *gin.Context) {
	userID, ok := param.ID(c, "id")
	if !ok {
		return
	}
	h.renderNew(c, http.StatusOK, userID, &model.CreatePostRequest{}, nil)
}

// Create POST /users/:id/posts/new
func (h *Handler) Create(c *gin.Context) {
	userID, ok := param.ID(c, "id")
	if !ok {
		return
	}
	var req model.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderNew(c, http.StatusBadRequest, userID, &req, fmt.Errorf("%w: %v", constant.ErrBadRequest, err))
		return
	}

	if _, err := h.postSvc.Create(c.Request.Context(), userID, &req); err != nil {
		if errors.Is(err, constant.ErrValidation) {
			h.renderNew(c, http.StatusBadRequest, userID, &req, err)
			return
		}
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", userID))
}

// Show GET /posts/:id
func (h *Handler) Show(c *gin.Context) {
	id, ok := param.ID(c, "id")
	if !ok {
		return
	}
	detail, err := h.postSvc.GetDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "posts_detail.html", gin.H{
		"Title":  detail.Post.Title,
		"Detail": detail,
	})
}

// EditForm GET /posts/:id/edit
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := param.ID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	detail, err := h.postSvc.GetDetail(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	tags, err := h.tagSvc.List(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "posts_edit.html", gin.H{
		"Title":  "Edit post",
		"Detail": detail,
		"Tags":   tags,
	})
}

// Update POST /posts/:id/edit，覆盖标题、正文并替换标签集合
func (h *Handler) Update(c *gin.Context) {
	id, ok := param.ID(c, "id")
	if !ok {
		return
	}
	var req model.UpdatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	if _, err := h.postSvc.Update(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", id))
}

// Delete POST /posts/:id/delete，删除后回到作者页面
func (h *Handler) Delete(c *gin.Context) {
	id, ok := param.ID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.postSvc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", deleted.UserID))
}

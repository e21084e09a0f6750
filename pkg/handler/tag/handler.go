/*
 * @Description: 标签页面
 * @Author: blogly-dev
 * @Date: 2026-10-13 17:02:19
 * @LastEditTime: 2026-10-15 17:16:45
 * @LastEditors: blogly-dev
 */
package tag

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
)

// Handler 封装了所有与标签相关的页面处理器。
type Handler struct {
	tagSvc  *tag_service.Service
	postSvc *post_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(tagSvc *tag_service.Service, postSvc *post_service.Service) *Handler {
	return &Handler{tagSvc: tagSvc, postSvc: postSvc}
}

// List GET /tags
func (h *Handler) List(c *gin.Context) {
	tags, err := h.tagSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "tags_list.html", gin.H{
		"Title": "Tags",
		"Tags":  tags,
	})
}

func (h *Handler) renderNew(c *gin.Context, code int, form *model.CreateTagRequest, formErr error) {
	posts, err := h.postSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	data := gin.H{
		"Title":   "Create a tag",
		"Posts":   posts,
		"Form":    form,
		"Checked": param.Checked(form.PostIDs),
	}
	if formErr != nil {
		data["Error"] = formErr.Error()
	}
	response.HTML(c, code, "tags_new.html", data)
}

// NewForm GET /tags/new
func (h *Handler) NewForm(c *gin.Context) {
	h.renderNew(c, http.StatusOK, &model.CreateTagRequest{}, nil)
}

// Create POST /tags/new
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateTagRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderNew(c, http.StatusBadRequest, &req, fmt.Errorf("%w: %v", constant.ErrBadRequest, err))
		return
	}
	if _, err := h.tagSvc.Create(c.Request.Context(), &req); err != nil {
		if errors.Is(err, constant.ErrValidation) {
			h.renderNew(c, http.StatusBadRequest, &req, err)
			return
		}
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/tags")
}

// Show GET /tags/:id
func (h *Handler) Show(c *gin.Context) {
	id, ok := param.ID(c, "id")
	if !ok {
		return
	}
	detail, err := h.tagSvc.GetDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "tags_detail.html", gin.H{
		"Title":  detail.Tag.Name,
		"Detail": detail,
	})
}

// EditForm GET /tags/:id/edit
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := param.ID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	detail, err := h.tagSvc.GetDetail(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	posts, err := h.postSvc.List(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "tags_edit.html", gin.H{
		"Title":  "Edit tag",
		"Detail": detail,
		"Posts":  posts,
	})
}

// Update POST /tags/:id/edit，覆盖名称并替换文章集合
func (h *Handler) Update(c *gin.Context) {
	id, ok := param.ID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateTagRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	if _, err := h.tagSvc.Update(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/tags")
}

// Delete POST /tags/:id/delete
func (h *Handler) Delete(c *gin.Context) {
	id, ok := param.ID(c, "id")
	if !ok {
		return
	}
	if err := h.tagSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/tags")
}

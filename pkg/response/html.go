/*
 * @Description: 页面响应与错误映射
 * @Author: blogly-dev
 * @Date: 2026-10-13 14:10:07
 * @LastEditTime: 2026-10-15 16:41:12
 * @LastEditors: blogly-dev
 */
package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogly-dev/blogly/pkg/constant"
)

// 错误页模板名
const (
	TemplateNotFound = "404.html"
	TemplateError    = "error.html"
)

// HTML 渲染一个页面模板
func HTML(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	c.HTML(code, name, data)
}

// NotFound 渲染 404 页面
func NotFound(c *gin.Context, message string) {
	HTML(c, http.StatusNotFound, TemplateNotFound, gin.H{
		"Title":   "Not Found",
		"Message": message,
	})
}

// ErrorPage 渲染通用错误页面
func ErrorPage(c *gin.Context, code int, message string) {
	HTML(c, code, TemplateError, gin.H{
		"Title":   http.StatusText(code),
		"Code":    code,
		"Message": message,
	})
}

// StatusOf 返回 err 对应的 HTTP 状态码
func StatusOf(err error) int {
	switch {
	case errors.Is(err, constant.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, constant.ErrValidation), errors.Is(err, constant.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error 把业务错误翻译成对应的错误页面。未知错误一律按 500 处理并记录日志。
func Error(c *gin.Context, err error) {
	code := StatusOf(err)
	switch code {
	case http.StatusNotFound:
		NotFound(c, err.Error())
	case http.StatusBadRequest:
		ErrorPage(c, code, err.Error())
	default:
		log.Printf("❌ 请求 %s %s 处理失败: %v", c.Request.Method, c.Request.URL.Path, err)
		ErrorPage(c, code, constant.ErrInternalServer.Error())
	}
}

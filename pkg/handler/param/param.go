// Package param 解析路由中的路径参数
package param

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blogly-dev/blogly/pkg/response"
)

// ID 把路径参数 name 解析成正整数ID。
// 解析失败时直接渲染 404 页面并返回 false，调用方只需 return。
func ID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c, fmt.Sprintf("无效的ID: %q", raw))
		return 0, false
	}
	return uint(id), true
}

// Checked 把ID列表转成集合，模板用它勾选复选框
func Checked(ids []uint) map[uint]bool {
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

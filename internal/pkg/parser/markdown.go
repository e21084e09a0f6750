/*
 * @Description: 文章正文的 Markdown 渲染
 * @Author: blogly-dev
 * @Date: 2026-10-13 15:20:44
 * @LastEditTime: 2026-10-14 18:02:16
 * @LastEditors: blogly-dev
 */
package parser

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdRenderer goldmark.Markdown
	ugcPolicy  *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // 表格、删除线、任务列表、自动链接
			extension.Typographer,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // 表单里输入的换行原样保留
			html.WithUnsafe(),    // 原始 HTML 交给 bluemonday 清理
		),
	)

	ugcPolicy = bluemonday.UGCPolicy()
	ugcPolicy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code")
}

// MarkdownToHTML 把文章正文渲染成可以直接嵌入页面的安全 HTML
func MarkdownToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return ugcPolicy.Sanitize(buf.String()), nil
}

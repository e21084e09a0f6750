/*
 * @Description: 纯文本摘要
 * @Author: blogly-dev
 * @Date: 2026-10-13 15:31:09
 * @LastEditTime: 2026-10-14 18:05:50
 * @LastEditors: blogly-dev
 */
package parser

import (
	"html"

	"github.com/microcosm-cc/bluemonday"

	"github.com/blogly-dev/blogly/internal/pkg/strutil"
)

var stripTagsPolicy = bluemonday.StripTagsPolicy()

// StripHTML 去掉所有标签，只留下文本
func StripHTML(htmlContent string) string {
	return stripTagsPolicy.Sanitize(htmlContent)
}

// Excerpt 先渲染 Markdown 再去掉标签，截取前 maxRunes 个字符作为列表页摘要
func Excerpt(content string, maxRunes int) string {
	rendered, err := MarkdownToHTML(content)
	if err != nil {
		rendered = content
	}
	// bluemonday 会转义实体，这里还原成普通文本，交给模板重新转义
	return strutil.Truncate(html.UnescapeString(StripHTML(rendered)), maxRunes)
}

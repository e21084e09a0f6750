// Package web 打包页面模板
package web

import "embed"

// Templates 包含 templates/ 下的全部页面模板
//
//go:embed templates/*.html
var Templates embed.FS

// TemplatePattern 是 ParseFS 使用的匹配模式
const TemplatePattern = "templates/*.html"

package router

import (
	"html/template"
	"io/fs"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/blogly-dev/blogly/internal/pkg/parser"
)

// excerptLength 列表里展示的正文摘要长度
const excerptLength = 80

// FuncMap 是页面模板可用的函数
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"markdown": func(content string) template.HTML {
			rendered, err := parser.MarkdownToHTML(content)
			if err != nil {
				log.Printf("⚠️ 渲染 Markdown 失败: %v", err)
				return template.HTML(template.HTMLEscapeString(content))
			}
			return template.HTML(rendered)
		},
		"excerpt": func(content string, maxRunes ...int) string {
			n := excerptLength
			if len(maxRunes) > 0 {
				n = maxRunes[0]
			}
			return parser.Excerpt(content, n)
		},
	}
}

// LoadTemplates 从 fsys 中解析匹配 pattern 的模板并交给 engine 渲染
func LoadTemplates(engine *gin.Engine, fsys fs.FS, pattern string) error {
	tmpl, err := template.New("").Funcs(FuncMap()).ParseFS(fsys, pattern)
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)
	return nil
}

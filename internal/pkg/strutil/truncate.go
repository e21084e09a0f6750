/*
 * @Description:
 * @Author: blogly-dev
 * @Date: 2026-10-13 15:34:27
 * @LastEditTime: 2026-10-13 15:34:27
 * @LastEditors: blogly-dev
 */
package strutil

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis 是截断后追加的后缀
const Ellipsis = "..."

// Truncate 把连续空白折叠成一个空格，再按字符数（不是字节数）截断。
func Truncate(s string, maxLength int) string {
	s = strings.Join(strings.Fields(s), " ")
	if maxLength <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:maxLength]), " ") + Ellipsis
}

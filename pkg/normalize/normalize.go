// Package normalize 提供分词前的文本清洗：去除标签与标点空白。
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// tagPattern 是朴素的标签匹配，不是 HTML 解析器。
// 末尾未闭合的 "<xxx" 片段一直删到字符串结尾。
var tagPattern = regexp.MustCompile(`<.*?(?:>|$)`)

// CharSet 是一组需要删除的字符。
type CharSet struct {
	runes map[rune]struct{}
	space bool
}

// NewCharSet 由字符列表创建字符集，withSpace 为 true 时同时删除所有空白字符。
func NewCharSet(chars string, withSpace bool) CharSet {
	set := CharSet{runes: make(map[rune]struct{}), space: withSpace}
	for _, r := range chars {
		set.runes[r] = struct{}{}
	}
	return set
}

// Contains 判断字符是否属于该字符集
func (s CharSet) Contains(r rune) bool {
	if s.space && unicode.IsSpace(r) {
		return true
	}
	_, ok := s.runes[r]
	return ok
}

// DefaultPunctuation 默认删除的字符：空白、ASCII 标点、全角中文标点以及括号。
var DefaultPunctuation = NewCharSet(
	`+.!/_,|$%^*()"'[`+"——！，。？、~@#￥%……&*（）",
	true,
)

// StripTags 删除所有 "<...>" 形式的片段，不解码实体。
func StripTags(text string) string {
	return tagPattern.ReplaceAllString(text, "")
}

// StripPunctuation 按默认字符集删除标点和空白。
func StripPunctuation(text string) string {
	return StripChars(text, DefaultPunctuation)
}

// StripChars 删除 text 中属于 set 的每个字符。
// 这是逐字符删除，被删字符两侧的内容会直接拼接在一起。
func StripChars(text string, set CharSet) string {
	return strings.Map(func(r rune) rune {
		if set.Contains(r) {
			return -1
		}
		return r
	}, text)
}

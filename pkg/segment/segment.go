// Package segment 定义分词器接口，并提供 jieba、二元组和空白三种实现。
package segment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSegmenter 表示配置中的分词器名称不受支持。
var ErrUnknownSegmenter = errors.New("unknown segmenter")

// Segmenter 把一段文本切分为有序的非空词序列。
type Segmenter interface {
	Segment(text string) []string
}

// Func 让普通函数满足 Segmenter 接口。
type Func func(text string) []string

// Segment 调用 f 本身
func (f Func) Segment(text string) []string {
	return f(text)
}

// 支持的分词器名称
const (
	NameJieba      = "jieba"
	NameBigram     = "bigram"
	NameWhitespace = "whitespace"
)

// New 按名称创建分词器。dictDir 仅对 jieba 生效，为空时使用内置词典。
// 返回的 release 函数需在退出前调用以释放词典资源。
func New(name, dictDir string) (Segmenter, func(), error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameJieba:
		j := NewJieba(dictDir)
		return j, j.Close, nil
	case NameBigram:
		return Func(Bigram), func() {}, nil
	case NameWhitespace:
		return Func(Whitespace), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSegmenter, name)
	}
}

// Whitespace 按空白切分，适用于已有分隔符的文本。
func Whitespace(text string) []string {
	return strings.Fields(text)
}

// dropBlank 过滤空串和纯空白词，保证词永不为空。
func dropBlank(words []string) []string {
	out := words[:0]
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

package textsrc

import (
	"strings"
)

// DefaultPreviewWidth 预览每行的最大字符数
const DefaultPreviewWidth = 80

// Preview 生成原始文本预览：按空行分段，每段按 width 个字符折行。
// 超过宽度的单个词会被强制断开；段落之间只保留一个换行。
func Preview(text string, width int) string {
	if width <= 0 {
		width = DefaultPreviewWidth
	}

	paragraphs := strings.Split(text, "\n\n")
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		out = append(out, strings.Join(wrap(p, width), "\n"))
	}
	return strings.Join(out, "\n")
}

// wrap 贪心折行，按 rune 计宽。
func wrap(p string, width int) []string {
	var lines []string
	var cur []rune

	for _, word := range strings.Fields(p) {
		w := []rune(word)
		for len(w) > 0 {
			room := width - len(cur)
			if len(cur) > 0 {
				room--
			}
			if len(w) <= room {
				if len(cur) > 0 {
					cur = append(cur, ' ')
				}
				cur = append(cur, w...)
				w = nil
				continue
			}
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = cur[:0]
				continue
			}
			cur = append(cur, w[:width]...)
			w = w[width:]
			lines = append(lines, string(cur))
			cur = cur[:0]
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}

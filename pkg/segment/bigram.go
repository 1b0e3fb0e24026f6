package segment

import (
	"strings"
	"unicode"
)

// Bigram 不依赖词典的分词：连续汉字按二元组切分，其余字母数字串原样保留。
// 单个孤立汉字作为一个词输出。
func Bigram(text string) []string {
	var words []string
	var han []rune
	var other strings.Builder

	flushOther := func() {
		if other.Len() > 0 {
			words = append(words, other.String())
			other.Reset()
		}
	}
	flushHan := func() {
		words = append(words, hanBigrams(han)...)
		han = han[:0]
	}

	for _, r := range text {
		switch {
		case unicode.Is(unicode.Han, r):
			flushOther()
			han = append(han, r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			flushHan()
			other.WriteRune(r)
		default:
			flushHan()
			flushOther()
		}
	}
	flushHan()
	flushOther()

	return words
}

// hanBigrams 从汉字序列中提取二元组
func hanBigrams(runes []rune) []string {
	switch len(runes) {
	case 0:
		return nil
	case 1:
		return []string{string(runes)}
	}
	bigrams := make([]string, 0, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		bigrams = append(bigrams, string(runes[i:i+2]))
	}
	return bigrams
}

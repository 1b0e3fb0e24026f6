// Package wordfreq 统计词频并按频次选出高频词。
package wordfreq

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidCount 表示请求的高频词数量不是正数。
var ErrInvalidCount = errors.New("invalid top-n count")

// ErrInvalidWord 表示词频项的词为空或频次不是正数。
var ErrInvalidWord = errors.New("invalid ranked word")

// RankedWord 词频项
type RankedWord struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// TopWords 按频次降序排列的高频词，同频次保持首次出现的顺序。
type TopWords []RankedWord

// Texts 返回词序列
func (w TopWords) Texts() []string {
	out := make([]string, len(w))
	for i, item := range w {
		out[i] = item.Text
	}
	return out
}

// Counts 返回频次序列
func (w TopWords) Counts() []int {
	out := make([]int, len(w))
	for i, item := range w {
		out[i] = item.Count
	}
	return out
}

// Validate 检查每一项的词非空（不能只有空白）且频次至少为 1。
func (w TopWords) Validate() error {
	for i, item := range w {
		if strings.TrimSpace(item.Text) == "" {
			return fmt.Errorf("%w: 第 %d 项的词为空", ErrInvalidWord, i+1)
		}
		if item.Count < 1 {
			return fmt.Errorf("%w: %q 的频次 %d 小于 1", ErrInvalidWord, item.Text, item.Count)
		}
	}
	return nil
}

// Counts 词频表，保留每个词首次出现的顺序。
type Counts struct {
	index map[string]int
	items []RankedWord
	total int
}

// Count 扫描一次词序列，累加每个词的出现次数。
func Count(tokens []string) *Counts {
	c := &Counts{index: make(map[string]int)}
	for _, t := range tokens {
		c.Add(t)
	}
	return c
}

// Add 计入一次出现
func (c *Counts) Add(token string) {
	c.total++
	if i, ok := c.index[token]; ok {
		c.items[i].Count++
		return
	}
	c.index[token] = len(c.items)
	c.items = append(c.items, RankedWord{Text: token, Count: 1})
}

// Total 返回扫描过的词总数
func (c *Counts) Total() int { return c.total }

// Distinct 返回不同词的数量
func (c *Counts) Distinct() int { return len(c.items) }

// Get 返回某个词的出现次数
func (c *Counts) Get(token string) int {
	if i, ok := c.index[token]; ok {
		return c.items[i].Count
	}
	return 0
}

// Top 返回前 n 个高频词；不同词少于 n 个时全部返回。
func (c *Counts) Top(n int) (TopWords, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	items := make(TopWords, len(c.items))
	copy(items, c.items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})

	if len(items) > n {
		items = items[:n]
	}
	return items, nil
}

// Rank 统计 tokens 并返回前 n 个高频词。
func Rank(tokens []string, n int) (TopWords, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	return Count(tokens).Top(n)
}

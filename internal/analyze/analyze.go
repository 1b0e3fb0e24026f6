// Package analyze 串联一次完整的词频统计：获取文本、清洗、分词、排序。
package analyze

import (
	"context"
	"fmt"
	"time"

	"github.com/afumu/wordstat/pkg/normalize"
	"github.com/afumu/wordstat/pkg/segment"
	"github.com/afumu/wordstat/pkg/textsrc"
	"github.com/afumu/wordstat/pkg/wordfreq"
	"github.com/rs/zerolog/log"
)

// Source 文本来源
type Source string

const (
	SourceUpload Source = "upload"
	SourceURL    Source = "url"
	SourceText   Source = "text"
)

// Result 一次统计的结果
type Result struct {
	Source         Source            `json:"source"`
	Preview        string            `json:"preview,omitempty"`
	TotalTokens    int               `json:"total_tokens"`
	DistinctTokens int               `json:"distinct_tokens"`
	TopWords       wordfreq.TopWords `json:"top_words"`
}

// URLFetcher 抓取网页可见文本
type URLFetcher interface {
	FromURL(ctx context.Context, url string) (string, error)
}

// Analyzer 无状态的统计流水线，每次调用都从原始输入重新计算。
type Analyzer struct {
	Segmenter    segment.Segmenter
	Fetcher      URLFetcher
	PreviewWidth int
}

// New 创建流水线
func New(seg segment.Segmenter, fetcher URLFetcher) *Analyzer {
	return &Analyzer{
		Segmenter:    seg,
		Fetcher:      fetcher,
		PreviewWidth: textsrc.DefaultPreviewWidth,
	}
}

// Upload 统计上传的文本。上传内容视为纯文本，只删除标点和空白。
func (a *Analyzer) Upload(data []byte, n int) (*Result, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}

	text, err := textsrc.FromUpload(data)
	if err != nil {
		return nil, err
	}

	res, err := a.run(SourceUpload, normalize.StripPunctuation(text), n)
	if err != nil {
		return nil, err
	}
	res.Preview = textsrc.Preview(text, a.PreviewWidth)
	return res, nil
}

// URL 抓取网页并统计。抓取阶段已完成标签删除。
func (a *Analyzer) URL(ctx context.Context, url string, n int) (*Result, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}

	text, err := a.Fetcher.FromURL(ctx, url)
	if err != nil {
		return nil, err
	}

	return a.run(SourceURL, normalize.StripPunctuation(text), n)
}

// Text 统计直接提交的文本，先删除标签再删除标点。
func (a *Analyzer) Text(text string, n int) (*Result, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}
	return a.run(SourceText, normalize.StripPunctuation(normalize.StripTags(text)), n)
}

func (a *Analyzer) run(src Source, cleaned string, n int) (*Result, error) {
	start := time.Now()

	tokens := a.Segmenter.Segment(cleaned)
	counts := wordfreq.Count(tokens)
	top, err := counts.Top(n)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("source", string(src)).
		Int("tokens", counts.Total()).
		Int("distinct", counts.Distinct()).
		Int("n", n).
		Dur("elapsed", time.Since(start)).
		Msg("词频统计完成")

	return &Result{
		Source:         src,
		TotalTokens:    counts.Total(),
		DistinctTokens: counts.Distinct(),
		TopWords:       top,
	}, nil
}

func checkCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", wordfreq.ErrInvalidCount, n)
	}
	return nil
}

package transport

import (
	"github.com/afumu/wordstat/pkg/wordfreq"
)

// AnalyzeURLRequest 抓取网页并统计
type AnalyzeURLRequest struct {
	URL  string `json:"url" binding:"required"`
	Kind string `json:"kind"`
	N    *int   `json:"n"`
}

// AnalyzeTextRequest 直接提交文本统计
type AnalyzeTextRequest struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
	N    *int   `json:"n"`
}

// RenderRequest 把已有的高频词渲染为图表
type RenderRequest struct {
	Kind     string            `json:"kind"`
	TopWords wordfreq.TopWords `json:"top_words"`
}

// ExportRequest 导出高频词
type ExportRequest struct {
	TopWords wordfreq.TopWords `json:"top_words"`
}

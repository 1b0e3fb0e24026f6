package api

import (
	"github.com/afumu/wordstat/internal/analyze"
	"github.com/afumu/wordstat/pkg/chart"
	"github.com/afumu/wordstat/internal/render"
	"github.com/afumu/wordstat/web/export"
)

// API 封装了 API 处理器所需的所有依赖。
type API struct {
	Analyzer *analyze.Analyzer
	Renderer *render.Renderer
	Export   *export.Service
	Conf     *Config
}

// Config 请求参数相关的配置
type Config struct {
	DefaultTopN int
	MaxTopN     int
	MaxUploadMB int64
	Chart       chart.Options
}

// NewAPI 创建一个新的 API 处理器。
func NewAPI(a *analyze.Analyzer, r *render.Renderer, e *export.Service, conf *Config) *API {
	if conf.DefaultTopN <= 0 {
		conf.DefaultTopN = 20
	}
	if conf.MaxTopN <= 0 {
		conf.MaxTopN = 100
	}
	if conf.DefaultTopN > conf.MaxTopN {
		conf.DefaultTopN = conf.MaxTopN
	}
	return &API{
		Analyzer: a,
		Renderer: r,
		Export:   e,
		Conf:     conf,
	}
}

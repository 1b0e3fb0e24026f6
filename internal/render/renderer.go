// Package render 把图表配置渲染为可嵌入页面的独立 HTML 文档或 PNG 快照。
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/afumu/wordstat/pkg/chart"
)

// ErrUnsupported 表示该图表类型不支持当前渲染方式。
var ErrUnsupported = errors.New("chart kind not supported by renderer")

// DefaultAssetsHost ECharts 脚本的 CDN 地址
const DefaultAssetsHost = "https://cdn.jsdelivr.net/npm"

// Options 渲染尺寸与资源地址
type Options struct {
	Width      string
	Height     string
	AssetsHost string
}

// DefaultOptions 返回 900x500 的默认尺寸
func DefaultOptions() Options {
	return Options{Width: "900px", Height: "500px", AssetsHost: DefaultAssetsHost}
}

// Renderer 图表 HTML 渲染器
type Renderer struct {
	tmpl *template.Template
	opts Options
}

// NewRenderer 创建渲染器，opts 中的空字段使用默认值。
func NewRenderer(opts Options) (*Renderer, error) {
	def := DefaultOptions()
	if opts.Width == "" {
		opts.Width = def.Width
	}
	if opts.Height == "" {
		opts.Height = def.Height
	}
	if opts.AssetsHost == "" {
		opts.AssetsHost = def.AssetsHost
	}
	opts.AssetsHost = strings.TrimRight(opts.AssetsHost, "/")

	tmpl, err := template.New("chart").Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("解析图表模板失败: %w", err)
	}
	return &Renderer{tmpl: tmpl, opts: opts}, nil
}

// Options 返回渲染器当前使用的选项
func (r *Renderer) Options() Options {
	return r.opts
}

// RenderHTML 生成完整的 HTML 文档
func (r *Renderer) RenderHTML(kind chart.Kind, spec *chart.Spec) ([]byte, error) {
	if spec == nil {
		return nil, chart.ErrEmptyInput
	}

	data := struct {
		Title      string
		AssetsHost template.URL
		WordCloud  bool
		Width      string
		Height     string
		Option     *chart.Spec
	}{
		Title:      spec.Title.Text,
		AssetsHost: template.URL(r.opts.AssetsHost),
		WordCloud:  kind == chart.WordCloud,
		Width:      r.opts.Width,
		Height:     r.opts.Height,
		Option:     spec,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("渲染图表失败: %w", err)
	}
	return buf.Bytes(), nil
}

// pixels 把 "900px" 或 "900" 解析为整数像素，无法解析时返回 fallback。
func pixels(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

package chart

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/afumu/wordstat/pkg/wordfreq"
)

// ErrEmptyInput 表示没有任何词可供绘图。
var ErrEmptyInput = errors.New("no words to chart")

// SeriesName 是单序列图表的系列名称
const SeriesName = "Frequency"

// Adapter 把高频词映射为某一类图表的配置。
type Adapter interface {
	Adapt(words wordfreq.TopWords) (*Spec, error)
}

// AdapterFunc 把构建函数包装为 Adapter，统一处理空输入。
type AdapterFunc func(words wordfreq.TopWords) *Spec

// Adapt 实现 Adapter
func (f AdapterFunc) Adapt(words wordfreq.TopWords) (*Spec, error) {
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}
	return f(words), nil
}

var adapters = map[Kind]Adapter{
	WordCloud: AdapterFunc(wordCloud),
	Bar:       AdapterFunc(categorical("bar", "Word Frequency Bar Plot")),
	Pie:       PieAdapter{Radius: DefaultPieRadius},
	Line:      AdapterFunc(categorical("line", "Word Frequency Line Chart")),
	Scatter:   AdapterFunc(categorical("scatter", "Word Frequency Scatter Chart")),
	Funnel:    AdapterFunc(funnel),
	Polar:     AdapterFunc(polar),
	Radar:     AdapterFunc(radar),
}

// AdapterFor 返回某个图表类型对应的适配器
func AdapterFor(kind Kind) (Adapter, error) {
	a, ok := adapters[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return a, nil
}

// Adapt 按图表类型查表构建配置
func Adapt(kind Kind, words wordfreq.TopWords) (*Spec, error) {
	return Options{}.Adapt(kind, words)
}

// Options 可配置的图表样式，零值使用默认样式。
type Options struct {
	// PieRadius 饼图的内外半径，如 {"30%", "75%"}
	PieRadius [2]string
}

// Adapt 按图表类型构建配置，并应用样式选项
func (o Options) Adapt(kind Kind, words wordfreq.TopWords) (*Spec, error) {
	if kind == Pie && o.PieRadius[0] != "" && o.PieRadius[1] != "" {
		return PieAdapter{Radius: o.PieRadius}.Adapt(words)
	}
	a, err := AdapterFor(kind)
	if err != nil {
		return nil, err
	}
	return a.Adapt(words)
}

// ParsePieRadius 解析 "内半径,外半径" 形式的配置
func ParsePieRadius(s string) ([2]string, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]string{}, fmt.Errorf("pie radius %q: expected inner,outer", s)
	}
	r := [2]string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}
	if r[0] == "" || r[1] == "" {
		return [2]string{}, fmt.Errorf("pie radius %q: expected inner,outer", s)
	}
	return r, nil
}

func items(words wordfreq.TopWords) []DataItem {
	out := make([]DataItem, len(words))
	for i, w := range words {
		out[i] = DataItem{Name: w.Text, Value: w.Count}
	}
	return out
}

func wordCloud(words wordfreq.TopWords) *Spec {
	return &Spec{
		Title:   Title{Text: "Word Cloud"},
		Tooltip: Tooltip{Show: true},
		Series: []Series{{
			Type:      "wordCloud",
			Shape:     "circle",
			SizeRange: []int{12, 60},
			Data:      items(words),
		}},
	}
}

// categorical 构建 x 轴为词、y 轴为频次的单序列图表（条形图、折线图、散点图）。
func categorical(seriesType, title string) func(wordfreq.TopWords) *Spec {
	return func(words wordfreq.TopWords) *Spec {
		return &Spec{
			Title:   Title{Text: title},
			Tooltip: Tooltip{Show: true, Trigger: "axis"},
			Legend:  &Legend{Show: true},
			XAxis:   &Axis{Type: "category", Data: words.Texts()},
			YAxis:   &Axis{Type: "value"},
			Series: []Series{{
				Name: SeriesName,
				Type: seriesType,
				Data: words.Counts(),
			}},
		}
	}
}

// DefaultPieRadius 饼图默认的内外半径
var DefaultPieRadius = [2]string{"30%", "75%"}

// PieAdapter 玫瑰饼图，数据先按频次稳定降序重排。
type PieAdapter struct {
	Radius [2]string
}

// Adapt 实现 Adapter
func (p PieAdapter) Adapt(words wordfreq.TopWords) (*Spec, error) {
	return AdapterFunc(func(words wordfreq.TopWords) *Spec {
		return pie(words, p.Radius)
	}).Adapt(words)
}

func pie(words wordfreq.TopWords, radius [2]string) *Spec {
	sorted := make(wordfreq.TopWords, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	return &Spec{
		Title:   Title{Text: fmt.Sprintf("Word Frequency Pie Chart: Top %d Words", len(sorted)), Left: "center"},
		Tooltip: Tooltip{Show: true, Trigger: "item"},
		Legend:  &Legend{Show: false},
		Toolbox: &Toolbox{
			Show:   true,
			Orient: "vertical",
			Feature: map[string]struct{}{
				"saveAsImage": {},
				"restore":     {},
				"dataView":    {},
			},
		},
		Series: []Series{{
			Type:      "pie",
			Radius:    []string{radius[0], radius[1]},
			RoseType:  "area",
			ItemStyle: &ItemStyle{Opacity: 0.8},
			Label:     &Label{Show: true, Formatter: "{b}: {c}"},
			Data:      items(sorted),
		}},
	}
}

func funnel(words wordfreq.TopWords) *Spec {
	return &Spec{
		Title:   Title{Text: "Word Frequency Funnel Chart"},
		Tooltip: Tooltip{Show: true, Trigger: "item"},
		Series: []Series{{
			Type: "funnel",
			Data: items(words),
		}},
	}
}

func polar(words wordfreq.TopWords) *Spec {
	return &Spec{
		Title:      Title{Text: "Word Frequency Polar Chart"},
		Tooltip:    Tooltip{Show: true},
		Polar:      &PolarCoord{},
		AngleAxis:  &Axis{Type: "category", Data: words.Texts()},
		RadiusAxis: &Axis{Type: "value"},
		Series: []Series{{
			Type:             "bar",
			CoordinateSystem: "polar",
			Data:             items(words),
		}},
	}
}

// radar 每个词一个指示器，指示器的最大值就是该词自身的频次。
func radar(words wordfreq.TopWords) *Spec {
	indicators := make([]Indicator, len(words))
	for i, w := range words {
		indicators[i] = Indicator{Name: w.Text, Max: w.Count}
	}
	return &Spec{
		Title:   Title{Text: "Word Frequency Radar Chart"},
		Tooltip: Tooltip{Show: true},
		Radar:   &RadarCoord{Indicator: indicators},
		Series: []Series{{
			Type: "radar",
			Data: []RadarValue{{Value: words.Counts()}},
		}},
	}
}

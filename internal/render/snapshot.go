package render

import (
	"bytes"
	"fmt"

	"github.com/afumu/wordstat/pkg/chart"
	"github.com/afumu/wordstat/pkg/wordfreq"
	gochart "github.com/wcharczuk/go-chart/v2"
)

// SnapshotKinds 支持 PNG 快照的图表类型
var SnapshotKinds = []chart.Kind{chart.Bar, chart.Line, chart.Scatter, chart.Pie}

// RenderPNG 在服务端绘制 PNG 快照，仅支持条形图、折线图、散点图和饼图。
func (r *Renderer) RenderPNG(kind chart.Kind, words wordfreq.TopWords) ([]byte, error) {
	spec, err := chart.Adapt(kind, words)
	if err != nil {
		return nil, err
	}

	width := pixels(r.opts.Width, 900)
	height := pixels(r.opts.Height, 500)

	var buf bytes.Buffer
	switch kind {
	case chart.Bar:
		bars := make([]gochart.Value, len(words))
		for i, w := range words {
			bars[i] = gochart.Value{Label: w.Text, Value: float64(w.Count)}
		}
		c := gochart.BarChart{
			Title:  spec.Title.Text,
			Width:  width,
			Height: height,
			YAxis: gochart.YAxis{
				Range: &gochart.ContinuousRange{Min: 0, Max: float64(maxCount(words)) * 1.1},
			},
			Bars: bars,
		}
		err = c.Render(gochart.PNG, &buf)
	case chart.Pie:
		items := spec.Series[0].Data.([]chart.DataItem)
		values := make([]gochart.Value, len(items))
		for i, it := range items {
			values[i] = gochart.Value{Label: fmt.Sprintf("%s: %d", it.Name, it.Value), Value: float64(it.Value)}
		}
		c := gochart.PieChart{
			Title:  spec.Title.Text,
			Width:  width,
			Height: height,
			Values: values,
		}
		err = c.Render(gochart.PNG, &buf)
	case chart.Line, chart.Scatter:
		err = continuous(kind, spec.Title.Text, words, width, height).Render(gochart.PNG, &buf)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("绘制 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// continuous 以 1..n 为 x 坐标、词为刻度标签绘制折线或散点。
func continuous(kind chart.Kind, title string, words wordfreq.TopWords, width, height int) gochart.Chart {
	xs := make([]float64, len(words))
	ys := make([]float64, len(words))
	ticks := make([]gochart.Tick, len(words))
	for i, w := range words {
		xs[i] = float64(i + 1)
		ys[i] = float64(w.Count)
		ticks[i] = gochart.Tick{Value: xs[i], Label: w.Text}
	}

	style := gochart.Style{StrokeWidth: 2}
	if kind == chart.Scatter {
		style = gochart.Style{StrokeWidth: gochart.Disabled, DotWidth: 5}
	}

	return gochart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis: gochart.XAxis{
			Ticks: ticks,
			Range: &gochart.ContinuousRange{Min: 0, Max: float64(len(words) + 1)},
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: float64(maxCount(words)) * 1.1},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    chart.SeriesName,
				Style:   style,
				XValues: xs,
				YValues: ys,
			},
		},
	}
}

func maxCount(words wordfreq.TopWords) int {
	m := 0
	for _, w := range words {
		if w.Count > m {
			m = w.Count
		}
	}
	return m
}

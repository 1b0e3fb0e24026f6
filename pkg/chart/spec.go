// Package chart 把高频词列表转换为 ECharts 图表配置，每种图表类型一个适配器。
package chart

// Spec 是可直接交给 ECharts setOption 的图表配置。
type Spec struct {
	Title      Title       `json:"title"`
	Tooltip    Tooltip     `json:"tooltip"`
	Legend     *Legend     `json:"legend,omitempty"`
	Toolbox    *Toolbox    `json:"toolbox,omitempty"`
	XAxis      *Axis       `json:"xAxis,omitempty"`
	YAxis      *Axis       `json:"yAxis,omitempty"`
	Polar      *PolarCoord `json:"polar,omitempty"`
	AngleAxis  *Axis       `json:"angleAxis,omitempty"`
	RadiusAxis *Axis       `json:"radiusAxis,omitempty"`
	Radar      *RadarCoord `json:"radar,omitempty"`
	Series     []Series    `json:"series"`
}

type Title struct {
	Text string `json:"text"`
	Left string `json:"left,omitempty"`
}

type Tooltip struct {
	Show    bool   `json:"show"`
	Trigger string `json:"trigger,omitempty"`
}

type Legend struct {
	Show bool `json:"show"`
}

type Toolbox struct {
	Show    bool                `json:"show"`
	Orient  string              `json:"orient,omitempty"`
	Feature map[string]struct{} `json:"feature,omitempty"`
}

// Axis 坐标轴；Data 仅类目轴使用。
type Axis struct {
	Type string   `json:"type"`
	Data []string `json:"data,omitempty"`
}

type PolarCoord struct{}

// RadarCoord 雷达图坐标，每个指示器独立设置最大值。
type RadarCoord struct {
	Indicator []Indicator `json:"indicator"`
}

type Indicator struct {
	Name string `json:"name"`
	Max  int    `json:"max"`
}

// Series 数据系列。Data 的具体类型随图表类型变化：
// []int、[]DataItem 或 []RadarValue。
type Series struct {
	Name             string     `json:"name"`
	Type             string     `json:"type"`
	Data             any        `json:"data"`
	CoordinateSystem string     `json:"coordinateSystem,omitempty"`
	Radius           []string   `json:"radius,omitempty"`
	RoseType         string     `json:"roseType,omitempty"`
	Shape            string     `json:"shape,omitempty"`
	SizeRange        []int      `json:"sizeRange,omitempty"`
	ItemStyle        *ItemStyle `json:"itemStyle,omitempty"`
	Label            *Label     `json:"label,omitempty"`
}

type DataItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type RadarValue struct {
	Value []int `json:"value"`
}

type ItemStyle struct {
	Opacity float64 `json:"opacity"`
}

type Label struct {
	Show      bool   `json:"show"`
	Formatter string `json:"formatter,omitempty"`
}

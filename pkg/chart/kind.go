package chart

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind 表示图表类型不在支持列表中。
var ErrUnknownKind = errors.New("unknown chart kind")

// Kind 图表类型
type Kind int

const (
	WordCloud Kind = iota
	Bar
	Pie
	Line
	Scatter
	Funnel
	Polar
	Radar
)

var kindNames = [...]string{"wordcloud", "bar", "pie", "line", "scatter", "funnel", "polar", "radar"}

var kindLabels = [...]string{"词云图", "条形图", "饼状图", "线状图", "散点图", "漏斗图", "极坐标图", "雷达图"}

// Kinds 返回全部图表类型，顺序固定。
func Kinds() []Kind {
	return []Kind{WordCloud, Bar, Pie, Line, Scatter, Funnel, Polar, Radar}
}

// Valid 判断是否为已定义的类型
func (k Kind) Valid() bool {
	return k >= WordCloud && k <= Radar
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Label 返回界面上展示的中文名称
func (k Kind) Label() string {
	if !k.Valid() {
		return ""
	}
	return kindLabels[k]
}

// ParseKind 接受英文名称（不区分大小写）或中文名称。
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds() {
		if strings.EqualFold(s, kindNames[k]) || s == kindLabels[k] {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText 以英文名称序列化
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText 解析英文或中文名称
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// KindInfo 图表类型的描述，供前端构建下拉列表。
type KindInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Catalog 返回所有图表类型的描述
func Catalog() []KindInfo {
	kinds := Kinds()
	out := make([]KindInfo, len(kinds))
	for i, k := range kinds {
		out[i] = KindInfo{Name: k.String(), Label: k.Label()}
	}
	return out
}

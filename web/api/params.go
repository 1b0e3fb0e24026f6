package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/afumu/wordstat/pkg/chart"
	"github.com/afumu/wordstat/pkg/wordfreq"
)

// topN 校验高频词数量，未提供时使用默认值，范围为 [1, MaxTopN]。
func (a *API) topN(n *int) (int, error) {
	if n == nil {
		return a.Conf.DefaultTopN, nil
	}
	if *n < 1 || *n > a.Conf.MaxTopN {
		return 0, fmt.Errorf("%w: %d 不在 [1, %d] 范围内", wordfreq.ErrInvalidCount, *n, a.Conf.MaxTopN)
	}
	return *n, nil
}

// topNString 解析表单中的数量参数
func (a *API) topNString(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return a.topN(nil)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", wordfreq.ErrInvalidCount, s)
	}
	return a.topN(&v)
}

// kind 解析图表类型，未提供时使用词云图。
func kind(s string) (chart.Kind, error) {
	if strings.TrimSpace(s) == "" {
		return chart.WordCloud, nil
	}
	return chart.ParseKind(s)
}

package textsrc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/afumu/wordstat/pkg/normalize"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Fetcher 抓取网页并提取可见文本。
type Fetcher struct {
	HTTP *http.Client
}

// NewFetcher 创建抓取器。timeout 为 0 时不设超时。
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

// FromURL 发起一次 GET 请求，解析 HTML 并返回拼接后的可见文本。
// 每个文本节点去掉首尾空白后直接拼接，不添加分隔符。
func (f *Fetcher) FromURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	client := f.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("读取响应失败: %w", err)}
	}

	text, err := VisibleText(body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	log.Debug().Str("url", url).Int("bytes", len(body)).Int("chars", len(text)).Msg("网页抓取完成")
	return text, nil
}

// VisibleText 解析 HTML 并提取文本节点，script/style 等不可见内容会被丢弃。
// 结果再经过一次朴素的标签删除，处理残缺文档留下的尖括号片段。
func VisibleText(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("解析 HTML 失败: %w", err)
	}

	doc.Find("script, style, noscript, template").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	var sb strings.Builder
	for _, n := range doc.Nodes {
		collectText(n, &sb)
	}

	return norm.NFC.String(normalize.StripTags(sb.String())), nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(strings.TrimSpace(n.Data))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

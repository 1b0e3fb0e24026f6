package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/afumu/wordstat/pkg/wordfreq"
	"github.com/rs/zerolog/log"
)

// ExportCSV 导出为 "词,频次\n" 格式，无表头、无 BOM。
// 词中含有逗号、双引号、换行或以空白开头时，按 RFC 4180 加双引号并把引号加倍，
// 例如 `say "hi"` 写为 `"say ""hi""",2`。ParseCSV 能还原这些词。
func (s *Service) ExportCSV(words wordfreq.TopWords) ([]byte, error) {
	log.Debug().Int("count", len(words)).Msg("ExportCSV processing")

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for _, item := range words {
		if err := w.Write([]string{item.Text, strconv.Itoa(item.Count)}); err != nil {
			return nil, fmt.Errorf("写入CSV数据失败: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("CSV写入错误: %w", err)
	}

	return buf.Bytes(), nil
}

// ParseCSV 把导出的 CSV 解析回高频词列表。
func ParseCSV(data []byte) (wordfreq.TopWords, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("读取CSV失败: %w", err)
	}

	words := make(wordfreq.TopWords, 0, len(records))
	for i, rec := range records {
		count, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("第 %d 行频次无效: %w", i+1, err)
		}
		words = append(words, wordfreq.RankedWord{Text: rec[0], Count: count})
	}
	return words, nil
}

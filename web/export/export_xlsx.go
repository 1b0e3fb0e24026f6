package export

import (
	"bytes"
	"fmt"

	"github.com/afumu/wordstat/pkg/wordfreq"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const sheetName = "高频词"

// ExportXLSX 导出为 XLSX，第一行为表头。
func (s *Service) ExportXLSX(words wordfreq.TopWords) ([]byte, error) {
	log.Debug().Int("count", len(words)).Msg("ExportXLSX processing")

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("设置工作表名称失败: %w", err)
	}

	headers := []string{"词", "频次"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheetName, "A1", "B1", headerStyle)
	f.SetColWidth(sheetName, "A", "A", 20)
	f.SetColWidth(sheetName, "B", "B", 10)

	for i, item := range words {
		row := i + 2
		textCell, _ := excelize.CoordinatesToCellName(1, row)
		countCell, _ := excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(sheetName, textCell, item.Text)
		f.SetCellValue(sheetName, countCell, item.Count)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("写入XLSX失败: %w", err)
	}

	return buf.Bytes(), nil
}

package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/afumu/wordstat/pkg/wordfreq"
)

// ErrUnknownFormat 表示不支持的导出格式
var ErrUnknownFormat = errors.New("unknown export format")

// DefaultFileName 下载文件的默认名称
const DefaultFileName = "高频词.csv"

// Artifact 可供下载的导出结果
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Service 负责把高频词导出为可下载文件。
type Service struct {
	FileName string
}

// NewService 创建导出服务，fileName 为空时使用默认名称。
func NewService(fileName string) *Service {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &Service{FileName: fileName}
}

// Export 按格式导出。xlsx 文件名会替换扩展名。
func (s *Service) Export(words wordfreq.TopWords, format string) (*Artifact, error) {
	switch strings.ToLower(format) {
	case "", "csv":
		data, err := s.ExportCSV(words)
		if err != nil {
			return nil, err
		}
		return &Artifact{FileName: s.FileName, ContentType: "text/csv", Data: data}, nil
	case "xlsx":
		data, err := s.ExportXLSX(words)
		if err != nil {
			return nil, err
		}
		return &Artifact{
			FileName:    withExt(s.FileName, ".xlsx"),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func withExt(name, ext string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name + ext
}

package segment

import (
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/yanyiwu/gojieba"
)

// Jieba 基于 gojieba 的中文分词器（精确模式，启用 HMM 新词发现）。
type Jieba struct {
	mu sync.Mutex
	x  *gojieba.Jieba
}

// NewJieba 创建分词器。dictDir 非空时从该目录加载词典文件。
func NewJieba(dictDir string) *Jieba {
	if dictDir == "" {
		return &Jieba{x: gojieba.NewJieba()}
	}
	log.Info().Str("dir", dictDir).Msg("加载 jieba 词典")
	return &Jieba{x: gojieba.NewJieba(
		filepath.Join(dictDir, "jieba.dict.utf8"),
		filepath.Join(dictDir, "hmm_model.utf8"),
		filepath.Join(dictDir, "user.dict.utf8"),
		filepath.Join(dictDir, "idf.utf8"),
		filepath.Join(dictDir, "stop_words.utf8"),
	)}
}

// Segment 切分文本
func (j *Jieba) Segment(text string) []string {
	if text == "" {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.x == nil {
		return nil
	}
	return dropBlank(j.x.Cut(text, true))
}

// Close 释放底层词典
func (j *Jieba) Close() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.x != nil {
		j.x.Free()
		j.x = nil
	}
}

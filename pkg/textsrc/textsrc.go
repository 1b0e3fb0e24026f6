// Package textsrc 获取原始文本：上传的字节内容或抓取的网页。
package textsrc

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrDecode 表示上传内容不是合法的 UTF-8。
var ErrDecode = errors.New("content is not valid utf-8")

// ErrFetch 是所有抓取失败的公共哨兵错误。
var ErrFetch = errors.New("fetch failed")

// FetchError 描述一次失败的网页抓取。
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is 使 errors.Is(err, ErrFetch) 对所有 FetchError 成立
func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// FromUpload 把上传的字节按 UTF-8 解码为文本。
func FromUpload(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrDecode
	}
	return norm.NFC.String(string(data)), nil
}

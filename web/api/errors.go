package api

import (
	"errors"
	"net/http"

	"github.com/afumu/wordstat/internal/render"
	"github.com/afumu/wordstat/pkg/chart"
	"github.com/afumu/wordstat/pkg/textsrc"
	"github.com/afumu/wordstat/pkg/wordfreq"
	"github.com/afumu/wordstat/web/export"
	"github.com/afumu/wordstat/web/transport"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// 错误分类，随错误响应返回
const (
	kindDecode       = "decode"
	kindFetch        = "fetch"
	kindInvalidCount = "invalid_count"
	kindEmptyInput   = "empty_input"
	kindBadRequest   = "bad_request"
	kindInternal     = "internal"
)

// sendError 把流水线错误映射为 HTTP 响应。所有错误都终止本次请求。
func sendError(c *gin.Context, err error) {
	var fe *textsrc.FetchError
	switch {
	case errors.Is(err, textsrc.ErrDecode):
		transport.SendKindError(c, http.StatusBadRequest, kindDecode, "文件不是有效的 UTF-8 文本")
	case errors.As(err, &fe):
		transport.SendKindError(c, http.StatusBadGateway, kindFetch, "获取网页失败: "+fe.Error())
	case errors.Is(err, wordfreq.ErrInvalidCount):
		transport.SendKindError(c, http.StatusBadRequest, kindInvalidCount, "高频词数量无效: "+err.Error())
	case errors.Is(err, chart.ErrEmptyInput):
		transport.SendKindError(c, http.StatusUnprocessableEntity, kindEmptyInput, "没有数据：清洗和分词后没有剩余的词")
	case errors.Is(err, chart.ErrUnknownKind),
		errors.Is(err, render.ErrUnsupported),
		errors.Is(err, export.ErrUnknownFormat),
		errors.Is(err, wordfreq.ErrInvalidWord):
		transport.SendKindError(c, http.StatusBadRequest, kindBadRequest, err.Error())
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("请求处理失败")
		transport.SendKindError(c, http.StatusInternalServerError, kindInternal, err.Error())
	}
}

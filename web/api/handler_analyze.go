package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/afumu/wordstat/internal/analyze"
	"github.com/afumu/wordstat/pkg/chart"
	"github.com/afumu/wordstat/web/transport"
	"github.com/gin-gonic/gin"
)

// AnalyzeResponse 统计结果和对应的图表配置
type AnalyzeResponse struct {
	*analyze.Result
	Kind  chart.Kind  `json:"kind"`
	Chart *chart.Spec `json:"chart"`
}

// multipartMemory 上传表单保存在内存中的上限，超出部分写入临时文件
const multipartMemory = 8 << 20

// AnalyzeUpload 统计上传的 .txt 文件
func (a *API) AnalyzeUpload(c *gin.Context) {
	// 必须在读取任何表单字段之前限制请求体
	if a.Conf.MaxUploadMB > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, a.Conf.MaxUploadMB<<20)
	}
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			transport.SendError(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("文件超过 %d MB", a.Conf.MaxUploadMB))
			return
		}
		transport.BadRequest(c, "请先上传文件")
		return
	}

	k, err := kind(c.PostForm("kind"))
	if err != nil {
		sendError(c, err)
		return
	}
	n, err := a.topNString(c.PostForm("n"))
	if err != nil {
		sendError(c, err)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		transport.BadRequest(c, "请先上传文件")
		return
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".txt") {
		transport.BadRequest(c, "只支持 .txt 文件")
		return
	}

	f, err := fh.Open()
	if err != nil {
		transport.InternalServerError(c, err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		transport.InternalServerError(c, err.Error())
		return
	}

	res, err := a.Analyzer.Upload(data, n)
	if err != nil {
		sendError(c, err)
		return
	}
	a.respond(c, k, res)
}

// AnalyzeURL 抓取网页并统计
func (a *API) AnalyzeURL(c *gin.Context) {
	var req transport.AnalyzeURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		transport.BadRequest(c, "请输入URL")
		return
	}
	k, err := kind(req.Kind)
	if err != nil {
		sendError(c, err)
		return
	}
	n, err := a.topN(req.N)
	if err != nil {
		sendError(c, err)
		return
	}

	res, err := a.Analyzer.URL(c.Request.Context(), strings.TrimSpace(req.URL), n)
	if err != nil {
		sendError(c, err)
		return
	}
	a.respond(c, k, res)
}

// AnalyzeText 统计直接提交的文本
func (a *API) AnalyzeText(c *gin.Context) {
	var req transport.AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		transport.BadRequest(c, err.Error())
		return
	}
	k, err := kind(req.Kind)
	if err != nil {
		sendError(c, err)
		return
	}
	n, err := a.topN(req.N)
	if err != nil {
		sendError(c, err)
		return
	}

	res, err := a.Analyzer.Text(req.Text, n)
	if err != nil {
		sendError(c, err)
		return
	}
	a.respond(c, k, res)
}

// respond 构建图表配置。没有任何词时返回“无数据”错误而不是空图表。
func (a *API) respond(c *gin.Context, k chart.Kind, res *analyze.Result) {
	spec, err := a.Conf.Chart.Adapt(k, res.TopWords)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, transport.Response{
		Success: true,
		Data:    AnalyzeResponse{Result: res, Kind: k, Chart: spec},
	})
}

package api

import (
	"github.com/afumu/wordstat/pkg/chart"
	"github.com/afumu/wordstat/web/transport"
	"github.com/gin-gonic/gin"
)

// GetChartKinds 返回可选的图表类型
func (a *API) GetChartKinds(c *gin.Context) {
	transport.SendSuccess(c, chart.Catalog())
}

// RenderChart 把高频词渲染为独立的 HTML 文档或 PNG 快照
func (a *API) RenderChart(c *gin.Context) {
	var req transport.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		transport.BadRequest(c, err.Error())
		return
	}
	k, err := kind(req.Kind)
	if err != nil {
		sendError(c, err)
		return
	}
	if err := req.TopWords.Validate(); err != nil {
		sendError(c, err)
		return
	}

	switch c.DefaultQuery("format", "html") {
	case "png":
		img, err := a.Renderer.RenderPNG(k, req.TopWords)
		if err != nil {
			sendError(c, err)
			return
		}
		transport.SendDocument(c, "image/png", img)
	case "html":
		spec, err := a.Conf.Chart.Adapt(k, req.TopWords)
		if err != nil {
			sendError(c, err)
			return
		}
		doc, err := a.Renderer.RenderHTML(k, spec)
		if err != nil {
			sendError(c, err)
			return
		}
		transport.SendDocument(c, "text/html; charset=utf-8", doc)
	default:
		transport.BadRequest(c, "format 只支持 html 或 png")
	}
}

package api

import (
	"github.com/afumu/wordstat/web/transport"
	"github.com/gin-gonic/gin"
)

// ExportTopWords 导出高频词，默认 CSV
func (a *API) ExportTopWords(c *gin.Context) {
	var req transport.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		transport.BadRequest(c, err.Error())
		return
	}
	if err := req.TopWords.Validate(); err != nil {
		sendError(c, err)
		return
	}

	art, err := a.Export.Export(req.TopWords, c.Query("format"))
	if err != nil {
		sendError(c, err)
		return
	}
	transport.SendAttachment(c, art.FileName, art.ContentType, art.Data)
}

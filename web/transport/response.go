package transport

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/cespare/xxhash"
	"github.com/gin-gonic/gin"
)

// Response 是成功请求的标准化 JSON 响应。
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// SendSuccess 以 200 OK 状态和标准化的 JSON 成功载荷进行响应。
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// ETag 根据内容计算强校验 ETag
func ETag(data []byte) string {
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(data))
}

// SendDocument 内联返回渲染好的文档（HTML、PNG）。
func SendDocument(c *gin.Context, contentType string, data []byte) {
	c.Header("ETag", ETag(data))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, data)
}

// SendAttachment 以附件形式返回文件，非 ASCII 文件名按 RFC 2231 编码。
func SendAttachment(c *gin.Context, fileName, contentType string, data []byte) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	c.Header("ETag", ETag(data))
	c.Data(http.StatusOK, contentType, data)
}

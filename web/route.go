package web

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// setupRoutes 初始化所有应用程序路由。
func (s *Service) setupRoutes() {
	v1 := s.router.Group("/api/v1")
	{
		// 统计路由
		analyzeGroup := v1.Group("/analyze")
		{
			analyzeGroup.POST("/upload", s.api.AnalyzeUpload)
			analyzeGroup.POST("/url", s.api.AnalyzeURL)
			analyzeGroup.POST("/text", s.api.AnalyzeText)
		}

		// 图表路由
		v1.GET("/chart/kinds", s.api.GetChartKinds)
		v1.POST("/render", s.api.RenderChart)

		// 导出路由
		v1.POST("/export", s.api.ExportTopWords)
	}

	// 健康检查
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 静态文件服务 (UI)
	if s.staticFS != nil {
		s.router.StaticFS("/assets", http.FS(s.staticFS))
		// 处理 SPA 的 fallback，除了 /api 开头的路径外，都返回 index.html
		s.router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "API route not found"})
				return
			}

			f, err := s.staticFS.Open("index.html")
			if err != nil {
				c.String(http.StatusNotFound, "UI not found")
				return
			}
			defer f.Close()
			c.Status(http.StatusOK)
			c.Header("Content-Type", "text/html; charset=utf-8")
			_, _ = io.Copy(c.Writer, f)
		})
	}
}

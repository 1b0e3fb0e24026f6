package main

import (
	"embed"
	"io/fs"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/afumu/wordstat/internal/analyze"
	"github.com/afumu/wordstat/internal/render"
	"github.com/afumu/wordstat/pkg/chart"
	"github.com/afumu/wordstat/pkg/segment"
	"github.com/afumu/wordstat/pkg/textsrc"
	"github.com/afumu/wordstat/web"
	"github.com/afumu/wordstat/web/api"
	"github.com/afumu/wordstat/web/export"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

//go:embed ui/dist
var uiDist embed.FS

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})

	// --- 加载配置 ---
	setDefaults()
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			// 文件不存在，尝试创建默认配置
			if err := viper.SafeWriteConfig(); err != nil {
				log.Warn().Err(err).Msg("无法创建默认 .env 文件")
			} else {
				log.Info().Msg("已自动创建并初始化 .env 配置文件")
			}
		} else {
			log.Warn().Err(err).Msg("读取 .env 文件出错，将使用默认值或环境变量")
		}
	}
	applyLogLevel()

	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Info().Str("file", e.Name).Msg("配置文件已变更")
		applyLogLevel()
	})
	viper.WatchConfig()

	// 端口配置：优先使用 LISTEN_ADDR，其次使用 PORT，最后默认 127.0.0.1:5200
	listenAddr := viper.GetString("LISTEN_ADDR")
	if listenAddr == "" {
		if port := viper.GetString("PORT"); port != "" {
			listenAddr = "127.0.0.1:" + port
		} else {
			listenAddr = "127.0.0.1:5200"
		}
	}

	// --- 初始化分词器 ---
	seg, release, err := segment.New(viper.GetString("TOKENIZER"), viper.GetString("JIEBA_DICT_DIR"))
	if err != nil {
		log.Fatal().Err(err).Msg("初始化分词器失败")
	}
	defer release()
	log.Info().Str("tokenizer", viper.GetString("TOKENIZER")).Msg("分词器初始化成功。")

	// --- 初始化流水线与渲染器 ---
	fetcher := textsrc.NewFetcher(time.Duration(viper.GetInt("FETCH_TIMEOUT_SECONDS")) * time.Second)
	analyzer := analyze.New(seg, fetcher)

	renderer, err := render.NewRenderer(render.Options{
		Width:      viper.GetString("CHART_WIDTH"),
		Height:     viper.GetString("CHART_HEIGHT"),
		AssetsHost: viper.GetString("CHART_ASSETS_HOST"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("初始化图表渲染器失败")
	}

	pieRadius, err := chart.ParsePieRadius(viper.GetString("CHART_PIE_RADIUS"))
	if err != nil {
		log.Warn().Err(err).Msg("饼图半径配置无效，使用默认值")
		pieRadius = chart.DefaultPieRadius
	}

	// --- 准备静态文件系统 ---
	staticFS, err := fs.Sub(uiDist, "ui/dist")
	if err != nil {
		log.Fatal().Err(err).Msg("无法加载嵌入的 UI 文件")
	}

	// --- 初始化 Web 服务 ---
	maxUploadMB := viper.GetInt64("MAX_UPLOAD_MB")
	apiHandler := api.NewAPI(analyzer, renderer, export.NewService(viper.GetString("EXPORT_FILENAME")), &api.Config{
		DefaultTopN: viper.GetInt("DEFAULT_TOP_N"),
		MaxTopN:     viper.GetInt("MAX_TOP_N"),
		MaxUploadMB: maxUploadMB,
		Chart:       chart.Options{PieRadius: pieRadius},
	})
	webService := web.NewService(apiHandler, &web.Config{
		ListenAddr:  listenAddr,
		MaxUploadMB: maxUploadMB,
	}, staticFS)

	// --- 启动服务 ---
	if err := webService.Start(); err != nil {
		log.Fatal().Err(err).Msg("启动 web 服务失败")
	}

	// 打印访问地址并自动打开浏览器
	baseURL := listenAddr
	if len(baseURL) > 0 && baseURL[0] == ':' {
		baseURL = "127.0.0.1" + baseURL
	}
	url := "http://" + baseURL
	log.Info().Msgf("服务已启动，请访问: %s", url)
	if viper.GetBool("OPEN_BROWSER") {
		openBrowser(url)
	}

	// --- 等待中断信号以实现优雅关闭 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("接收到关闭信号，正在关闭服务...")

	// --- 关闭服务 ---
	if err := webService.Stop(); err != nil {
		log.Error().Err(err).Msg("关闭 web 服务时出错")
		return
	}
	log.Info().Msg("服务已成功关闭。")
}

func setDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TOKENIZER", segment.NameJieba)
	viper.SetDefault("JIEBA_DICT_DIR", "")
	viper.SetDefault("DEFAULT_TOP_N", 20)
	viper.SetDefault("MAX_TOP_N", 100)
	viper.SetDefault("FETCH_TIMEOUT_SECONDS", 0)
	viper.SetDefault("MAX_UPLOAD_MB", 32)
	viper.SetDefault("CHART_WIDTH", "900px")
	viper.SetDefault("CHART_HEIGHT", "500px")
	viper.SetDefault("CHART_PIE_RADIUS", "30%,75%")
	viper.SetDefault("CHART_ASSETS_HOST", render.DefaultAssetsHost)
	viper.SetDefault("EXPORT_FILENAME", export.DefaultFileName)
	viper.SetDefault("OPEN_BROWSER", true)
}

func applyLogLevel() {
	level, err := zerolog.ParseLevel(viper.GetString("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start()
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = nil
	}
	if err != nil {
		log.Warn().Err(err).Msg("无法自动打开浏览器")
	}
}

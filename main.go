package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/fab/pkg/app"
	"github.com/decker502/fab/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "演示配置文件路径（默认使用嵌入的 data/fab.yaml）")
	scene      = flag.String("scene", "", "启动场景: demo 或 layout")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	demoApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Scene:      *scene,
	})
	if err != nil {
		// 非 verbose 模式下日志已被丢弃，错误仍需输出
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	width, height := demoApp.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(demoApp.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(demoApp); err != nil {
		log.Fatal(err)
	}
}

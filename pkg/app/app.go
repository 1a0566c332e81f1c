// Package app 提供演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/fab/pkg/config"
	"github.com/decker502/fab/pkg/embedded"
	"github.com/decker502/fab/pkg/game"
	"github.com/decker502/fab/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 演示配置文件路径，为空则使用嵌入的 data/fab.yaml
	ConfigPath string
	// Scene 启动场景（"demo" 或 "layout"），为空则为 "demo"
	Scene string
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	demo                     config.DemoConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化演示应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	demo, err := loadDemoConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 加载演示配置: %d 个 FAB, 窗口 %dx%d", len(demo.Fabs), demo.Width, demo.Height)

	sceneManager := game.NewSceneManager()
	factory := scenes.NewFactory(demo, sceneManager)
	sceneManager.SetSceneFactory(factory)

	start := cfg.Scene
	if start == "" {
		start = scenes.SceneDemo
	}

	// 启动场景必须创建成功，之后的切换失败只记录日志
	first, err := factory(start)
	if err != nil {
		return nil, fmt.Errorf("启动场景 %s 创建失败: %w", start, err)
	}
	sceneManager.SwitchTo(first)
	log.Printf("[App] Starting scene: %s", start)

	return &App{
		sceneManager: sceneManager,
		demo:         demo,
		verbose:      cfg.Verbose,
	}, nil
}

// loadDemoConfig 优先读取 path，为空时读取嵌入配置
func loadDemoConfig(path string) (config.DemoConfig, error) {
	if path != "" {
		demo, err := config.LoadDemoConfig(path)
		if err != nil {
			return config.DemoConfig{}, fmt.Errorf("演示配置加载失败: %w", err)
		}
		return demo, nil
	}

	demo, err := embedded.LoadDemoConfig(config.DefaultDemoConfigPath)
	if err != nil {
		return config.DemoConfig{}, fmt.Errorf("演示配置加载失败: %w", err)
	}
	return demo, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.demo.Width, a.demo.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.demo.Width, a.demo.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放时的 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
//
// 逻辑尺寸跟随窗口尺寸，FAB 始终贴在窗口角落；
// 尺寸变化通过场景管理器传给当前场景，展开中的菜单会收起。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.demo.Width, a.demo.Height
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// WindowSize 配置中的初始窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.demo.Width, a.demo.Height
}

// Title 窗口标题
func (a *App) Title() string {
	return a.demo.Title
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

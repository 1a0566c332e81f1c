package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/fab/pkg/config"
	"github.com/decker502/fab/pkg/ecs"
	"github.com/decker502/fab/pkg/fab"
	"github.com/decker502/fab/pkg/game"
	"github.com/decker502/fab/pkg/systems"
	"github.com/decker502/fab/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const demoHelp = "Tab: layout   Esc: dismiss all   R: swap items   D: toggle first item"

var demoTextColor = color.RGBA{R: 60, G: 60, B: 67, A: 255}

// DemoScene 演示场景：在一个表面上放置配置中的所有 FAB
//
// 所有 FAB 共享同一个实体管理器、同一套系统和同一个 "dismiss-all" 通道，
// 选择任一菜单项会收起全部菜单。
//
// 系统执行顺序：输入 -> 悬停 -> 动画 -> 清理已销毁实体。
type DemoScene struct {
	cfg          config.DemoConfig
	sceneManager *game.SceneManager

	entityManager   *ecs.EntityManager
	inputSystem     *systems.InputSystem
	hoverSystem     *systems.HoverSystem
	animationSystem *systems.AnimationSystem
	renderSystem    *systems.RenderSystem

	dismissAll *fab.Emitter
	fabs       []*fab.Fab

	swapped bool
	status  string
}

// NewDemoScene 按配置创建演示场景
// 任一 FAB 创建失败时释放已创建的 FAB 并返回错误
func NewDemoScene(cfg config.DemoConfig, sm *game.SceneManager) (*DemoScene, error) {
	easing, ok := utils.EasingByName(cfg.Easing)
	if !ok {
		return nil, fmt.Errorf("%w: unknown easing %q (available: %v)", config.ErrInvalidConfig, cfg.Easing, utils.EasingNames())
	}

	em := ecs.NewEntityManager()
	s := &DemoScene{
		cfg:             cfg,
		sceneManager:    sm,
		entityManager:   em,
		inputSystem:     systems.NewInputSystem(em),
		hoverSystem:     systems.NewHoverSystem(em),
		animationSystem: systems.NewAnimationSystem(em),
		renderSystem:    systems.NewRenderSystem(em),
		dismissAll:      fab.NewEmitter(),
		status:          "Click a button to open its menu",
	}
	s.animationSystem.SetEasing(easing)

	for i, fc := range cfg.Fabs {
		f, err := fab.New(em, s.animationSystem, fc.FabConfig, fab.Options{
			Items:         s.buildItems(fc.Anchor, fc.Items),
			DismissAll:    s.dismissAll,
			SurfaceWidth:  float64(cfg.Width),
			SurfaceHeight: float64(cfg.Height),
		})
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("fabs[%d]: %w", i, err)
		}
		s.fabs = append(s.fabs, f)
	}

	log.Printf("[DemoScene] 创建完成: %d 个 FAB, easing=%q", len(s.fabs), cfg.Easing)
	return s, nil
}

// buildItems 把配置中的菜单项转换为 fab.Item
func (s *DemoScene) buildItems(anchor config.Anchor, defs []config.DemoItemConfig) []*fab.Item {
	items := make([]*fab.Item, 0, len(defs))
	for _, def := range defs {
		icon := fab.Icon{}
		if def.Glyph != "" {
			icon = fab.GlyphIcon(def.Glyph)
		}
		item := fab.NewItem(def.Text, icon, s.selected(anchor))
		item.IsDisabled = def.Disabled
		item.DismissOnSelect = !def.KeepOpen
		items = append(items, item)
	}
	return items
}

// selected 返回记录选择结果的处理函数
func (s *DemoScene) selected(anchor config.Anchor) func(item *fab.Item, index int) {
	return func(item *fab.Item, index int) {
		s.status = fmt.Sprintf("%s: selected %q (#%d)", anchor, item.Text, index)
		log.Printf("[DemoScene] %s", s.status)
	}
}

// Update 处理场景快捷键并按顺序运行系统
func (s *DemoScene) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		s.sceneManager.Load(NextName(SceneDemo))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.DismissAll()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.SwapItems()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		s.ToggleFirstItem()
	}

	s.inputSystem.Update(deltaTime)
	// 触屏没有悬停
	if !utils.IsMobile() {
		s.hoverSystem.Update(deltaTime)
	}
	s.advance(deltaTime)
}

// advance 推进动画并清理本帧销毁的实体
func (s *DemoScene) advance(deltaTime float64) {
	s.animationSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// DismissAll 收起所有 FAB
func (s *DemoScene) DismissAll() {
	s.dismissAll.Publish(fab.SignalDismissAll)
}

// SwapItems 在配置的菜单项和倒序加一项的列表之间切换第一个 FAB 的菜单项
// 菜单展开时也可以切换，新菜单项直接出现在展开位置
func (s *DemoScene) SwapItems() {
	if len(s.fabs) == 0 {
		return
	}
	fc := s.cfg.Fabs[0]
	specs := append([]config.DemoItemConfig(nil), fc.Items...)
	if !s.swapped {
		for i, j := 0, len(specs)-1; i < j; i, j = i+1, j-1 {
			specs[i], specs[j] = specs[j], specs[i]
		}
		specs = append(specs, config.DemoItemConfig{Text: "Added later", Glyph: "+"})
	}
	s.swapped = !s.swapped

	s.fabs[0].ReplaceItems(s.buildItems(fc.Anchor, specs))
	s.status = fmt.Sprintf("%s: %d items", fc.Anchor, len(specs))
}

// ToggleFirstItem 切换第一个 FAB 第一个菜单项的禁用状态
func (s *DemoScene) ToggleFirstItem() {
	if len(s.fabs) == 0 {
		return
	}
	items := s.fabs[0].Items()
	if len(items) == 0 {
		return
	}
	item := items[0]
	s.fabs[0].SetItemDisabled(item.ID, !item.IsDisabled)
	s.status = fmt.Sprintf("%q disabled=%v", item.Text, item.IsDisabled)
}

// Draw 绘制背景、提示文字和所有 FAB
func (s *DemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.cfg.Background.RGBA)
	drawCenteredText(screen, s.status, float64(screen.Bounds().Dx())/2, 24, demoTextColor)
	drawCenteredText(screen, demoHelp, float64(screen.Bounds().Dx())/2, 44, demoTextColor)
	s.renderSystem.Draw(screen)
}

// Resize 宿主表面尺寸变化，展开中的菜单会收起
func (s *DemoScene) Resize(width, height int) {
	for _, f := range s.fabs {
		f.Resize(float64(width), float64(height))
	}
}

// Close 移除所有 FAB
func (s *DemoScene) Close() {
	for _, f := range s.fabs {
		f.Close()
	}
	s.fabs = nil
	s.entityManager.RemoveMarkedEntities()
	log.Printf("[DemoScene] 已关闭")
}

// Fabs 场景中的 FAB
func (s *DemoScene) Fabs() []*fab.Fab {
	return s.fabs
}

// Status 最近一次操作的描述
func (s *DemoScene) Status() string {
	return s.status
}

func drawCenteredText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, utils.LabelFace(), op)
}

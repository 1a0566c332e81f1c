package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/fab/pkg/config"
	"github.com/decker502/fab/pkg/fab"
	"github.com/decker502/fab/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// defaultInspectItems 模板 FAB 没有菜单项时显示的槽位数
const defaultInspectItems = 3

var (
	layoutButtonColor     = color.RGBA{R: 255, G: 59, B: 48, A: 255}
	layoutSlotColor       = color.RGBA{R: 0, G: 122, B: 255, A: 255}
	layoutRestingColor    = color.RGBA{R: 142, G: 142, B: 147, A: 255}
	layoutContentColor    = color.RGBA{R: 52, G: 199, B: 89, A: 255}
	layoutTextColor       = color.RGBA{R: 235, G: 235, B: 245, A: 255}
	layoutBackgroundColor = color.RGBA{R: 28, G: 28, B: 30, A: 255}
)

// cornerLayout 一个锚点下的布局结果
type cornerLayout struct {
	anchor        config.Anchor
	center        fab.Point
	slots         []fab.Slot
	edgeOffsets   []float64
	contentHeight float64
	direction     float64
}

// LayoutScene 布局检查场景
//
// 以第一个 FAB 的配置为模板，在四个角分别画出主按钮、停靠位置、
// 展开位置和 ContentHeight 范围，用于核对布局公式。不创建任何实体。
type LayoutScene struct {
	template     config.FabConfig
	count        int
	sceneManager *game.SceneManager
	width        float64
	height       float64
	corners      []cornerLayout
}

// NewLayoutScene 创建布局检查场景
func NewLayoutScene(cfg config.DemoConfig, sm *game.SceneManager) *LayoutScene {
	template := config.DefaultFabConfig()
	count := defaultInspectItems
	if len(cfg.Fabs) > 0 {
		template = cfg.Fabs[0].FabConfig
		if n := len(cfg.Fabs[0].Items); n > 0 {
			count = n
		}
	}

	s := &LayoutScene{
		template:     template,
		count:        count,
		sceneManager: sm,
		width:        float64(cfg.Width),
		height:       float64(cfg.Height),
	}
	s.recompute()
	return s
}

// recompute 重新计算四个角的布局
func (s *LayoutScene) recompute() {
	anchors := []config.Anchor{config.AnchorTopLeft, config.AnchorTopRight, config.AnchorBottomLeft, config.AnchorBottomRight}
	s.corners = s.corners[:0]

	for _, anchor := range anchors {
		direction, side := fab.DirectionsFor(anchor)
		params := fab.LayoutParams{
			Center:          fab.AnchoredCenter(anchor, s.template.Margin, s.template.Diameter, s.width, s.height),
			Diameter:        s.template.Diameter,
			Count:           s.count,
			ItemOffset:      s.template.ItemOffset,
			FirstItemOffset: s.template.FirstItemOffset,
			ItemHeight:      config.ItemViewHeight,
			LateralOffset:   config.ItemLateralOffset,
			Direction:       direction,
			Side:            side,
		}

		corner := cornerLayout{
			anchor:        anchor,
			center:        params.Center,
			slots:         fab.ComputeLayout(params),
			contentHeight: fab.ContentHeight(params, s.template.Margin),
			direction:     direction,
		}
		for i := 0; i < s.count; i++ {
			corner.edgeOffsets = append(corner.edgeOffsets, fab.EdgeOffset(params, i))
		}
		s.corners = append(s.corners, corner)
	}
}

// Update Tab 返回演示场景
func (s *LayoutScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.sceneManager.Load(NextName(SceneLayout))
	}
}

// Draw 画出四个角的布局
func (s *LayoutScene) Draw(screen *ebiten.Image) {
	screen.Fill(layoutBackgroundColor)

	for _, corner := range s.corners {
		// ContentHeight 范围：从锚定边缘开始
		edgeY := float32(s.height)
		if corner.direction > 0 {
			edgeY = 0
		}
		h := float32(corner.contentHeight)
		y := edgeY - h
		if corner.direction > 0 {
			y = edgeY
		}
		vector.StrokeLine(screen, float32(corner.center.X), y, float32(corner.center.X), y+h, 1, layoutContentColor, true)

		for _, slot := range corner.slots {
			vector.StrokeRect(screen,
				float32(slot.Expanded.X-config.ItemViewWidth/2), float32(slot.Expanded.Y-config.ItemViewHeight/2),
				config.ItemViewWidth, config.ItemViewHeight, 1, layoutSlotColor, true)
			vector.FillCircle(screen, float32(slot.Collapsed.X), float32(slot.Collapsed.Y), 3, layoutRestingColor, true)
		}

		radius := float32(s.template.Diameter / 2)
		vector.StrokeCircle(screen, float32(corner.center.X), float32(corner.center.Y), radius, 2, layoutButtonColor, true)
	}

	drawCenteredText(screen, s.summary(), s.width/2, s.height/2, layoutTextColor)
	drawCenteredText(screen, "Tab: back to demo", s.width/2, s.height/2+20, layoutTextColor)
}

// summary 一行布局摘要
func (s *LayoutScene) summary() string {
	if len(s.corners) == 0 || len(s.corners[0].edgeOffsets) == 0 {
		return "no items"
	}
	corner := s.corners[0]
	last := len(corner.edgeOffsets) - 1
	return fmt.Sprintf("items=%d  edgeOffset[%d]=%.1f  contentHeight=%.1f",
		s.count, last, corner.edgeOffsets[last], corner.contentHeight)
}

// Resize 按新尺寸重新计算
func (s *LayoutScene) Resize(width, height int) {
	s.width, s.height = float64(width), float64(height)
	s.recompute()
}

package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/decker502/fab/pkg/components"
	"github.com/decker502/fab/pkg/config"
	"github.com/decker502/fab/pkg/ecs"
	"github.com/decker502/fab/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem FAB 渲染系统
// 负责绘制背景遮罩、菜单项视图和圆形按钮
//
// 职责：
//   - 按 ZIndex 从下到上绘制，ZIndex 相同时按实体 ID
//   - 菜单项和按钮先绘制到离屏图像，再整体应用缩放、旋转和不透明度，
//     避免标签底板与按钮重叠处出现透明度叠加
//   - 隐藏或完全透明的实体不绘制
type RenderSystem struct {
	entityManager *ecs.EntityManager
	// 每个实体的离屏图像，尺寸变化时重建
	layers map[ecs.EntityID]*ebiten.Image
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		layers:        make(map[ecs.EntityID]*ebiten.Image),
	}
}

// Draw 绘制所有可见实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	entities := s.drawOrder()

	alive := make(map[ecs.EntityID]bool, len(entities))
	for _, id := range entities {
		alive[id] = true
		s.drawEntity(screen, id)
	}

	// 释放已销毁实体的离屏图像
	for id, layer := range s.layers {
		if !alive[id] {
			layer.Deallocate()
			delete(s.layers, id)
		}
	}
}

// drawOrder 返回可绘制实体，ZIndex 升序，相同 ZIndex 按 ID 升序
func (s *RenderSystem) drawOrder() []ecs.EntityID {
	entities := ecs.GetEntitiesWith2[*components.AppearanceComponent, *components.PositionComponent](s.entityManager)

	sort.SliceStable(entities, func(i, j int) bool {
		ai, _ := ecs.GetComponent[*components.AppearanceComponent](s.entityManager, entities[i])
		aj, _ := ecs.GetComponent[*components.AppearanceComponent](s.entityManager, entities[j])
		return ai.ZIndex < aj.ZIndex
	})
	return entities
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	app, _ := ecs.GetComponent[*components.AppearanceComponent](s.entityManager, id)
	if app.Hidden || app.Alpha <= 0 {
		return
	}

	if backdrop, ok := ecs.GetComponent[*components.BackdropComponent](s.entityManager, id); ok {
		s.drawBackdrop(screen, backdrop, app)
		return
	}

	if item, ok := ecs.GetComponent[*components.ItemViewComponent](s.entityManager, id); ok {
		layer := s.layer(id, config.ItemViewWidth, config.ItemViewHeight)
		layer.Clear()
		s.drawItemView(layer, item)
		s.composite(screen, id, layer, app)
		return
	}

	if button, ok := ecs.GetComponent[*components.CircularButtonComponent](s.entityManager, id); ok {
		// 预留投影空间
		size := button.Diameter + 2*(config.ShadowBlurRadius+config.ShadowOffsetY)
		layer := s.layer(id, size, size)
		layer.Clear()
		s.drawCircularButton(layer, button, app.ShadowAlpha)
		s.composite(screen, id, layer, app)
	}
}

// layer 获取（或重建）实体的离屏图像
func (s *RenderSystem) layer(id ecs.EntityID, width, height float64) *ebiten.Image {
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	if layer, ok := s.layers[id]; ok {
		if b := layer.Bounds(); b.Dx() == w && b.Dy() == h {
			return layer
		}
		layer.Deallocate()
	}
	layer := ebiten.NewImage(w, h)
	s.layers[id] = layer
	return layer
}

// composite 以实体中心为锚点，把离屏图像缩放、旋转后绘制到屏幕
func (s *RenderSystem) composite(screen *ebiten.Image, id ecs.EntityID, layer *ebiten.Image, app *components.AppearanceComponent) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	b := layer.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		op.GeoM.Scale(scale.ScaleX, scale.ScaleY)
	}
	op.GeoM.Rotate(app.Rotation)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleAlpha(float32(app.Alpha))
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(layer, op)
}

// drawBackdrop 绘制全表面遮罩（非半透明模式下不可见，只负责拦截点击）
func (s *RenderSystem) drawBackdrop(screen *ebiten.Image, backdrop *components.BackdropComponent, app *components.AppearanceComponent) {
	if !backdrop.Translucent {
		return
	}
	b := screen.Bounds()
	clr := scaleAlpha(backdrop.Color, app.Alpha)
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), clr, false)
}

// drawItemView 在 200x35 的离屏图像上绘制标签底板和圆形按钮
// 组件中的坐标相对视图中心，这里换算成图像坐标
func (s *RenderSystem) drawItemView(dst *ebiten.Image, item *components.ItemViewComponent) {
	originX := float32(config.ItemViewWidth / 2)
	originY := float32(config.ItemViewHeight / 2)

	labelColor, textColor, buttonColor := item.LabelColor, item.TextColor, item.ButtonColor
	if item.Disabled {
		labelColor = dim(labelColor)
		textColor = dim(textColor)
		buttonColor = dim(buttonColor)
	}

	if item.Text != "" {
		r := item.LabelRect
		fillRoundedRect(dst,
			originX+float32(r.X), originY+float32(r.Y),
			float32(r.Width), float32(r.Height),
			config.LabelCornerRadius, labelColor)

		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(float64(originX)+r.X+r.Width/2, float64(originY)+r.Y+r.Height/2)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(dst, item.Text, utils.LabelFace(), op)
	}

	if item.HidesButton {
		return
	}

	cx := originX + float32(item.ButtonCenterX)
	radius := float32(item.ButtonDiameter / 2)
	vector.FillCircle(dst, cx, originY, radius, buttonColor, true)

	if item.Icon != nil {
		drawIconInCircle(dst, item.Icon, float64(cx), float64(originY), item.ButtonDiameter)
		return
	}
	if item.Glyph != "" {
		drawGlyph(dst, item.Glyph, float64(cx), float64(originY), 1.5, textColor)
	}
}

// drawCircularButton 在离屏图像中心绘制圆形按钮（含投影）
func (s *RenderSystem) drawCircularButton(dst *ebiten.Image, button *components.CircularButtonComponent, shadowAlpha float64) {
	b := dst.Bounds()
	cx := float32(b.Dx()) / 2
	cy := float32(b.Dy()) / 2
	radius := float32(button.Diameter / 2)

	if button.HasShadow && shadowAlpha > 0 {
		// 由外向内叠加几圈低透明度圆形，模拟模糊投影
		steps := int(config.ShadowBlurRadius)
		for i := steps; i > 0; i-- {
			a := shadowAlpha * 0.5 / float64(steps)
			vector.FillCircle(dst, cx, cy+config.ShadowOffsetY, radius+float32(i), color.RGBA{A: uint8(255 * a)}, true)
		}
	}

	bg := button.BackgroundColor
	if button.Translucent {
		bg = color.RGBA{}
	}
	if button.Highlighted {
		bg = dim(bg)
	}
	if bg.A > 0 {
		vector.FillCircle(dst, cx, cy, radius, bg, true)
	}

	if button.Icon != nil {
		drawIconInCircle(dst, button.Icon, float64(cx), float64(cy), button.Diameter)
		return
	}
	if button.Title != "" {
		scale := button.TitleScale
		if scale <= 0 {
			scale = 1
		}
		drawGlyph(dst, button.Title, float64(cx), float64(cy), scale, button.TitleColor)
	}
}

// drawGlyph 以 (cx, cy) 为中心绘制放大的单个字形
func drawGlyph(dst *ebiten.Image, glyph string, cx, cy, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	text.Draw(dst, glyph, utils.LabelFace(), op)
}

// drawIconInCircle 把图标等比缩放到圆的内接正方形中
func drawIconInCircle(dst, icon *ebiten.Image, cx, cy, diameter float64) {
	b := icon.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	side := diameter / math.Sqrt2
	scale := math.Min(side/float64(b.Dx()), side/float64(b.Dy()))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(icon, op)
}

// fillRoundedRect 绘制圆角矩形
func fillRoundedRect(dst *ebiten.Image, x, y, w, h, radius float32, clr color.Color) {
	if radius*2 > h {
		radius = h / 2
	}
	if radius*2 > w {
		radius = w / 2
	}

	var path vector.Path
	path.MoveTo(x+radius, y)
	path.LineTo(x+w-radius, y)
	path.QuadTo(x+w, y, x+w, y+radius)
	path.LineTo(x+w, y+h-radius)
	path.QuadTo(x+w, y+h, x+w-radius, y+h)
	path.LineTo(x+radius, y+h)
	path.QuadTo(x, y+h, x, y+h-radius)
	path.LineTo(x, y+radius)
	path.QuadTo(x, y, x+radius, y)
	path.Close()

	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, &path, nil, drawOp)
}

// dim 禁用/按下状态的暗色
func dim(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 5 * 4, G: c.G / 5 * 4, B: c.B / 5 * 4, A: c.A}
}

// scaleAlpha 按不透明度缩放预乘颜色
func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	f := math.Max(alpha, 0)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

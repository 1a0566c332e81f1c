package fab

import (
	"image/color"

	"github.com/decker502/fab/pkg/components"
	"github.com/decker502/fab/pkg/config"
	"github.com/decker502/fab/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// defaultTitle 主按钮默认字形
const defaultTitle = "+"

var titleColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}

// PrimaryButton 始终可见的圆形主按钮
type PrimaryButton struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

func newPrimaryButton(em *ecs.EntityManager, cfg config.FabConfig, onClick func(), onHover func(bool)) *PrimaryButton {
	b := &PrimaryButton{
		em: em,
		id: em.CreateEntity(),
	}

	translucent := cfg.Kind == config.KindTranslucent
	background := cfg.BackgroundColor.RGBA
	if translucent {
		background = color.RGBA{}
	}

	ecs.AddComponent(em, b.id, &components.PositionComponent{})
	ecs.AddComponent(em, b.id, &components.SizeComponent{Width: cfg.Diameter, Height: cfg.Diameter})
	ecs.AddComponent(em, b.id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	ecs.AddComponent(em, b.id, &components.AppearanceComponent{Alpha: 1, ShadowAlpha: 1, ZIndex: config.ZIndexButton})
	ecs.AddComponent(em, b.id, &components.CircularButtonComponent{
		Diameter:        cfg.Diameter,
		BackgroundColor: background,
		Title:           defaultTitle,
		TitleScale:      config.TitleGlyphScale,
		TitleColor:      titleColor,
		HasShadow:       !translucent,
		Translucent:     translucent,
	})
	// 主按钮不受输入闸门控制
	ecs.AddComponent(em, b.id, &components.ClickableComponent{
		Shape:     components.HitCircle{Radius: cfg.Diameter / 2},
		IsEnabled: true,
		OnClick:   onClick,
	})
	ecs.AddComponent(em, b.id, &components.HoverComponent{
		Regions: []components.HitRect{components.CenteredRect(0, 0, cfg.Diameter, cfg.Diameter)},
		OnHover: onHover,
	})

	return b
}

// ID 主按钮实体
func (b *PrimaryButton) ID() ecs.EntityID {
	return b.id
}

// Center 主按钮中心
func (b *PrimaryButton) Center() Point {
	pos, ok := ecs.GetComponent[*components.PositionComponent](b.em, b.id)
	if !ok {
		return Point{}
	}
	return Point{X: pos.X, Y: pos.Y}
}

// MoveTo 移动主按钮，返回位置是否变化
func (b *PrimaryButton) MoveTo(p Point) bool {
	pos, ok := ecs.GetComponent[*components.PositionComponent](b.em, b.id)
	if !ok || (pos.X == p.X && pos.Y == p.Y) {
		return false
	}
	pos.X, pos.Y = p.X, p.Y
	return true
}

// HasCustomImage 是否显示自定义图片（自定义图片不参与旋转）
func (b *PrimaryButton) HasCustomImage() bool {
	button, ok := ecs.GetComponent[*components.CircularButtonComponent](b.em, b.id)
	return ok && button.Icon != nil
}

// SetTitle 显示字形标题，清除自定义图片
func (b *PrimaryButton) SetTitle(title string) {
	if button, ok := ecs.GetComponent[*components.CircularButtonComponent](b.em, b.id); ok {
		button.Icon = nil
		button.Title = title
	}
}

// SetImage 显示自定义图片，旋转复位由 Fab 负责
func (b *PrimaryButton) SetImage(img *ebiten.Image) {
	if button, ok := ecs.GetComponent[*components.CircularButtonComponent](b.em, b.id); ok {
		button.Icon = img
	}
}

// SetBackground 设置背景色和高亮（半透明按钮忽略背景色）
func (b *PrimaryButton) SetBackground(c color.RGBA, highlighted bool) {
	button, ok := ecs.GetComponent[*components.CircularButtonComponent](b.em, b.id)
	if !ok {
		return
	}
	if !button.Translucent {
		button.BackgroundColor = c
	}
	button.Highlighted = highlighted
}

// resetHover 清除悬停状态：指针仍在按钮上时下一帧重新触发进入
func (b *PrimaryButton) resetHover() {
	if hover, ok := ecs.GetComponent[*components.HoverComponent](b.em, b.id); ok {
		hover.Hovered = false
	}
}

func (b *PrimaryButton) destroy() {
	if app, ok := ecs.GetComponent[*components.AppearanceComponent](b.em, b.id); ok {
		app.Hidden = true
	}
	b.em.DestroyEntity(b.id)
}

package fab

import (
	"image/color"
	"strings"

	"github.com/decker502/fab/pkg/components"
	"github.com/decker502/fab/pkg/config"
	"github.com/decker502/fab/pkg/ecs"
	"github.com/decker502/fab/pkg/systems"
	"github.com/decker502/fab/pkg/utils"
)

var (
	itemLabelColor  = color.RGBA{R: 236, G: 236, B: 236, A: 255}
	itemTextColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	itemButtonColor = color.RGBA{R: 236, G: 236, B: 236, A: 255}
)

// ItemView 菜单项视图（圆形按钮 + 可选标签）
//
// 一个 ItemView 对应一个实体，按钮位于靠近主按钮的一端，标签在另一侧。
// 视图只负责显示和命中区域，不持有任何状态机。
type ItemView struct {
	em      *ecs.EntityManager
	id      ecs.EntityID
	item    *Item
	side    float64
	binding *Binding
}

// newItemView 创建菜单项实体
// side 为 -1 时按钮在视图右端（菜单项位于主按钮左侧），+1 时镜像
func newItemView(em *ecs.EntityManager, item *Item, side float64, onClick func(), onHover func(bool)) *ItemView {
	v := &ItemView{
		em:   em,
		id:   em.CreateEntity(),
		item: item,
		side: side,
	}

	ecs.AddComponent(em, v.id, &components.PositionComponent{})
	ecs.AddComponent(em, v.id, &components.SizeComponent{Width: config.ItemViewWidth, Height: config.ItemViewHeight})
	ecs.AddComponent(em, v.id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	ecs.AddComponent(em, v.id, &components.AppearanceComponent{Alpha: 0, ZIndex: config.ZIndexItem})
	ecs.AddComponent(em, v.id, &components.ItemViewComponent{
		LabelColor:     itemLabelColor,
		TextColor:      itemTextColor,
		ButtonDiameter: config.ItemButtonDiameter,
		ButtonColor:    itemButtonColor,
	})
	ecs.AddComponent(em, v.id, &components.ClickableComponent{OnClick: onClick})
	ecs.AddComponent(em, v.id, &components.HoverComponent{OnHover: onHover})

	v.Refresh()
	return v
}

// ID 视图实体
func (v *ItemView) ID() ecs.EntityID {
	return v.id
}

// Item 视图对应的菜单项
func (v *ItemView) Item() *Item {
	return v.item
}

// Refresh 按菜单项当前的文字、图标和禁用状态重建视图
// 命中区域变化时重新注册悬停区域
func (v *ItemView) Refresh() {
	view, ok := ecs.GetComponent[*components.ItemViewComponent](v.em, v.id)
	if !ok {
		return
	}

	geo := computeItemGeometry(v.item, v.side)
	view.Text = geo.text
	view.LabelRect = geo.label
	view.ButtonCenterX = geo.buttonCenterX
	view.HidesButton = geo.hidesButton
	view.Glyph = v.item.Icon.Glyph
	view.Icon = v.item.Icon.Image
	view.Disabled = v.item.IsDisabled

	shape := components.HitUnion{}
	regions := make([]components.HitRect, 0, 2)
	if !geo.hidesButton {
		r := config.ItemButtonDiameter / 2
		shape = append(shape, components.HitCircle{CenterX: geo.buttonCenterX, Radius: r})
		regions = append(regions, components.CenteredRect(geo.buttonCenterX, 0, config.ItemButtonDiameter, config.ItemButtonDiameter))
	}
	if geo.text != "" {
		shape = append(shape, geo.label)
		regions = append(regions, geo.label)
	}

	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](v.em, v.id); ok {
		clickable.Shape = shape
	}
	systems.RetrackHover(v.em, v.id, regions)
}

// SnapTo 不经动画直接放到 p，并设置不透明度
func (v *ItemView) SnapTo(p Point, alpha float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](v.em, v.id); ok {
		pos.X, pos.Y = p.X, p.Y
	}
	if app, ok := ecs.GetComponent[*components.AppearanceComponent](v.em, v.id); ok {
		app.Alpha = alpha
	}
}

// clearHover 清除悬停标记，指针仍在视图上时下一次更新重新触发进入
func (v *ItemView) clearHover() {
	if hover, ok := ecs.GetComponent[*components.HoverComponent](v.em, v.id); ok {
		hover.Hovered = false
	}
}

// Position 视图当前中心
func (v *ItemView) Position() Point {
	pos, ok := ecs.GetComponent[*components.PositionComponent](v.em, v.id)
	if !ok {
		return Point{}
	}
	return Point{X: pos.X, Y: pos.Y}
}

// bindGate 把视图的可点击状态绑定到输入闸门
func (v *ItemView) bindGate(gate *InputGate) {
	v.binding = gate.Bind(v.setInputEnabled)
}

func (v *ItemView) setInputEnabled(enabled bool) {
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](v.em, v.id); ok {
		clickable.IsEnabled = enabled
	}
}

// detach 移除视图：取消闸门订阅，立即隐藏，实体在帧末清理
func (v *ItemView) detach() {
	v.binding.Remove()
	v.binding = nil
	v.setInputEnabled(false)
	if app, ok := ecs.GetComponent[*components.AppearanceComponent](v.em, v.id); ok {
		app.Hidden = true
	}
	v.em.DestroyEntity(v.id)
}

// itemGeometry 菜单项视图内部的布局（相对视图中心）
type itemGeometry struct {
	text          string
	label         components.HitRect
	buttonCenterX float64
	hidesButton   bool
}

// computeItemGeometry 计算标签底板和按钮的位置
//
// 以 side=-1 为例（按钮在右端）：按钮占据视图最右侧 35 像素，
// 标签底板右边缘距按钮 LabelButtonGap；没有按钮时标签贴齐视图右边缘。
// 文字超出可用宽度时截断。
func computeItemGeometry(item *Item, side float64) itemGeometry {
	halfWidth := config.ItemViewWidth / 2
	geo := itemGeometry{
		hidesButton:   item.Icon.IsEmpty(),
		buttonCenterX: -side * (halfWidth - config.ItemButtonDiameter/2),
	}

	text := strings.TrimSpace(item.Text)
	if text == "" {
		return geo
	}

	labelEdge := halfWidth
	if !geo.hidesButton {
		labelEdge = halfWidth - config.ItemButtonDiameter - config.LabelButtonGap
	}
	maxTextWidth := labelEdge + halfWidth - config.LabelInsetX

	geo.text = utils.TruncateLabel(text, maxTextWidth)
	if geo.text == "" {
		return geo
	}

	textWidth, textHeight := utils.MeasureLabel(geo.text)
	width := textWidth + config.LabelInsetX
	height := textHeight + config.LabelInsetY

	x := labelEdge - width
	if side > 0 {
		x = -labelEdge
	}
	geo.label = components.HitRect{X: x, Y: -height / 2, Width: width, Height: height}
	return geo
}

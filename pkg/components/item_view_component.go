package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ItemViewComponent 菜单项视图（标签底板 + 圆形按钮）
//
// 视图宽 200、高 35，按钮位于靠近主按钮的一端，标签位于另一侧。
// 所有矩形坐标相对实体中心。
type ItemViewComponent struct {
	// Text 标签文字，为空时不绘制标签
	Text string
	// LabelRect 标签底板区域
	LabelRect HitRect
	// LabelColor 标签底板颜色
	LabelColor color.RGBA
	// TextColor 标签文字颜色
	TextColor color.RGBA

	// ButtonCenterX 按钮中心的水平偏移（垂直方向与实体中心对齐）
	ButtonCenterX float64
	// ButtonDiameter 按钮直径
	ButtonDiameter float64
	// ButtonColor 按钮背景色
	ButtonColor color.RGBA
	// Glyph 按钮上显示的单个字形（Icon 非空时忽略）
	Glyph string
	// Icon 按钮图标（可选）
	Icon *ebiten.Image
	// HidesButton 既无图标也无字形时只显示标签
	HidesButton bool
	// Disabled 菜单项被禁用时以暗色绘制
	Disabled bool
}

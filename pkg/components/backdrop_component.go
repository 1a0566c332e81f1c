package components

import (
	"image/color"

	"github.com/decker502/fab/pkg/ecs"
)

// BackdropComponent 全表面背景遮罩
//
// 用于捕获菜单外部点击以收起菜单，可选绘制半透明效果。
// 命中测试时排除 Excludes 中实体的区域：点在主按钮或菜单项上时遮罩不吞掉点击，
// 即使这些实体当前被禁用。
type BackdropComponent struct {
	// Color 遮罩颜色（Translucent 为 false 时通常为全透明）
	Color color.RGBA
	// Translucent 是否绘制半透明效果
	Translucent bool
	// Excludes 命中测试排除的实体
	Excludes []ecs.EntityID
}

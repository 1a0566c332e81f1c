package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// CircularButtonComponent 圆形按钮（主按钮和菜单项按钮共用）
//
// 纯数据组件：颜色、标题字形、图标和高亮状态由 fab 包写入，RenderSystem 读取。
type CircularButtonComponent struct {
	// Diameter 直径（像素）
	Diameter float64
	// BackgroundColor 当前背景色
	BackgroundColor color.RGBA
	// Title 单个字形标题（如 "+"），Icon 非空时忽略
	Title string
	// TitleScale 标题字形的放大倍数
	TitleScale float64
	// TitleColor 标题颜色
	TitleColor color.RGBA
	// Icon 自定义图标（可选）
	Icon *ebiten.Image
	// Highlighted 是否处于按下/选中高亮
	Highlighted bool
	// HasShadow 是否绘制投影（透明度取 AppearanceComponent.ShadowAlpha）
	HasShadow bool
	// Translucent 半透明外观（不绘制实色背景）
	Translucent bool
}

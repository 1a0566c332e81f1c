package components

// PositionComponent 实体视觉中心在宿主表面上的坐标
//
// 注意：与图片左上角锚点不同，这里的 X/Y 始终代表实体中心，
// 缩放和旋转也以该点为锚点进行。
type PositionComponent struct {
	X float64
	Y float64
}

// SizeComponent 实体未缩放时的尺寸（像素）
type SizeComponent struct {
	Width  float64
	Height float64
}

// AppearanceComponent 与位置无关的可视属性
type AppearanceComponent struct {
	// Rotation 以中心为锚点的旋转角度（弧度）
	Rotation float64
	// Alpha 不透明度（0.0 - 1.0）
	Alpha float64
	// ShadowAlpha 投影不透明度（0.0 - 1.0），没有投影的实体忽略此值
	ShadowAlpha float64
	// Hidden 完全隐藏：不渲染、不参与命中测试（与 Alpha=0 不同）
	Hidden bool
	// ZIndex 渲染与命中测试顺序，数值大的在上层
	ZIndex int
}

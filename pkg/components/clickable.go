package components

// HitShape 命中区域，坐标相对于实体中心（未缩放）
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect 轴对齐矩形命中区域，X/Y 为左上角（相对实体中心）
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains 判断点是否在矩形内（含边界）
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// CenteredRect 创建以 (cx, cy) 为中心的矩形
func CenteredRect(cx, cy, width, height float64) HitRect {
	return HitRect{X: cx - width/2, Y: cy - height/2, Width: width, Height: height}
}

// HitCircle 圆形命中区域
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains 判断点是否在圆内（含边界）
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitUnion 多个区域的并集（菜单项的按钮 + 标签底板）
type HitUnion []HitShape

// Contains 任一子区域命中即命中
func (u HitUnion) Contains(x, y float64) bool {
	for _, s := range u {
		if s.Contains(x, y) {
			return true
		}
	}
	return false
}

// HitEverywhere 覆盖整个表面的命中区域（背景遮罩）
type HitEverywhere struct{}

// Contains 总是命中
func (HitEverywhere) Contains(x, y float64) bool { return true }

// ClickableComponent 标记实体可以被鼠标点击
// 定义了可点击区域和是否启用点击
type ClickableComponent struct {
	Shape     HitShape // 可点击区域（相对实体中心）
	IsEnabled bool     // 是否可以被点击（输入闸门关闭时为 false）
	OnClick   func()   // 点击回调
}

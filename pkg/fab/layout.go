package fab

import (
	"github.com/decker502/fab/pkg/config"
)

// Point 表面坐标系中的点（Y 向下）
type Point struct {
	X, Y float64
}

// Slot 单个菜单项的两个停靠位置（均为视图中心）
type Slot struct {
	// Collapsed 收起时的位置：与主按钮中心同高，只做横向偏移，藏在主按钮后面
	Collapsed Point
	// Expanded 展开后的位置
	Expanded Point
}

// LayoutParams 菜单项布局的全部输入
type LayoutParams struct {
	// Center 主按钮中心
	Center Point
	// Diameter 主按钮直径
	Diameter float64
	// Count 菜单项数量
	Count int
	// ItemOffset 相邻菜单项之间的间距
	ItemOffset float64
	// FirstItemOffset 主按钮边缘与第一个菜单项之间的间距
	FirstItemOffset float64
	// ItemHeight 菜单项高度
	ItemHeight float64
	// LateralOffset 菜单项视图中心相对主按钮中心的固定横向偏移
	LateralOffset float64
	// HorizontalOffset 按索引追加的横向偏移（可为 nil，默认 0）
	HorizontalOffset func(index int) float64
	// Direction 展开方向：-1 向上（锚定在底边），+1 向下（锚定在顶边）
	Direction float64
	// Side 菜单项相对主按钮的横向方向：-1 向左（锚定在右侧），+1 向右（锚定在左侧）
	Side float64
}

// DirectionsFor 根据锚定角落返回展开方向和横向方向
// 菜单项总是远离锚定的边缘，并朝表面内部偏移
func DirectionsFor(anchor config.Anchor) (direction, side float64) {
	direction = -1
	if anchor.IsTop() {
		direction = 1
	}
	side = -1
	if anchor.IsLeft() {
		side = 1
	}
	return direction, side
}

// Displacement 第 i 个菜单项展开后，其中心到主按钮中心的距离
//
//	i*(itemOffset+itemHeight) + firstItemOffset + radius + itemHeight/2
func Displacement(p LayoutParams, i int) float64 {
	return EdgeOffset(p, i) + p.ItemHeight/2
}

// EdgeOffset 第 i 个菜单项展开后，其近端边缘到主按钮中心的距离
func EdgeOffset(p LayoutParams, i int) float64 {
	return float64(i)*(p.ItemOffset+p.ItemHeight) + p.FirstItemOffset + p.Diameter/2
}

// ComputeLayout 计算每个菜单项的收起/展开位置
// 纯函数：相同输入总是得到相同输出，Count <= 0 时返回空切片
func ComputeLayout(p LayoutParams) []Slot {
	if p.Count <= 0 {
		return []Slot{}
	}

	slots := make([]Slot, p.Count)
	for i := range slots {
		lateral := p.LateralOffset
		if p.HorizontalOffset != nil {
			lateral += p.HorizontalOffset(i)
		}
		x := p.Center.X + p.Side*lateral

		slots[i] = Slot{
			Collapsed: Point{X: x, Y: p.Center.Y},
			Expanded:  Point{X: x, Y: p.Center.Y + p.Direction*Displacement(p, i)},
		}
	}
	return slots
}

// ContentHeight 完全展开时所需的内容高度，可用于确定宿主表面的最小高度
//
//	margin + diameter [+ N*itemHeight + (N-1)*itemOffset + firstItemOffset]
func ContentHeight(p LayoutParams, margin float64) float64 {
	height := margin + p.Diameter
	if p.Count <= 0 {
		return height
	}
	n := float64(p.Count)
	return height + n*p.ItemHeight + (n-1)*p.ItemOffset + p.FirstItemOffset
}

// AnchoredCenter 主按钮中心：距锚定角落两条边各 margin，按钮完整落在表面内
func AnchoredCenter(anchor config.Anchor, margin, diameter, width, height float64) Point {
	inset := margin + diameter/2

	x := width - inset
	if anchor.IsLeft() {
		x = inset
	}
	y := height - inset
	if anchor.IsTop() {
		y = inset
	}
	return Point{X: x, Y: y}
}

package fab

import (
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// Icon 菜单项按钮上的图标：图片或单个字形，二者都为空时只显示标签
type Icon struct {
	Image *ebiten.Image
	Glyph string
}

// GlyphIcon 以单个字形（如 "★"）作为图标
func GlyphIcon(glyph string) Icon {
	return Icon{Glyph: glyph}
}

// ImageIcon 以图片作为图标
func ImageIcon(img *ebiten.Image) Icon {
	return Icon{Image: img}
}

// IsEmpty 图标是否为空
func (i Icon) IsEmpty() bool {
	return i.Image == nil && i.Glyph == ""
}

// ItemHandler 菜单项被选中时的处理函数
// 以值的形式存放在 Item 中，不捕获所属的 Fab
type ItemHandler struct {
	OnSelect func(item *Item, index int)
}

// Item 一个菜单项
type Item struct {
	// ID 稳定标识，替换菜单项列表后仍可用于查找
	ID uuid.UUID
	// Text 标签文字，可为空
	Text string
	// Icon 按钮图标
	Icon Icon
	// Handler 选中时的处理函数
	Handler ItemHandler
	// IsDisabled 禁用的菜单项被点击时不调用处理函数
	IsDisabled bool
	// DismissOnSelect 选中后是否收起菜单（默认 true）
	DismissOnSelect bool
}

// NewItem 创建菜单项，DismissOnSelect 默认为 true
func NewItem(text string, icon Icon, onSelect func(item *Item, index int)) *Item {
	return &Item{
		ID:              uuid.New(),
		Text:            text,
		Icon:            icon,
		Handler:         ItemHandler{OnSelect: onSelect},
		DismissOnSelect: true,
	}
}

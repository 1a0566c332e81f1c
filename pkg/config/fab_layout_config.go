package config

// FAB 布局与动画相关的常量配置
//
// 坐标系与 ebiten 一致：原点在左上角，X 向右增加，Y 向下增加。
// 所有位置都指实体的视觉中心（PositionComponent.X/Y）。

const (
	// DefaultAnchorMargin 主按钮与锚定角落两条边的默认距离（像素）
	DefaultAnchorMargin = 15.0

	// ItemViewWidth 菜单项视图宽度（标签 + 圆形按钮）
	ItemViewWidth = 200.0
	// ItemViewHeight 菜单项视图高度，也是布局时使用的 itemHeight
	ItemViewHeight = 35.0
	// ItemButtonDiameter 菜单项圆形按钮直径
	ItemButtonDiameter = 35.0

	// ItemLateralOffset 菜单项视图中心相对主按钮中心的水平偏移
	// 200 宽的视图中心左移 83 后，右端 35 直径的按钮中心恰好落在主按钮中心附近
	ItemLateralOffset = 83.0

	// LabelInsetX / LabelInsetY 标签文字与标签底板之间的内边距（两侧合计）
	LabelInsetX = 10.0
	LabelInsetY = 10.0
	// LabelButtonGap 标签底板右边缘与菜单项按钮左边缘之间的距离
	LabelButtonGap = 5.0
	// LabelCornerRadius 标签底板圆角
	LabelCornerRadius = 3.0
)

const (
	// MenuAnimationDuration 展开/收起动画时长（秒）
	MenuAnimationDuration = 0.3
	// HoverAnimationDuration 悬停缩放动画时长（秒）
	HoverAnimationDuration = 0.2
)

const (
	// ShadowBlurRadius 主按钮投影半径（像素）
	ShadowBlurRadius = 5.0
	// ShadowOffsetY 主按钮投影的垂直偏移
	ShadowOffsetY = 2.0
	// TranslucentBackdropAlpha 半透明遮罩的不透明度（0-255）
	TranslucentBackdropAlpha = 150
	// TitleGlyphScale 主按钮 "+" 字形相对内置字体的放大倍数
	TitleGlyphScale = 2.5
)

// Z 轴层级：宿主内容 < 背景遮罩 < 菜单项 < 主按钮
const (
	ZIndexHost     = 0
	ZIndexBackdrop = 100
	ZIndexItem     = 200
	ZIndexButton   = 300
)

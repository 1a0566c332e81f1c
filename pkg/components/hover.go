package components

// HoverComponent 光标悬停跟踪区域（CursorHoverTracker 的数据部分）
//
// 工作流程：
//  1. 创建实体时注册 Regions（相对实体中心的矩形）
//  2. HoverSystem 每帧根据指针位置检测进入/离开，调用 OnHover(true/false)
//  3. 区域尺寸变化时调用 HoverSystem.Retrack 替换区域，旧区域被注销
//
// 实体的 ClickableComponent.IsEnabled 为 false 时不产生悬停反馈。
type HoverComponent struct {
	// Regions 跟踪区域（任一区域包含指针即视为悬停）
	Regions []HitRect
	// Hovered 当前是否处于悬停状态
	Hovered bool
	// OnHover 进入时传入 true，离开时传入 false
	OnHover func(entered bool)
}

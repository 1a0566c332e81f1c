// Package fab 实现浮动操作按钮（FAB）
//
// 一个 Fab 由以下实体组成：
//   - 圆形主按钮（始终可见）
//   - 覆盖整个表面的背景遮罩（捕获外部点击以收起菜单）
//   - 每个菜单项一个视图
//
// Fab 只负责组合实体、计算布局和驱动状态机；
// 动画、悬停、点击分发和渲染由 systems 包中的系统完成。
package fab

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/fab/pkg/components"
	"github.com/decker502/fab/pkg/config"
	"github.com/decker502/fab/pkg/ecs"
	"github.com/decker502/fab/pkg/systems"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// translucentBackdropColor 半透明遮罩颜色（预乘）
var translucentBackdropColor = color.RGBA{A: config.TranslucentBackdropAlpha}

// Animator 动画原语
//
// Animate 以相同时长并发执行一组属性动画，全部完成时调用一次 onComplete；
// TargetValue 返回某属性进行中的动画目标值。
// systems.AnimationSystem 实现了此接口。
type Animator interface {
	Animate(duration float64, targets []components.AnimTarget, onComplete func())
	TargetValue(entity ecs.EntityID, prop components.AnimProperty) (float64, bool)
}

// Options 创建 Fab 的可选参数
type Options struct {
	// Items 初始菜单项（从靠近主按钮的一端开始排列）
	Items []*Item
	// DismissAll 多个 Fab 共享的"收起全部"通道，可为 nil
	DismissAll *Emitter
	// HorizontalItemOffset 按索引追加的横向偏移，可为 nil
	HorizontalItemOffset func(index int) float64
	// OnButtonClick 替换主按钮的默认行为（切换菜单），可为 nil
	OnButtonClick func(f *Fab)
	// SurfaceWidth / SurfaceHeight 宿主表面尺寸
	SurfaceWidth  float64
	SurfaceHeight float64
}

// Fab 浮动操作按钮
type Fab struct {
	em       *ecs.EntityManager
	animator Animator
	cfg      config.FabConfig

	button   *PrimaryButton
	backdrop ecs.EntityID
	items    []*Item
	views    []*ItemView
	slots    []Slot

	events          *Emitter
	gate            *InputGate
	machine         *MenuStateMachine
	backdropBinding *Binding

	dismissAll    *Emitter
	dismissSub    *Subscription
	hOffset       func(index int) float64
	onButtonClick func(f *Fab)

	surfaceWidth  float64
	surfaceHeight float64
	closed        bool
}

// New 创建 Fab 并把实体加入 em
// 配置非法时返回包装了 config.ErrInvalidConfig 的错误，不做夹取
func New(em *ecs.EntityManager, animator Animator, cfg config.FabConfig, opts Options) (*Fab, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("create fab: %w", err)
	}
	if em == nil || animator == nil {
		return nil, fmt.Errorf("create fab: %w: entity manager and animator are required", config.ErrInvalidConfig)
	}
	if opts.SurfaceWidth < 0 || opts.SurfaceHeight < 0 {
		return nil, fmt.Errorf("create fab: %w: negative surface size %vx%v",
			config.ErrInvalidConfig, opts.SurfaceWidth, opts.SurfaceHeight)
	}

	// 半透明按钮没有实色背景，也就没有需要隐藏的投影
	if cfg.Kind == config.KindTranslucent {
		cfg.HidesShadowWhenActive = false
	}

	f := &Fab{
		em:            em,
		animator:      animator,
		cfg:           cfg,
		events:        NewEmitter(),
		dismissAll:    opts.DismissAll,
		hOffset:       opts.HorizontalItemOffset,
		onButtonClick: opts.OnButtonClick,
		surfaceWidth:  opts.SurfaceWidth,
		surfaceHeight: opts.SurfaceHeight,
	}
	f.gate = NewInputGate(f.events)
	f.machine = newMenuStateMachine(f.gate, f)

	f.createBackdrop()
	f.button = newPrimaryButton(em, cfg, f.buttonClicked, func(entered bool) {
		f.hoverScale(f.button.ID(), entered)
	})
	f.button.MoveTo(f.anchoredCenter())

	if cfg.KeyEquivalent != "" {
		ke, err := config.ParseKeyEquivalent(cfg.KeyEquivalent)
		if err != nil {
			return nil, fmt.Errorf("create fab: %w", err)
		}
		ecs.AddComponent(em, f.button.ID(), &components.ShortcutComponent{
			Key:       ke.Key,
			Ctrl:      ke.Ctrl,
			Shift:     ke.Shift,
			Alt:       ke.Alt,
			Meta:      ke.Meta,
			OnTrigger: f.buttonClicked,
		})
	}

	if f.dismissAll != nil {
		f.dismissSub = f.dismissAll.Subscribe(SignalDismissAll, f.Dismiss)
	}

	f.setItems(opts.Items)
	f.relayout()
	f.settleCollapsed()

	log.Printf("[Fab] 创建完成: anchor=%s, diameter=%.0f, items=%d", cfg.Anchor, cfg.Diameter, len(f.items))
	return f, nil
}

// ========== 状态 ==========

// State 当前菜单状态
func (f *Fab) State() MenuState {
	return f.machine.State()
}

// IsAnimating 是否正在展开或收起
func (f *Fab) IsAnimating() bool {
	return f.machine.IsAnimating()
}

// IsActive 菜单是否已展开或正在展开
func (f *Fab) IsActive() bool {
	return f.machine.IsActive()
}

// GateEnabled 输入闸门是否打开
func (f *Fab) GateEnabled() bool {
	return f.gate.Enabled()
}

// Toggle 展开或收起菜单，动画进行中时为空操作
// 返回是否开始了一次过渡
func (f *Fab) Toggle() bool {
	if f.closed {
		return false
	}
	return f.machine.Toggle()
}

// Dismiss 收起菜单，未展开时为空操作
func (f *Fab) Dismiss() {
	if f.closed {
		return
	}
	f.machine.Dismiss()
}

// ========== 菜单项 ==========

// Items 返回菜单项列表的副本
func (f *Fab) Items() []*Item {
	return append([]*Item(nil), f.items...)
}

// ReplaceItems 整体替换菜单项
//
// 旧视图立即移除；新视图不经动画直接吸附到当前的视觉状态：
// 展开（或正在展开）时位于展开位置且完全不透明，否则位于停靠位置且透明。
func (f *Fab) ReplaceItems(items []*Item) {
	if f.closed {
		return
	}

	f.setItems(items)
	f.relayout()

	if f.machine.IsActive() {
		for i, view := range f.views {
			view.SnapTo(f.slots[i].Expanded, 1)
		}
	} else {
		f.settleItems()
	}

	log.Printf("[Fab] 替换菜单项: %d 项 (state=%s)", len(f.items), f.machine.State())
}

// SetItemDisabled 设置菜单项的禁用状态，返回是否找到该菜单项
func (f *Fab) SetItemDisabled(id uuid.UUID, disabled bool) bool {
	index := f.indexOf(id)
	if index < 0 {
		return false
	}
	f.items[index].IsDisabled = disabled
	f.views[index].Refresh()
	return true
}

// SetItemText 修改菜单项标签，命中和悬停区域随之更新
func (f *Fab) SetItemText(id uuid.UUID, text string) bool {
	index := f.indexOf(id)
	if index < 0 {
		return false
	}
	f.items[index].Text = text
	f.views[index].Refresh()
	return true
}

// ========== 视觉配置 ==========

// Config 返回当前配置的副本
func (f *Fab) Config() config.FabConfig {
	return f.cfg
}

// SetTitle 主按钮显示字形标题
func (f *Fab) SetTitle(title string) {
	f.button.SetTitle(title)
}

// SetImage 主按钮显示自定义图片，图片在展开时不旋转
// 进行中的旋转动画被接管，按钮立即回正
func (f *Fab) SetImage(img *ebiten.Image) {
	f.button.SetImage(img)
	if img != nil {
		f.snapProperty(f.button.ID(), components.PropRotation, 0)
	}
}

// SetBackgroundColor 收起状态下的背景色
func (f *Fab) SetBackgroundColor(c color.RGBA) {
	f.cfg.BackgroundColor = config.HexColor{RGBA: c}
	if !f.machine.IsActive() {
		f.button.SetBackground(c, false)
	}
}

// SetBackgroundColorSelected 展开状态下的背景色
func (f *Fab) SetBackgroundColorSelected(c color.RGBA) {
	f.cfg.BackgroundColorSelected = config.HexColor{RGBA: c}
	if f.machine.IsActive() {
		f.button.SetBackground(c, true)
	}
}

// SetHidesShadowWhenActive 展开时是否隐藏主按钮投影
func (f *Fab) SetHidesShadowWhenActive(hides bool) {
	if f.cfg.Kind == config.KindTranslucent {
		return
	}
	f.cfg.HidesShadowWhenActive = hides
	// 收起动画总是把投影恢复为 1，只需处理展开侧
	if f.machine.IsActive() {
		f.snapProperty(f.button.ID(), components.PropShadowAlpha, f.shadowAlpha(true))
	}
}

// SetUsesTranslucentBackground 展开时是否显示半透明遮罩
func (f *Fab) SetUsesTranslucentBackground(uses bool) {
	f.cfg.UsesTranslucentBackground = uses
	if backdrop, ok := ecs.GetComponent[*components.BackdropComponent](f.em, f.backdrop); ok {
		backdrop.Translucent = uses
	}
}

// ========== 几何 ==========

// Resize 宿主表面尺寸变化
// 主按钮位置随锚点移动；位置变化时按 FrameChanged 处理
func (f *Fab) Resize(width, height float64) {
	if f.closed || width < 0 || height < 0 {
		return
	}
	f.surfaceWidth, f.surfaceHeight = width, height
	if f.button.MoveTo(f.anchoredCenter()) {
		f.machine.FrameChanged()
	}
}

// ContentHeight 完全展开所需的高度
func (f *Fab) ContentHeight() float64 {
	return ContentHeight(f.layoutParams(), f.cfg.Margin)
}

// ButtonCenter 主按钮中心
func (f *Fab) ButtonCenter() Point {
	return f.button.Center()
}

// Slots 当前布局的副本
func (f *Fab) Slots() []Slot {
	return append([]Slot(nil), f.slots...)
}

// ButtonID 主按钮实体
func (f *Fab) ButtonID() ecs.EntityID {
	return f.button.ID()
}

// BackdropID 背景遮罩实体
func (f *Fab) BackdropID() ecs.EntityID {
	return f.backdrop
}

// ItemViewID 第 index 个菜单项的视图实体
func (f *Fab) ItemViewID(index int) (ecs.EntityID, bool) {
	if index < 0 || index >= len(f.views) {
		return ecs.InvalidEntity, false
	}
	return f.views[index].ID(), true
}

// Close 移除所有实体并取消全部订阅，之后的操作都是空操作
func (f *Fab) Close() {
	if f.closed {
		return
	}
	f.closed = true

	f.dismissSub.Remove()
	f.backdropBinding.Remove()
	for _, view := range f.views {
		view.detach()
	}
	f.views = nil
	f.items = nil

	f.button.destroy()
	if app, ok := ecs.GetComponent[*components.AppearanceComponent](f.em, f.backdrop); ok {
		app.Hidden = true
	}
	f.em.DestroyEntity(f.backdrop)

	log.Printf("[Fab] 已关闭")
}

// ========== 内部：实体 ==========

func (f *Fab) createBackdrop() {
	f.backdrop = f.em.CreateEntity()
	ecs.AddComponent(f.em, f.backdrop, &components.PositionComponent{})
	ecs.AddComponent(f.em, f.backdrop, &components.AppearanceComponent{
		Alpha:  0,
		Hidden: true,
		ZIndex: config.ZIndexBackdrop,
	})
	ecs.AddComponent(f.em, f.backdrop, &components.BackdropComponent{
		Color:       translucentBackdropColor,
		Translucent: f.cfg.UsesTranslucentBackground,
	})
	ecs.AddComponent(f.em, f.backdrop, &components.ClickableComponent{
		Shape:   components.HitEverywhere{},
		OnClick: f.machine.BackgroundClicked,
	})

	f.backdropBinding = f.gate.Bind(func(enabled bool) {
		if clickable, ok := ecs.GetComponent[*components.ClickableComponent](f.em, f.backdrop); ok {
			clickable.IsEnabled = enabled
		}
	})
}

// setItems 移除旧视图，为新菜单项创建视图并绑定输入闸门
func (f *Fab) setItems(items []*Item) {
	for _, view := range f.views {
		view.detach()
	}

	_, side := DirectionsFor(f.cfg.Anchor)
	f.items = append([]*Item(nil), items...)
	f.views = make([]*ItemView, len(f.items))

	for i, item := range f.items {
		itemID := item.ID
		var view *ItemView
		view = newItemView(f.em, item, side,
			func() { f.itemClicked(itemID) },
			func(entered bool) { f.hoverScale(view.ID(), entered) },
		)
		view.bindGate(f.gate)
		f.views[i] = view
	}

	f.updateBackdropExcludes()
}

// updateBackdropExcludes 背景遮罩排除主按钮和所有菜单项
func (f *Fab) updateBackdropExcludes() {
	backdrop, ok := ecs.GetComponent[*components.BackdropComponent](f.em, f.backdrop)
	if !ok {
		return
	}
	excludes := make([]ecs.EntityID, 0, len(f.views)+1)
	if f.button != nil {
		excludes = append(excludes, f.button.ID())
	}
	for _, view := range f.views {
		excludes = append(excludes, view.ID())
	}
	backdrop.Excludes = excludes
}

// ========== 内部：交互 ==========

// buttonClicked 主按钮点击：恢复缩放后执行默认行为或调用方的替代行为
func (f *Fab) buttonClicked() {
	if f.closed {
		return
	}
	f.animator.Animate(config.HoverAnimationDuration, []components.AnimTarget{
		{Entity: f.button.ID(), Property: components.PropScale, Value: 1},
	}, nil)
	f.button.resetHover()

	if f.onButtonClick != nil {
		f.onButtonClick(f)
		return
	}
	f.machine.Toggle()
}

// itemClicked 菜单项点击，索引按点击时的列表查找
func (f *Fab) itemClicked(id uuid.UUID) {
	index := f.indexOf(id)
	if index < 0 {
		return
	}
	item := f.items[index]
	if item.IsDisabled {
		return
	}

	if item.DismissOnSelect {
		if f.dismissAll != nil {
			f.dismissAll.Publish(SignalDismissAll)
		} else {
			f.Dismiss()
		}
	}

	if item.Handler.OnSelect != nil {
		item.Handler.OnSelect(item, index)
	}
}

// hoverScale 进入时放大到 目标*scale，离开时缩小到 目标/scale
// 以进行中的动画目标为基准，快速进出不会累积误差
func (f *Fab) hoverScale(id ecs.EntityID, entered bool) {
	factor := f.cfg.MouseOverScale
	if factor == 1 {
		return
	}

	base, ok := f.animator.TargetValue(id, components.PropScale)
	if !ok {
		base, ok = systems.ReadProperty(f.em, id, components.PropScale)
		if !ok {
			return
		}
	}

	target := base / factor
	if entered {
		target = base * factor
	}
	f.animator.Animate(config.HoverAnimationDuration, []components.AnimTarget{
		{Entity: id, Property: components.PropScale, Value: target},
	}, nil)
}

func (f *Fab) indexOf(id uuid.UUID) int {
	for i, item := range f.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// ========== 内部：布局 ==========

// anchoredCenter 按锚点和边距计算主按钮中心
func (f *Fab) anchoredCenter() Point {
	return AnchoredCenter(f.cfg.Anchor, f.cfg.Margin, f.cfg.Diameter, f.surfaceWidth, f.surfaceHeight)
}

func (f *Fab) layoutParams() LayoutParams {
	direction, side := DirectionsFor(f.cfg.Anchor)
	return LayoutParams{
		Center:           f.button.Center(),
		Diameter:         f.cfg.Diameter,
		Count:            len(f.items),
		ItemOffset:       f.cfg.ItemOffset,
		FirstItemOffset:  f.cfg.FirstItemOffset,
		ItemHeight:       config.ItemViewHeight,
		LateralOffset:    config.ItemLateralOffset,
		HorizontalOffset: f.hOffset,
		Direction:        direction,
		Side:             side,
	}
}

// settleItems 把菜单项吸附到停靠位置（透明）
func (f *Fab) settleItems() {
	for i, view := range f.views {
		view.SnapTo(f.slots[i].Collapsed, 0)
	}
}

// snapProperty 立即写入属性；该属性有进行中的动画时先用零时长动画接管它
func (f *Fab) snapProperty(id ecs.EntityID, prop components.AnimProperty, value float64) {
	if _, ok := f.animator.TargetValue(id, prop); ok {
		f.animator.Animate(0, []components.AnimTarget{{Entity: id, Property: prop, Value: value}}, nil)
	}
	systems.WriteProperty(f.em, id, prop, value)
}

func (f *Fab) shadowAlpha(active bool) float64 {
	if active && f.cfg.HidesShadowWhenActive {
		return 0
	}
	return 1
}

// ========== menuPresenter ==========

func (f *Fab) relayout() {
	f.slots = ComputeLayout(f.layoutParams())
}

func (f *Fab) showBackdrop() {
	if app, ok := ecs.GetComponent[*components.AppearanceComponent](f.em, f.backdrop); ok {
		app.Hidden = false
	}
}

// animateMenu 旋转、遮罩淡入淡出、菜单项滑动和淡入淡出、投影在同一个动画组中完成
func (f *Fab) animateMenu(expanding bool, done func()) {
	if expanding {
		log.Printf("[Fab] 展开菜单: %d 项", len(f.views))
	} else {
		log.Printf("[Fab] 收起菜单")
	}

	targets := make([]components.AnimTarget, 0, 3*len(f.views)+3)

	// 自定义图片展开时不旋转，收起时总是回正
	if !expanding || !f.button.HasCustomImage() {
		rotation := 0.0
		if expanding {
			rotation = f.cfg.MouseOverRotation
		}
		targets = append(targets, components.AnimTarget{Entity: f.button.ID(), Property: components.PropRotation, Value: rotation})
	}

	alpha := 0.0
	if expanding {
		alpha = 1
	}
	targets = append(targets, components.AnimTarget{Entity: f.backdrop, Property: components.PropAlpha, Value: alpha})

	for i, view := range f.views {
		slot := f.slots[i].Collapsed
		if expanding {
			slot = f.slots[i].Expanded
		}
		targets = append(targets,
			components.AnimTarget{Entity: view.ID(), Property: components.PropX, Value: slot.X},
			components.AnimTarget{Entity: view.ID(), Property: components.PropY, Value: slot.Y},
			components.AnimTarget{Entity: view.ID(), Property: components.PropAlpha, Value: alpha},
		)
	}

	targets = append(targets, components.AnimTarget{Entity: f.button.ID(), Property: components.PropShadowAlpha, Value: f.shadowAlpha(expanding)})

	// 背景色不参与插值，直接切换
	if expanding {
		f.button.SetBackground(f.cfg.BackgroundColorSelected.RGBA, true)
	} else {
		f.button.SetBackground(f.cfg.BackgroundColor.RGBA, false)
	}

	f.animator.Animate(config.MenuAnimationDuration, targets, done)
}

// settleCollapsed 收起后闸门关闭，悬停离开不会触发，这里直接复位缩放
func (f *Fab) settleCollapsed() {
	f.settleItems()
	for _, view := range f.views {
		view.clearHover()
		f.snapProperty(view.ID(), components.PropScale, 1)
	}
	if app, ok := ecs.GetComponent[*components.AppearanceComponent](f.em, f.backdrop); ok {
		app.Hidden = true
		app.Alpha = 0
	}
}

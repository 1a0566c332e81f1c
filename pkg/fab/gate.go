package fab

// InputGate 输入闸门
//
// 关闭时所有菜单项视图和背景遮罩忽略指针输入，但不改变它们的位置和不透明度。
// 状态变化通过 Fab 自己的 Emitter 广播，状态机不需要持有菜单项的引用。
// 初始状态为关闭（菜单收起）。
type InputGate struct {
	emitter *Emitter
	enabled bool
}

// NewInputGate 创建绑定到 emitter 的输入闸门
func NewInputGate(emitter *Emitter) *InputGate {
	return &InputGate{emitter: emitter}
}

// Enabled 闸门是否打开
func (g *InputGate) Enabled() bool {
	return g.enabled
}

// Enable 打开闸门，已打开时为空操作
func (g *InputGate) Enable() {
	if g.enabled {
		return
	}
	g.enabled = true
	g.emitter.Publish(SignalGateEnable)
}

// Disable 关闭闸门，已关闭时为空操作
func (g *InputGate) Disable() {
	if !g.enabled {
		return
	}
	g.enabled = false
	g.emitter.Publish(SignalGateDisable)
}

// Bind 订阅闸门状态，apply 立即以当前状态调用一次，之后每次状态变化调用
func (g *InputGate) Bind(apply func(enabled bool)) *Binding {
	apply(g.enabled)
	return &Binding{
		onEnable:  g.emitter.Subscribe(SignalGateEnable, func() { apply(true) }),
		onDisable: g.emitter.Subscribe(SignalGateDisable, func() { apply(false) }),
	}
}

// Binding 一个视图对闸门的订阅
type Binding struct {
	onEnable  *Subscription
	onDisable *Subscription
}

// Remove 取消订阅（视图被移除时调用）
func (b *Binding) Remove() {
	if b == nil {
		return
	}
	b.onEnable.Remove()
	b.onDisable.Remove()
}

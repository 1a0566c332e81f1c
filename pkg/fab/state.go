package fab

// MenuState 菜单状态
type MenuState int

const (
	// Collapsed 收起（初始状态）
	Collapsed MenuState = iota
	// Expanding 正在展开
	Expanding
	// Expanded 已展开
	Expanded
	// Collapsing 正在收起
	Collapsing
)

func (s MenuState) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case Expanding:
		return "expanding"
	case Expanded:
		return "expanded"
	case Collapsing:
		return "collapsing"
	default:
		return "unknown"
	}
}

// menuPresenter 状态机驱动的视觉层（由 Fab 实现）
type menuPresenter interface {
	// relayout 重新计算菜单项的停靠位置
	relayout()
	// showBackdrop 显示背景遮罩（展开前调用）
	showBackdrop()
	// animateMenu 以一个动画组执行展开/收起，完成时调用一次 done
	animateMenu(expanding bool, done func())
	// settleCollapsed 收起完成后把菜单项吸附回停靠位置并彻底隐藏遮罩
	settleCollapsed()
}

// MenuStateMachine 展开/收起状态机
//
// 状态循环：Collapsed -> Expanding -> Expanded -> Collapsing -> Collapsed。
// 动画进行中（Expanding/Collapsing）的切换请求直接丢弃，不排队。
// 动画原语没有取消操作：如果动画永远不完成，状态机会一直停留在动画中。
type MenuStateMachine struct {
	state     MenuState
	gate      *InputGate
	presenter menuPresenter
	// pendingDismiss 展开过程中收到的收起请求，展开完成后立即执行
	pendingDismiss bool
}

func newMenuStateMachine(gate *InputGate, presenter menuPresenter) *MenuStateMachine {
	return &MenuStateMachine{
		state:     Collapsed,
		gate:      gate,
		presenter: presenter,
	}
}

// State 当前状态
func (m *MenuStateMachine) State() MenuState {
	return m.state
}

// IsAnimating 是否处于动画中
func (m *MenuStateMachine) IsAnimating() bool {
	return m.state == Expanding || m.state == Collapsing
}

// IsActive 菜单是否已展开或正在展开
func (m *MenuStateMachine) IsActive() bool {
	return m.state == Expanded || m.state == Expanding
}

// Toggle 切换展开/收起，返回是否开始了一次过渡
func (m *MenuStateMachine) Toggle() bool {
	switch m.state {
	case Collapsed:
		// 布局可能因尺寸变化或菜单项替换而过期
		m.presenter.relayout()
		m.presenter.showBackdrop()
		m.begin(Expanding)
		return true
	case Expanded:
		m.begin(Collapsing)
		return true
	default:
		return false
	}
}

// Dismiss 收起菜单
//
// Expanded 时等同于 Toggle；Expanding 时记下请求，展开动画完成后立即收起；
// 其他状态为空操作。
func (m *MenuStateMachine) Dismiss() {
	switch m.state {
	case Expanded:
		m.Toggle()
	case Expanding:
		m.pendingDismiss = true
	}
}

// BackgroundClicked 背景遮罩被点击：只在 Expanded 时收起
func (m *MenuStateMachine) BackgroundClicked() {
	if m.state == Expanded {
		m.Toggle()
	}
}

// FrameChanged 主按钮位置或尺寸变化
//
// 先按新几何重新布局，展开中的菜单被强制收起；
// 已收起时直接把菜单项吸附到新的停靠位置。
func (m *MenuStateMachine) FrameChanged() {
	m.presenter.relayout()
	m.Dismiss()
	if m.state == Collapsed {
		m.presenter.settleCollapsed()
	}
}

func (m *MenuStateMachine) begin(next MenuState) {
	m.state = next
	m.gate.Disable()
	m.presenter.animateMenu(next == Expanding, m.complete)
}

func (m *MenuStateMachine) complete() {
	switch m.state {
	case Expanding:
		m.state = Expanded
		if m.pendingDismiss {
			m.pendingDismiss = false
			m.begin(Collapsing)
			return
		}
		m.gate.Enable()
	case Collapsing:
		m.state = Collapsed
		m.presenter.settleCollapsed()
	}
}

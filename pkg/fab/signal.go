package fab

// Signal 命名信号
type Signal string

const (
	// SignalDismissAll 收起所有订阅的 Fab（跨实例共享通道）
	SignalDismissAll Signal = "dismiss-all"
	// SignalGateEnable 打开输入闸门（单个 Fab 内部）
	SignalGateEnable Signal = "gate-enable"
	// SignalGateDisable 关闭输入闸门（单个 Fab 内部）
	SignalGateDisable Signal = "gate-disable"
)

type signalHandler struct {
	id uint64
	fn func()
}

// Emitter 按信号名发布/订阅的事件通道
//
// 不是全局单例：每个 Fab 持有自己的 Emitter 用于输入闸门，
// 需要"收起全部"的 Fab 共享同一个显式传入的 Emitter。
// 只在游戏协程中使用，不加锁。
type Emitter struct {
	handlers map[Signal][]signalHandler
	nextID   uint64
}

// NewEmitter 创建事件通道
func NewEmitter() *Emitter {
	return &Emitter{
		handlers: make(map[Signal][]signalHandler),
	}
}

// Subscribe 订阅信号，返回的 Subscription 用于取消订阅
func (e *Emitter) Subscribe(signal Signal, fn func()) *Subscription {
	e.nextID++
	e.handlers[signal] = append(e.handlers[signal], signalHandler{id: e.nextID, fn: fn})
	return &Subscription{emitter: e, signal: signal, id: e.nextID}
}

// Publish 按订阅顺序同步调用所有处理函数
// 处理函数中取消订阅或新增订阅不影响本次发布
func (e *Emitter) Publish(signal Signal) {
	handlers := append([]signalHandler(nil), e.handlers[signal]...)
	for _, h := range handlers {
		h.fn()
	}
}

// SubscriberCount 返回信号当前的订阅数量
func (e *Emitter) SubscriberCount(signal Signal) int {
	return len(e.handlers[signal])
}

func (e *Emitter) remove(signal Signal, id uint64) {
	handlers := e.handlers[signal]
	for i, h := range handlers {
		if h.id == id {
			e.handlers[signal] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
	if len(e.handlers[signal]) == 0 {
		delete(e.handlers, signal)
	}
}

// Subscription 一次订阅
type Subscription struct {
	emitter *Emitter
	signal  Signal
	id      uint64
}

// Remove 取消订阅，重复调用是安全的
func (s *Subscription) Remove() {
	if s == nil || s.emitter == nil {
		return
	}
	s.emitter.remove(s.signal, s.id)
	s.emitter = nil
}

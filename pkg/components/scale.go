package components

// ScaleComponent 存储实体级别的缩放因子
// 缩放以实体中心为锚点；悬停反馈通过动画修改此组件
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小）
	ScaleY float64
}

// Uniform 返回统一缩放值（FAB 只使用等比缩放，取 X 轴）
func (s *ScaleComponent) Uniform() float64 {
	return s.ScaleX
}

// SetUniform 设置等比缩放
func (s *ScaleComponent) SetUniform(v float64) {
	s.ScaleX = v
	s.ScaleY = v
}

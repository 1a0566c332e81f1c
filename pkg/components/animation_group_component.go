package components

import "github.com/decker502/fab/pkg/ecs"

// AnimProperty 可动画的属性
type AnimProperty int

const (
	// PropX PositionComponent.X
	PropX AnimProperty = iota
	// PropY PositionComponent.Y
	PropY
	// PropScale ScaleComponent（等比）
	PropScale
	// PropRotation AppearanceComponent.Rotation
	PropRotation
	// PropAlpha AppearanceComponent.Alpha
	PropAlpha
	// PropShadowAlpha AppearanceComponent.ShadowAlpha
	PropShadowAlpha
)

// AnimTarget 一个（实体，属性，目标值）三元组
type AnimTarget struct {
	Entity   ecs.EntityID
	Property AnimProperty
	Value    float64
}

// AnimTrack 动画组中的单条轨道
type AnimTrack struct {
	Target AnimTarget
	// From 动画开始时的属性值
	From float64
	// Superseded 被后启动的动画组接管后不再写入属性
	Superseded bool
}

// AnimationGroupComponent 一组同时进行的属性动画
//
// 工作流程：
//  1. AnimationSystem.Animate 创建一个动画组实体并附加此组件
//  2. 每帧 Elapsed 增加 deltaTime，所有轨道按同一进度插值
//  3. Elapsed >= Duration 时写入最终值，调用一次 OnComplete，销毁实体
//
// 各轨道不会单独"完成"，组外只能观察到整体完成。
type AnimationGroupComponent struct {
	Tracks   []AnimTrack
	Elapsed  float64
	Duration float64
	// Easing 缓动函数，nil 表示线性
	Easing func(t float64) float64
	// OnComplete 完成回调，只调用一次
	OnComplete func()
	// Finished 已完成（等待实体清理）
	Finished bool
}

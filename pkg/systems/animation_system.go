package systems

import (
	"math"

	"github.com/decker502/fab/pkg/components"
	"github.com/decker502/fab/pkg/ecs"
	"github.com/decker502/fab/pkg/utils"
)

// AnimationSystem 属性动画系统（动画原语）
//
// 职责：
//   - Animate 把一组（实体，属性，目标值）作为一个动画组同时执行
//   - 每帧按同一进度插值组内所有轨道
//   - 动画组完成时调用一次完成回调，组内轨道不单独完成
//
// 新动画组中的轨道会接管旧动画组里相同（实体，属性）的轨道，
// 旧组照常计时并调用自己的完成回调，只是不再写入被接管的属性。
// 目标实体在动画途中被销毁时，对应轨道静默跳过。
type AnimationSystem struct {
	entityManager *ecs.EntityManager
	easing        func(t float64) float64
}

// NewAnimationSystem 创建动画系统，默认使用三次方缓入缓出
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
		easing:        utils.EaseInOutCubic,
	}
}

// SetEasing 设置后续动画组使用的缓动函数，nil 表示线性
func (s *AnimationSystem) SetEasing(easing func(t float64) float64) {
	s.easing = easing
}

// Animate 启动一个动画组
//
// duration <= 0 时在下一次 Update 中直接写入最终值并完成。
// onComplete 可为 nil。
func (s *AnimationSystem) Animate(duration float64, targets []components.AnimTarget, onComplete func()) {
	group := &components.AnimationGroupComponent{
		Tracks:     make([]components.AnimTrack, 0, len(targets)),
		Duration:   duration,
		Easing:     s.easing,
		OnComplete: onComplete,
	}

	for _, target := range targets {
		s.supersede(target.Entity, target.Property)
		from, _ := ReadProperty(s.entityManager, target.Entity, target.Property)
		group.Tracks = append(group.Tracks, components.AnimTrack{
			Target: target,
			From:   from,
		})
	}

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, group)
}

// TargetValue 返回某属性正在进行的动画的目标值
// 没有进行中的动画时返回 false
func (s *AnimationSystem) TargetValue(entity ecs.EntityID, prop components.AnimProperty) (float64, bool) {
	for _, groupID := range ecs.GetEntitiesWith1[*components.AnimationGroupComponent](s.entityManager) {
		group, _ := ecs.GetComponent[*components.AnimationGroupComponent](s.entityManager, groupID)
		if group.Finished {
			continue
		}
		for _, track := range group.Tracks {
			if !track.Superseded && track.Target.Entity == entity && track.Target.Property == prop {
				return track.Target.Value, true
			}
		}
	}
	return 0, false
}

// ActiveGroups 返回尚未完成的动画组数量
func (s *AnimationSystem) ActiveGroups() int {
	count := 0
	for _, groupID := range ecs.GetEntitiesWith1[*components.AnimationGroupComponent](s.entityManager) {
		group, _ := ecs.GetComponent[*components.AnimationGroupComponent](s.entityManager, groupID)
		if !group.Finished {
			count++
		}
	}
	return count
}

// Update 推进所有动画组
func (s *AnimationSystem) Update(deltaTime float64) {
	groups := ecs.GetEntitiesWith1[*components.AnimationGroupComponent](s.entityManager)

	for _, groupID := range groups {
		group, ok := ecs.GetComponent[*components.AnimationGroupComponent](s.entityManager, groupID)
		if !ok || group.Finished {
			continue
		}

		group.Elapsed += deltaTime
		progress := 1.0
		if group.Duration > 0 {
			progress = math.Min(group.Elapsed/group.Duration, 1.0)
		}

		eased := progress
		if group.Easing != nil && progress < 1.0 {
			eased = group.Easing(progress)
		}

		for _, track := range group.Tracks {
			if track.Superseded {
				continue
			}
			value := track.Target.Value
			if progress < 1.0 {
				value = utils.Lerp(track.From, track.Target.Value, eased)
			}
			WriteProperty(s.entityManager, track.Target.Entity, track.Target.Property, value)
		}

		if progress >= 1.0 {
			// 先标记完成再回调：回调里可能启动新的动画组或查询 TargetValue
			group.Finished = true
			s.entityManager.DestroyEntity(groupID)
			if group.OnComplete != nil {
				group.OnComplete()
			}
		}
	}
}

// supersede 让旧动画组中相同（实体，属性）的轨道失效
func (s *AnimationSystem) supersede(entity ecs.EntityID, prop components.AnimProperty) {
	for _, groupID := range ecs.GetEntitiesWith1[*components.AnimationGroupComponent](s.entityManager) {
		group, _ := ecs.GetComponent[*components.AnimationGroupComponent](s.entityManager, groupID)
		if group.Finished {
			continue
		}
		for i := range group.Tracks {
			track := &group.Tracks[i]
			if track.Target.Entity == entity && track.Target.Property == prop {
				track.Superseded = true
			}
		}
	}
}

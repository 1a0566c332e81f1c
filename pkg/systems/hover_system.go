package systems

import (
	"github.com/decker502/fab/pkg/components"
	"github.com/decker502/fab/pkg/ecs"
	"github.com/decker502/fab/pkg/utils"
)

// HoverSystem 光标悬停跟踪系统（CursorHoverTracker）
//
// 职责：
//   - 检测指针进入/离开 HoverComponent 的跟踪区域
//   - 状态变化时调用 OnHover(true/false)
//   - 实体被输入闸门禁用或隐藏时暂停跟踪，不产生悬停反馈
//
// 暂停期间 Hovered 保持不变；恢复后若指针已离开，会补发一次离开回调，
// 保证进入/离开总是成对出现。
type HoverSystem struct {
	entityManager *ecs.EntityManager
}

// NewHoverSystem 创建悬停跟踪系统
func NewHoverSystem(em *ecs.EntityManager) *HoverSystem {
	return &HoverSystem{
		entityManager: em,
	}
}

// Update 读取当前指针位置并更新悬停状态
func (s *HoverSystem) Update(deltaTime float64) {
	x, y := utils.GetPointerPosition()
	s.UpdatePointer(float64(x), float64(y))
}

// UpdatePointer 以给定指针位置更新所有跟踪区域
func (s *HoverSystem) UpdatePointer(px, py float64) {
	entities := ecs.GetEntitiesWith2[*components.HoverComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		hover, _ := ecs.GetComponent[*components.HoverComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if s.isSuppressed(id) {
			continue
		}

		inside := regionsContain(hover.Regions, px-pos.X, py-pos.Y)
		if inside == hover.Hovered {
			continue
		}

		hover.Hovered = inside
		if hover.OnHover != nil {
			hover.OnHover(inside)
		}
	}
}

// Retrack 替换实体的跟踪区域
func (s *HoverSystem) Retrack(id ecs.EntityID, regions []components.HitRect) {
	RetrackHover(s.entityManager, id, regions)
}

// RetrackHover 替换实体的跟踪区域，旧区域被注销
//
// 旧区域处于悬停状态时先补发离开回调，新区域在下一次 UpdatePointer 时
// 重新判断是否进入，避免跟踪一个与实际控件不再吻合的矩形。
func RetrackHover(em *ecs.EntityManager, id ecs.EntityID, regions []components.HitRect) {
	hover, ok := ecs.GetComponent[*components.HoverComponent](em, id)
	if !ok {
		return
	}

	if hover.Hovered {
		hover.Hovered = false
		if hover.OnHover != nil {
			hover.OnHover(false)
		}
	}

	hover.Regions = append([]components.HitRect(nil), regions...)
}

// isSuppressed 被禁用或隐藏的实体不参与悬停跟踪
func (s *HoverSystem) isSuppressed(id ecs.EntityID) bool {
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok && !clickable.IsEnabled {
		return true
	}
	if app, ok := ecs.GetComponent[*components.AppearanceComponent](s.entityManager, id); ok && app.Hidden {
		return true
	}
	return false
}

func regionsContain(regions []components.HitRect, x, y float64) bool {
	for _, r := range regions {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

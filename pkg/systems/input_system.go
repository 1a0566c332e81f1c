package systems

import (
	"sort"

	"github.com/decker502/fab/pkg/components"
	"github.com/decker502/fab/pkg/ecs"
	"github.com/decker502/fab/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem 点击与快捷键分发系统
// 负责把指针释放和按键事件分发给可点击实体
//
// 职责：
//   - 指针释放时按 ZIndex 从上到下做命中测试，只有最上层的实体收到点击
//   - 隐藏的实体不参与命中测试
//   - 被禁用的实体不响应点击，点击落到下层实体
//   - 背景遮罩排除主按钮和菜单项的区域
//   - 分发 ShortcutComponent 快捷键
type InputSystem struct {
	entityManager *ecs.EntityManager
}

// NewInputSystem 创建输入分发系统
func NewInputSystem(em *ecs.EntityManager) *InputSystem {
	return &InputSystem{
		entityManager: em,
	}
}

// Update 读取本帧的指针释放和按键事件并分发
func (s *InputSystem) Update(deltaTime float64) {
	utils.UpdateLastTouchPosition()

	// 释放时触发，与按钮的常规交互一致
	if released, x, y := utils.IsPointerJustReleased(); released {
		s.HandleClick(float64(x), float64(y))
	}

	mods := utils.GetModifiers()
	for _, id := range ecs.GetEntitiesWith1[*components.ShortcutComponent](s.entityManager) {
		shortcut, _ := ecs.GetComponent[*components.ShortcutComponent](s.entityManager, id)
		if inpututil.IsKeyJustPressed(shortcut.Key) {
			s.HandleKey(shortcut.Key, mods)
		}
	}
}

// HandleClick 在 (x, y) 处分发一次点击
// 返回是否有实体接收了点击
func (s *InputSystem) HandleClick(x, y float64) bool {
	id, ok := s.HitTest(x, y)
	if !ok {
		return false
	}

	clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
	if clickable.OnClick != nil {
		clickable.OnClick()
	}
	return true
}

// HandleKey 分发一次按键，所有匹配的快捷键按实体顺序触发
// 返回是否有快捷键被触发
func (s *InputSystem) HandleKey(key ebiten.Key, mods utils.Modifiers) bool {
	handled := false
	for _, id := range ecs.GetEntitiesWith1[*components.ShortcutComponent](s.entityManager) {
		shortcut, _ := ecs.GetComponent[*components.ShortcutComponent](s.entityManager, id)
		if shortcut.Key != key {
			continue
		}
		if shortcut.Ctrl != mods.Ctrl || shortcut.Shift != mods.Shift ||
			shortcut.Alt != mods.Alt || shortcut.Meta != mods.Meta {
			continue
		}
		if shortcut.OnTrigger != nil {
			shortcut.OnTrigger()
			handled = true
		}
	}
	return handled
}

// HitTest 返回 (x, y) 处最上层的可用实体
//
// 排序规则：ZIndex 大的在前，ZIndex 相同时后创建的实体在前。
// 被禁用的实体跳过，点击继续向下层传递。
func (s *InputSystem) HitTest(x, y float64) (ecs.EntityID, bool) {
	entities := ecs.GetEntitiesWith2[*components.ClickableComponent, *components.PositionComponent](s.entityManager)

	sort.SliceStable(entities, func(i, j int) bool {
		zi, zj := s.zIndex(entities[i]), s.zIndex(entities[j])
		if zi != zj {
			return zi > zj
		}
		return entities[i] > entities[j]
	})

	for _, id := range entities {
		if s.isHidden(id) {
			continue
		}
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.IsEnabled || clickable.Shape == nil {
			continue
		}
		if !s.contains(id, clickable.Shape, x, y) {
			continue
		}
		if s.excludedByBackdrop(id, x, y) {
			continue
		}
		return id, true
	}

	return ecs.InvalidEntity, false
}

// contains 判断世界坐标点是否落在实体的命中区域内（考虑缩放）
func (s *InputSystem) contains(id ecs.EntityID, shape components.HitShape, x, y float64) bool {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	lx, ly := x-pos.X, y-pos.Y

	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		if scale.ScaleX != 0 {
			lx /= scale.ScaleX
		}
		if scale.ScaleY != 0 {
			ly /= scale.ScaleY
		}
	}

	return shape.Contains(lx, ly)
}

// excludedByBackdrop 背景遮罩不接收落在排除实体上的点击（无论其是否启用）
func (s *InputSystem) excludedByBackdrop(id ecs.EntityID, x, y float64) bool {
	backdrop, ok := ecs.GetComponent[*components.BackdropComponent](s.entityManager, id)
	if !ok {
		return false
	}

	for _, excluded := range backdrop.Excludes {
		if !s.entityManager.IsAlive(excluded) || s.isHidden(excluded) {
			continue
		}
		clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, excluded)
		if !ok || clickable.Shape == nil {
			continue
		}
		if _, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, excluded); !ok {
			continue
		}
		if s.contains(excluded, clickable.Shape, x, y) {
			return true
		}
	}
	return false
}

func (s *InputSystem) zIndex(id ecs.EntityID) int {
	if app, ok := ecs.GetComponent[*components.AppearanceComponent](s.entityManager, id); ok {
		return app.ZIndex
	}
	return 0
}

func (s *InputSystem) isHidden(id ecs.EntityID) bool {
	app, ok := ecs.GetComponent[*components.AppearanceComponent](s.entityManager, id)
	return ok && app.Hidden
}

package systems

import (
	"github.com/decker502/fab/pkg/components"
	"github.com/decker502/fab/pkg/ecs"
)

// ReadProperty 读取实体的可动画属性
// 实体缺少对应组件时返回 (0, false)
func ReadProperty(em *ecs.EntityManager, id ecs.EntityID, prop components.AnimProperty) (float64, bool) {
	switch prop {
	case components.PropX, components.PropY:
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			return 0, false
		}
		if prop == components.PropX {
			return pos.X, true
		}
		return pos.Y, true

	case components.PropScale:
		scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id)
		if !ok {
			return 1, false
		}
		return scale.Uniform(), true

	case components.PropRotation, components.PropAlpha, components.PropShadowAlpha:
		app, ok := ecs.GetComponent[*components.AppearanceComponent](em, id)
		if !ok {
			return 0, false
		}
		switch prop {
		case components.PropRotation:
			return app.Rotation, true
		case components.PropAlpha:
			return app.Alpha, true
		default:
			return app.ShadowAlpha, true
		}
	}
	return 0, false
}

// WriteProperty 写入实体的可动画属性，实体缺少对应组件时静默忽略
func WriteProperty(em *ecs.EntityManager, id ecs.EntityID, prop components.AnimProperty, value float64) {
	switch prop {
	case components.PropX, components.PropY:
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			return
		}
		if prop == components.PropX {
			pos.X = value
		} else {
			pos.Y = value
		}

	case components.PropScale:
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok {
			scale.SetUniform(value)
		}

	case components.PropRotation, components.PropAlpha, components.PropShadowAlpha:
		app, ok := ecs.GetComponent[*components.AppearanceComponent](em, id)
		if !ok {
			return
		}
		switch prop {
		case components.PropRotation:
			app.Rotation = value
		case components.PropAlpha:
			app.Alpha = value
		default:
			app.ShadowAlpha = value
		}
	}
}

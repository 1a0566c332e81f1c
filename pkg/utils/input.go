// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Modifiers 当前按住的修饰键
type Modifiers struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Meta  bool
}

// GetModifiers 读取当前帧的修饰键状态
func GetModifiers() Modifiers {
	return Modifiers{
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
		Meta:  ebiten.IsKeyPressed(ebiten.KeyMeta),
	}
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}

	// 返回鼠标位置
	return ebiten.CursorPosition()
}

// IsTouchDevice 检测当前是否为触摸设备
// 通过检查是否有活动的触摸来判断
func IsTouchDevice() bool {
	touchIDs := ebiten.AppendTouchIDs(nil)
	return len(touchIDs) > 0
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// UpdateLastTouchPosition 更新最后一次触摸位置
// 应该在每帧更新时调用
func UpdateLastTouchPosition() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}

// IsPointerJustReleased 检查是否刚刚释放指针（触摸或鼠标）
// 返回是否释放以及释放位置
func IsPointerJustReleased() (bool, int, int) {
	// 检查触摸释放
	releasedTouchIDs := inpututil.AppendJustReleasedTouchIDs(nil)
	if len(releasedTouchIDs) > 0 {
		// 触摸释放时使用保存的最后触摸位置
		return true, lastTouchX, lastTouchY
	}

	// 检查鼠标释放
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

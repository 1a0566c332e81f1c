package components

import "github.com/hajimehoshi/ebiten/v2"

// ShortcutComponent 键盘快捷键（主按钮的 key-equivalent）
type ShortcutComponent struct {
	Key   ebiten.Key
	Ctrl  bool
	Shift bool
	Alt   bool
	Meta  bool
	// OnTrigger 快捷键按下时调用
	OnTrigger func()
}

package config

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyEquivalent 主按钮的快捷键
// 触发效果与点击主按钮相同，按键检测交给宿主的输入系统
type KeyEquivalent struct {
	Key   ebiten.Key
	Ctrl  bool
	Shift bool
	Alt   bool
	Meta  bool
}

// ParseKeyEquivalent 解析 "ctrl+shift+f" 形式的快捷键
//
// 修饰键：ctrl/control、shift、alt/option、meta/cmd/command
// 主键名称与 ebiten.Key 的文本名称一致（如 "F"、"Space"、"Digit1"）
func ParseKeyEquivalent(s string) (KeyEquivalent, error) {
	var ke KeyEquivalent
	parts := strings.Split(s, "+")
	if len(parts) == 0 || strings.TrimSpace(parts[len(parts)-1]) == "" {
		return ke, fmt.Errorf("%w: empty key in %q", ErrInvalidConfig, s)
	}

	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(mod)) {
		case "ctrl", "control":
			ke.Ctrl = true
		case "shift":
			ke.Shift = true
		case "alt", "option":
			ke.Alt = true
		case "meta", "cmd", "command":
			ke.Meta = true
		default:
			return ke, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidConfig, mod, s)
		}
	}

	name := strings.TrimSpace(parts[len(parts)-1])
	if len(name) == 1 {
		name = strings.ToUpper(name)
	}
	if err := ke.Key.UnmarshalText([]byte(name)); err != nil {
		return ke, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidConfig, name, s)
	}
	return ke, nil
}

// String 返回规范化的快捷键文本
func (ke KeyEquivalent) String() string {
	var parts []string
	if ke.Ctrl {
		parts = append(parts, "ctrl")
	}
	if ke.Shift {
		parts = append(parts, "shift")
	}
	if ke.Alt {
		parts = append(parts, "alt")
	}
	if ke.Meta {
		parts = append(parts, "meta")
	}
	parts = append(parts, ke.Key.String())
	return strings.Join(parts, "+")
}

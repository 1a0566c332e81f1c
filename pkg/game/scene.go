// Package game 提供演示程序的场景接口和场景管理器
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the demo (e.g., the FAB playground, the layout inspector).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，宿主表面尺寸变化时被调用
//
// 场景在此把新尺寸传给其中的 FAB（Fab.Resize），
// 展开中的菜单会因此收起。
type Resizable interface {
	Resize(width, height int)
}

// Closer 是一个可选接口，场景被切换掉时调用
// 用于移除场景持有的实体和订阅
type Closer interface {
	Close()
}

package scenes

import (
	"fmt"

	"github.com/decker502/fab/pkg/config"
	"github.com/decker502/fab/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 场景名称
const (
	SceneDemo   = "demo"
	SceneLayout = "layout"
)

// Names 返回可加载的场景名称，按 Tab 切换的顺序排列
func Names() []string {
	return []string{SceneDemo, SceneLayout}
}

// NextName 返回 Tab 切换时的下一个场景
func NextName(current string) string {
	names := Names()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// NewFactory 返回创建演示场景的工厂函数
func NewFactory(cfg config.DemoConfig, sm *game.SceneManager) game.SceneFactory {
	return func(name string) (game.Scene, error) {
		switch name {
		case SceneDemo:
			return NewDemoScene(cfg, sm)
		case SceneLayout:
			return NewLayoutScene(cfg, sm), nil
		default:
			return nil, fmt.Errorf("unknown scene %q", name)
		}
	}
}

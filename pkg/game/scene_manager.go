package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按名称创建场景，避免 game 包依赖具体场景
type SceneFactory func(name string) (Scene, error)

// SceneManager manages the demo's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景

	// 最近一次的表面尺寸，切换场景时传给新场景
	width, height int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Load to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is closed if it implements Closer, and the new scene
// receives the last known surface size if it implements Resizable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	if closer, ok := sm.currentScene.(Closer); ok {
		closer.Close()
	}
	sm.currentScene = scene
	sm.currentName = ""

	if resizable, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		resizable.Resize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回通过 Load 加载的当前场景名称
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Load 通过工厂函数创建并切换到指定名称的场景
// 创建失败时保留当前场景
func (sm *SceneManager) Load(name string) {
	log.Printf("[SceneManager] 加载场景: %s", name)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	scene, err := sm.sceneFactory(name)
	if err != nil {
		log.Printf("[SceneManager] 错误: 无法创建场景 %s: %v", name, err)
		return
	}
	sm.SwitchTo(scene)
	sm.currentName = name
	log.Printf("[SceneManager] 成功切换到场景: %s", name)
}

// Resize 记录表面尺寸并转发给当前场景
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if resizable, ok := sm.currentScene.(Resizable); ok {
		resizable.Resize(width, height)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

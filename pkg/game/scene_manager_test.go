package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	closed       int
	width        int
	height       int
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) Close() {
	m.closed++
}

func (m *MockScene) Resize(width, height int) {
	m.width, m.height = width, height
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016) // 没有场景时不应 panic

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen) // 没有场景时不应 panic

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerSwitchClosesPrevious 切换场景时关闭旧场景
func TestSceneManagerSwitchClosesPrevious(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.SwitchTo(scene1)
	if scene1.closed != 0 {
		t.Error("切换到同一个场景不应关闭它")
	}

	sm.SwitchTo(scene2)
	if scene1.closed != 1 {
		t.Errorf("scene1.closed = %d, 期望 1", scene1.closed)
	}
	sm.Update(0.016)
	if scene1.updateCalled {
		t.Error("Scene1's Update should not be called after switching away")
	}
}

// TestSceneManagerResize 尺寸转发给当前场景，并在切换时传给新场景
func TestSceneManagerResize(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	sm.SwitchTo(scene1)

	sm.Resize(1024, 768)
	if scene1.width != 1024 || scene1.height != 768 {
		t.Errorf("scene1 size = %dx%d, 期望 1024x768", scene1.width, scene1.height)
	}

	scene2 := &MockScene{}
	sm.SwitchTo(scene2)
	if scene2.width != 1024 || scene2.height != 768 {
		t.Errorf("新场景应收到最近的尺寸, got %dx%d", scene2.width, scene2.height)
	}
}

func TestSceneManagerLoad(t *testing.T) {
	sm := NewSceneManager()
	sm.Load("demo") // 未设置工厂时只记录错误

	created := map[string]*MockScene{}
	sm.SetSceneFactory(func(name string) (Scene, error) {
		if name == "broken" {
			return nil, errors.New("boom")
		}
		scene := &MockScene{}
		created[name] = scene
		return scene, nil
	})

	sm.Load("demo")
	if sm.GetCurrentScene() != created["demo"] || sm.CurrentName() != "demo" {
		t.Fatalf("Load(demo) 未切换场景")
	}

	sm.Load("broken")
	if sm.CurrentName() != "demo" {
		t.Errorf("创建失败时应保留当前场景, got %q", sm.CurrentName())
	}
	if created["demo"].closed != 0 {
		t.Error("创建失败时不应关闭当前场景")
	}
}

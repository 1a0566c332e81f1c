package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/fab/pkg/config"
	"github.com/decker502/fab/pkg/scenes"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fab.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("写入临时配置失败: %v", err)
	}
	return path
}

func TestNewAppFromFile(t *testing.T) {
	path := writeConfig(t, `
title: Test App
width: 640
height: 480
fabs:
  - anchor: bottom-right
    items:
      - text: Share
        glyph: S
`)

	a, err := NewApp(Config{Verbose: true, ConfigPath: path})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if w, h := a.WindowSize(); w != 640 || h != 480 {
		t.Errorf("WindowSize = %dx%d, 期望 640x480", w, h)
	}
	if a.Title() != "Test App" {
		t.Errorf("Title = %q", a.Title())
	}
	demo, ok := a.GetSceneManager().GetCurrentScene().(*scenes.DemoScene)
	if !ok {
		t.Fatalf("当前场景 = %T, 期望 *scenes.DemoScene", a.GetSceneManager().GetCurrentScene())
	}
	if got := demo.Fabs()[0].ButtonCenter(); got.X != 600 || got.Y != 440 {
		t.Errorf("ButtonCenter = %+v, 期望 (600, 440)", got)
	}
}

// TestLayoutPropagatesResize 窗口尺寸变化传给 FAB
func TestLayoutPropagatesResize(t *testing.T) {
	a, err := NewApp(Config{Verbose: true, ConfigPath: writeConfig(t, "width: 640\nheight: 480\n")})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if w, h := a.Layout(1000, 800); w != 1000 || h != 800 {
		t.Errorf("Layout = %dx%d, 期望 1000x800", w, h)
	}
	demo := a.GetSceneManager().GetCurrentScene().(*scenes.DemoScene)
	if got := demo.Fabs()[0].ButtonCenter(); got.X != 960 || got.Y != 760 {
		t.Errorf("ButtonCenter = %+v, 期望 (960, 760)", got)
	}

	if w, h := a.Layout(0, 0); w != 640 || h != 480 {
		t.Errorf("零尺寸时 Layout = %dx%d, 期望配置尺寸 640x480", w, h)
	}
}

func TestNewAppStartScene(t *testing.T) {
	a, err := NewApp(Config{Verbose: true, ConfigPath: writeConfig(t, "title: x\n"), Scene: scenes.SceneLayout})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if _, ok := a.GetSceneManager().GetCurrentScene().(*scenes.LayoutScene); !ok {
		t.Errorf("当前场景 = %T, 期望 *scenes.LayoutScene", a.GetSceneManager().GetCurrentScene())
	}

	if _, err := NewApp(Config{Verbose: true, ConfigPath: writeConfig(t, "title: x\n"), Scene: "missing"}); err == nil {
		t.Error("未知启动场景应返回错误")
	}
}

func TestNewAppInvalidConfig(t *testing.T) {
	_, err := NewApp(Config{Verbose: true, ConfigPath: writeConfig(t, "fabs:\n  - diameter: 0\n")})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("期望 ErrInvalidConfig, got %v", err)
	}

	if _, err := NewApp(Config{Verbose: true, ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("缺失配置文件应返回错误")
	}
}

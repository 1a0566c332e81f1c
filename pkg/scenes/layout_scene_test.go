package scenes

import (
	"math"
	"testing"

	"github.com/decker502/fab/pkg/config"
	"github.com/decker502/fab/pkg/fab"
	"github.com/decker502/fab/pkg/game"
)

func TestLayoutSceneCorners(t *testing.T) {
	s := NewLayoutScene(testDemoConfig(), game.NewSceneManager())

	if len(s.corners) != 4 {
		t.Fatalf("len(corners) = %d, 期望 4", len(s.corners))
	}
	for _, corner := range s.corners {
		if len(corner.slots) != 3 {
			t.Errorf("%s: len(slots) = %d, 期望 3", corner.anchor, len(corner.slots))
		}
		if corner.edgeOffsets[2] != 125 {
			t.Errorf("%s: edgeOffset[2] = %v, 期望 125", corner.anchor, corner.edgeOffsets[2])
		}
		if corner.contentHeight != 200 {
			t.Errorf("%s: contentHeight = %v, 期望 200", corner.anchor, corner.contentHeight)
		}
		// 展开方向远离锚定边缘
		for _, slot := range corner.slots {
			moved := slot.Expanded.Y - corner.center.Y
			if math.Signbit(moved) == (corner.direction > 0) {
				t.Errorf("%s: 展开位置 %+v 朝向了锚定边缘", corner.anchor, slot.Expanded)
			}
		}
	}
}

func TestLayoutSceneDefaultsWithoutItems(t *testing.T) {
	cfg := config.DefaultDemoConfig()
	s := NewLayoutScene(cfg, game.NewSceneManager())

	if s.count != defaultInspectItems {
		t.Errorf("count = %d, 期望 %d", s.count, defaultInspectItems)
	}
	if s.summary() == "no items" {
		t.Error("摘要应包含布局数据")
	}
}

func TestLayoutSceneResize(t *testing.T) {
	s := NewLayoutScene(testDemoConfig(), game.NewSceneManager())
	s.Resize(1000, 800)

	for _, corner := range s.corners {
		if corner.anchor == config.AnchorBottomRight && corner.center != (fab.Point{X: 960, Y: 760}) {
			t.Errorf("右下角中心 = %+v, 期望 (960, 760)", corner.center)
		}
	}
	if len(s.corners) != 4 {
		t.Errorf("重新计算后 len(corners) = %d, 期望 4", len(s.corners))
	}
}

func TestNextName(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{SceneDemo, SceneLayout},
		{SceneLayout, SceneDemo},
		{"unknown", SceneDemo},
	}
	for _, tt := range tests {
		if got := NextName(tt.current); got != tt.want {
			t.Errorf("NextName(%q) = %q, 期望 %q", tt.current, got, tt.want)
		}
	}
}

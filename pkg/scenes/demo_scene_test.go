package scenes

import (
	"errors"
	"testing"

	"github.com/decker502/fab/pkg/config"
	"github.com/decker502/fab/pkg/fab"
	"github.com/decker502/fab/pkg/game"
)

// settleTime 足够让所有动画完成
const settleTime = config.MenuAnimationDuration + 0.01

func testDemoConfig() config.DemoConfig {
	cfg := config.DefaultDemoConfig()

	right := config.DemoFabConfig{FabConfig: config.DefaultFabConfig()}
	right.Items = []config.DemoItemConfig{
		{Text: "New note", Glyph: "N"},
		{Text: "Share", Glyph: "S"},
		{Text: "Pinned", Glyph: "P", KeepOpen: true},
	}

	left := config.DemoFabConfig{FabConfig: config.DefaultFabConfig()}
	left.Anchor = config.AnchorTopLeft
	left.Items = []config.DemoItemConfig{{Text: "Settings", Glyph: "*"}}

	cfg.Fabs = []config.DemoFabConfig{right, left}
	return cfg
}

func newTestDemoScene(t *testing.T) *DemoScene {
	t.Helper()
	s, err := NewDemoScene(testDemoConfig(), game.NewSceneManager())
	if err != nil {
		t.Fatalf("NewDemoScene failed: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestNewDemoScene(t *testing.T) {
	s := newTestDemoScene(t)

	if len(s.Fabs()) != 2 {
		t.Fatalf("len(Fabs) = %d, 期望 2", len(s.Fabs()))
	}
	if n := s.dismissAll.SubscriberCount(fab.SignalDismissAll); n != 2 {
		t.Errorf("dismiss-all 订阅数 = %d, 期望 2", n)
	}

	right, left := s.Fabs()[0], s.Fabs()[1]
	if got := right.ButtonCenter(); got != (fab.Point{X: 760, Y: 560}) {
		t.Errorf("右下角 FAB 中心 = %+v", got)
	}
	if got := left.ButtonCenter(); got != (fab.Point{X: 40, Y: 40}) {
		t.Errorf("左上角 FAB 中心 = %+v", got)
	}
	if right.Items()[2].DismissOnSelect {
		t.Error("keepOpen 菜单项不应在选择后收起")
	}
}

func TestNewDemoSceneRejectsInvalid(t *testing.T) {
	cfg := testDemoConfig()
	cfg.Easing = "bounce"
	if _, err := NewDemoScene(cfg, game.NewSceneManager()); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("未知缓动应返回 ErrInvalidConfig, got %v", err)
	}

	cfg = testDemoConfig()
	cfg.Fabs[1].Diameter = -1
	if _, err := NewDemoScene(cfg, game.NewSceneManager()); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("非法 FAB 配置应返回 ErrInvalidConfig, got %v", err)
	}
}

// TestDemoSceneItemSelectionDismissesAll 选择菜单项会收起所有 FAB
func TestDemoSceneItemSelectionDismissesAll(t *testing.T) {
	s := newTestDemoScene(t)
	right, left := s.Fabs()[0], s.Fabs()[1]

	right.Toggle()
	left.Toggle()
	s.advance(settleTime)
	if right.State() != fab.Expanded || left.State() != fab.Expanded {
		t.Fatalf("状态 = %s/%s, 期望都展开", right.State(), left.State())
	}

	// 第 2 项（Share）的按钮中心
	slot := right.Slots()[1].Expanded
	if !s.inputSystem.HandleClick(slot.X+82.5, slot.Y) {
		t.Fatal("点击没有命中菜单项")
	}

	if right.State() != fab.Collapsing || left.State() != fab.Collapsing {
		t.Errorf("状态 = %s/%s, 期望都在收起", right.State(), left.State())
	}
	if want := `bottom-right: selected "Share" (#1)`; s.Status() != want {
		t.Errorf("Status = %q, 期望 %q", s.Status(), want)
	}
}

func TestDemoSceneKeepOpenItem(t *testing.T) {
	s := newTestDemoScene(t)
	right := s.Fabs()[0]

	right.Toggle()
	s.advance(settleTime)

	slot := right.Slots()[2].Expanded
	s.inputSystem.HandleClick(slot.X+82.5, slot.Y)
	if right.State() != fab.Expanded {
		t.Errorf("State = %s, keepOpen 菜单项不应收起菜单", right.State())
	}
}

func TestDemoSceneDismissAll(t *testing.T) {
	s := newTestDemoScene(t)
	for _, f := range s.Fabs() {
		f.Toggle()
	}
	s.advance(settleTime)

	s.DismissAll()
	s.advance(settleTime)
	for i, f := range s.Fabs() {
		if f.State() != fab.Collapsed {
			t.Errorf("fabs[%d].State = %s, 期望 collapsed", i, f.State())
		}
	}
}

// TestDemoSceneSwapItemsWhileExpanded 展开时替换菜单项不重放动画
func TestDemoSceneSwapItemsWhileExpanded(t *testing.T) {
	s := newTestDemoScene(t)
	right := s.Fabs()[0]
	right.Toggle()
	s.advance(settleTime)

	s.SwapItems()
	if got := len(right.Items()); got != 4 {
		t.Fatalf("len(Items) = %d, 期望 4", got)
	}
	if right.Items()[0].Text != "Pinned" || right.Items()[3].Text != "Added later" {
		t.Errorf("菜单项顺序不对: %q ... %q", right.Items()[0].Text, right.Items()[3].Text)
	}
	if s.animationSystem.ActiveGroups() != 0 {
		t.Error("替换菜单项不应启动动画")
	}
	if right.State() != fab.Expanded {
		t.Errorf("State = %s, 期望 expanded", right.State())
	}

	s.SwapItems()
	if got := len(right.Items()); got != 3 {
		t.Errorf("再次切换后 len(Items) = %d, 期望 3", got)
	}
}

func TestDemoSceneToggleFirstItem(t *testing.T) {
	s := newTestDemoScene(t)
	first := s.Fabs()[0].Items()[0]

	s.ToggleFirstItem()
	if !first.IsDisabled {
		t.Error("第一项应被禁用")
	}
	s.ToggleFirstItem()
	if first.IsDisabled {
		t.Error("第一项应恢复可用")
	}
}

func TestDemoSceneResize(t *testing.T) {
	s := newTestDemoScene(t)
	right := s.Fabs()[0]
	right.Toggle()
	s.advance(settleTime)

	s.Resize(1024, 768)
	if got := right.ButtonCenter(); got != (fab.Point{X: 984, Y: 728}) {
		t.Errorf("ButtonCenter = %+v, 期望 (984, 728)", got)
	}
	if right.State() != fab.Collapsing {
		t.Errorf("State = %s, 尺寸变化应收起菜单", right.State())
	}
	// 左上角 FAB 的位置不随尺寸变化
	if got := s.Fabs()[1].ButtonCenter(); got != (fab.Point{X: 40, Y: 40}) {
		t.Errorf("左上角 FAB 中心 = %+v", got)
	}
}

func TestDemoSceneClose(t *testing.T) {
	s, err := NewDemoScene(testDemoConfig(), game.NewSceneManager())
	if err != nil {
		t.Fatalf("NewDemoScene failed: %v", err)
	}
	fabs := s.Fabs()

	s.Close()
	if n := s.dismissAll.SubscriberCount(fab.SignalDismissAll); n != 0 {
		t.Errorf("关闭后 dismiss-all 订阅数 = %d, 期望 0", n)
	}
	if n := s.entityManager.EntityCount(); n != 0 {
		t.Errorf("关闭后剩余实体 = %d, 期望 0", n)
	}
	if fabs[0].Toggle() {
		t.Error("关闭后的 FAB 不应响应 Toggle")
	}
}

func TestSceneFactory(t *testing.T) {
	sm := game.NewSceneManager()
	sm.SetSceneFactory(NewFactory(testDemoConfig(), sm))

	sm.Load(SceneDemo)
	demo, ok := sm.GetCurrentScene().(*DemoScene)
	if !ok {
		t.Fatalf("当前场景 = %T, 期望 *DemoScene", sm.GetCurrentScene())
	}

	sm.Load(NextName(SceneDemo))
	if _, ok := sm.GetCurrentScene().(*LayoutScene); !ok {
		t.Fatalf("当前场景 = %T, 期望 *LayoutScene", sm.GetCurrentScene())
	}
	if len(demo.Fabs()) != 0 {
		t.Error("切换场景后演示场景应被关闭")
	}

	sm.Load("missing")
	if sm.CurrentName() != SceneLayout {
		t.Errorf("未知场景不应切换, got %q", sm.CurrentName())
	}
}

package fab

import (
	"testing"

	"github.com/decker502/fab/pkg/components"
	"github.com/decker502/fab/pkg/config"
	"github.com/decker502/fab/pkg/ecs"
	"github.com/stretchr/testify/assert"
)

func TestComputeItemGeometryButtonOnRight(t *testing.T) {
	item := NewItem("Share", GlyphIcon("S"), nil)
	geo := computeItemGeometry(item, -1)

	assert.Equal(t, 82.5, geo.buttonCenterX)
	assert.False(t, geo.hidesButton)
	assert.Equal(t, "Share", geo.text)
	// 标签右边缘 = 100 - 35 - 5
	assert.Equal(t, 60.0, geo.label.X+geo.label.Width)
	assert.Equal(t, 5*7.0+config.LabelInsetX, geo.label.Width)
	assert.Equal(t, 13+config.LabelInsetY, geo.label.Height)
	assert.Equal(t, -geo.label.Height/2, geo.label.Y)
}

func TestComputeItemGeometryMirrored(t *testing.T) {
	item := NewItem("Share", GlyphIcon("S"), nil)
	geo := computeItemGeometry(item, 1)

	assert.Equal(t, -82.5, geo.buttonCenterX)
	assert.Equal(t, -60.0, geo.label.X)
}

func TestComputeItemGeometryLabelOnly(t *testing.T) {
	geo := computeItemGeometry(NewItem("Only text", Icon{}, nil), -1)

	assert.True(t, geo.hidesButton)
	assert.Equal(t, 100.0, geo.label.X+geo.label.Width, "没有按钮时标签贴齐视图边缘")
}

func TestComputeItemGeometryTruncates(t *testing.T) {
	long := "This label is far too long to fit beside the button"
	geo := computeItemGeometry(NewItem(long, GlyphIcon("L"), nil), -1)

	assert.NotEqual(t, long, geo.text)
	assert.LessOrEqual(t, geo.label.Width, 150.0+config.LabelInsetX)
	assert.GreaterOrEqual(t, geo.label.X, -config.ItemViewWidth/2)
}

func TestComputeItemGeometryBlankText(t *testing.T) {
	geo := computeItemGeometry(NewItem("   ", GlyphIcon("B"), nil), -1)

	assert.Empty(t, geo.text)
	assert.Equal(t, components.HitRect{}, geo.label)
}

func TestItemViewHitShape(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	view := newItemView(em, NewItem("Share", GlyphIcon("S"), nil), -1, func() { clicks++ }, nil)
	view.SnapTo(Point{X: 100, Y: 100}, 1)

	clickable, _ := ecs.GetComponent[*components.ClickableComponent](em, view.ID())
	assert.True(t, clickable.Shape.Contains(82.5, 0), "按钮中心")
	assert.True(t, clickable.Shape.Contains(40, 0), "标签内")
	assert.False(t, clickable.Shape.Contains(-90, 0), "视图左侧空白")
	assert.False(t, clickable.IsEnabled, "绑定闸门前不可点击")

	hover, _ := ecs.GetComponent[*components.HoverComponent](em, view.ID())
	assert.Len(t, hover.Regions, 2)
	assert.Equal(t, Point{X: 100, Y: 100}, view.Position())
}

func TestItemViewDetach(t *testing.T) {
	em := ecs.NewEntityManager()
	gate := NewInputGate(NewEmitter())
	view := newItemView(em, NewItem("x", GlyphIcon("x"), nil), -1, nil, nil)
	view.bindGate(gate)
	gate.Enable()

	clickable, _ := ecs.GetComponent[*components.ClickableComponent](em, view.ID())
	assert.True(t, clickable.IsEnabled)

	view.detach()
	app, _ := ecs.GetComponent[*components.AppearanceComponent](em, view.ID())
	assert.True(t, app.Hidden)
	assert.False(t, clickable.IsEnabled)

	gate.Disable()
	gate.Enable()
	assert.False(t, clickable.IsEnabled, "移除后不再跟随闸门")
}

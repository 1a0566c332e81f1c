package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 表示 FAB 配置不合法
// 构造时直接失败，不做静默修正（例如不会把负直径夹到 0）
var ErrInvalidConfig = errors.New("invalid fab config")

// Anchor 主按钮锚定的宿主表面角落
type Anchor int

const (
	// AnchorBottomRight 右下角（默认），菜单项向上展开
	AnchorBottomRight Anchor = iota
	// AnchorBottomLeft 左下角，菜单项向上展开
	AnchorBottomLeft
	// AnchorTopRight 右上角，菜单项向下展开
	AnchorTopRight
	// AnchorTopLeft 左上角，菜单项向下展开
	AnchorTopLeft
)

var anchorNames = map[Anchor]string{
	AnchorBottomRight: "bottom-right",
	AnchorBottomLeft:  "bottom-left",
	AnchorTopRight:    "top-right",
	AnchorTopLeft:     "top-left",
}

// String 返回锚点的 YAML 名称
func (a Anchor) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// IsTop 锚定在上边缘时菜单项向下展开
func (a Anchor) IsTop() bool {
	return a == AnchorTopRight || a == AnchorTopLeft
}

// IsLeft 锚定在左边缘时菜单项位于按钮右侧
func (a Anchor) IsLeft() bool {
	return a == AnchorBottomLeft || a == AnchorTopLeft
}

// ParseAnchor 解析锚点名称（大小写不敏感）
func ParseAnchor(s string) (Anchor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for anchor, anchorName := range anchorNames {
		if anchorName == name {
			return anchor, nil
		}
	}
	return AnchorBottomRight, fmt.Errorf("%w: unknown anchor %q", ErrInvalidConfig, s)
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (a *Anchor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAnchor(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (a Anchor) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// Kind 主按钮的外观类型
type Kind int

const (
	// KindColored 纯色背景按钮，带投影
	KindColored Kind = iota
	// KindTranslucent 半透明背景按钮，无投影，背景色为透明
	KindTranslucent
)

// UnmarshalYAML 实现 yaml.Unmarshaler，接受 "colored" / "translucent"
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "colored", "":
		*k = KindColored
	case "translucent":
		*k = KindTranslucent
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, s)
	}
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (k Kind) MarshalYAML() (interface{}, error) {
	if k == KindTranslucent {
		return "translucent", nil
	}
	return "colored", nil
}

// HexColor 以 "#RRGGBB" 或 "#RRGGBBAA" 形式出现在 YAML 中的颜色
type HexColor struct {
	color.RGBA
}

// ParseHexColor 解析十六进制颜色字符串
func ParseHexColor(s string) (HexColor, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return HexColor{}, fmt.Errorf("%w: bad color %q", ErrInvalidConfig, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("%w: bad color %q", ErrInvalidConfig, s)
	}
	return HexColor{color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}}, nil
}

// String 返回 "#RRGGBBAA"
func (c HexColor) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (c HexColor) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// FabConfig FAB 控件配置
//
// 每个 Fab 实例持有一份副本；只有颜色/投影/半透明这类纯视觉字段
// 通过 Fab 的 setter 修改，下一帧渲染生效，不触发重新布局。
type FabConfig struct {
	Diameter        float64 `yaml:"diameter"`        // 主按钮直径
	ItemOffset      float64 `yaml:"itemOffset"`      // 相邻菜单项之间的间距
	FirstItemOffset float64 `yaml:"firstItemOffset"` // 主按钮与最近菜单项之间的间距

	MouseOverScale    float64 `yaml:"mouseOverScale"`    // 悬停缩放系数，1 表示不缩放
	MouseOverRotation float64 `yaml:"mouseOverRotation"` // 展开时主按钮旋转角度（弧度）

	BackgroundColor         HexColor `yaml:"backgroundColor"`         // 收起时的按钮背景色
	BackgroundColorSelected HexColor `yaml:"backgroundColorSelected"` // 展开时的按钮背景色

	HidesShadowWhenActive     bool `yaml:"hidesShadowWhenActive"`     // 展开时隐藏投影
	UsesTranslucentBackground bool `yaml:"usesTranslucentBackground"` // 展开时显示半透明遮罩

	Anchor        Anchor  `yaml:"anchor"`        // 锚定角落
	Margin        float64 `yaml:"margin"`        // 与锚定角落两条边的距离
	Kind          Kind    `yaml:"kind"`          // 按钮外观类型
	KeyEquivalent string  `yaml:"keyEquivalent"` // 快捷键，如 "ctrl+f"，为空表示无
}

// DefaultFabConfig 返回默认配置
func DefaultFabConfig() FabConfig {
	return FabConfig{
		Diameter:                  50,
		ItemOffset:                10,
		FirstItemOffset:           10,
		MouseOverScale:            1.05,
		MouseOverRotation:         math.Pi / 4,
		BackgroundColor:           HexColor{color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		BackgroundColorSelected:   HexColor{color.RGBA{R: 0xff, G: 0x3b, B: 0x30, A: 0xff}},
		HidesShadowWhenActive:     true,
		UsesTranslucentBackground: false,
		Anchor:                    AnchorBottomRight,
		Margin:                    DefaultAnchorMargin,
		Kind:                      KindColored,
	}
}

// Validate 校验配置，返回包装了 ErrInvalidConfig 的错误
func (c FabConfig) Validate() error {
	if !(c.Diameter > 0) || math.IsInf(c.Diameter, 0) {
		return fmt.Errorf("%w: diameter must be positive, got %v", ErrInvalidConfig, c.Diameter)
	}
	if c.ItemOffset < 0 || math.IsNaN(c.ItemOffset) {
		return fmt.Errorf("%w: itemOffset must be >= 0, got %v", ErrInvalidConfig, c.ItemOffset)
	}
	if c.FirstItemOffset < 0 || math.IsNaN(c.FirstItemOffset) {
		return fmt.Errorf("%w: firstItemOffset must be >= 0, got %v", ErrInvalidConfig, c.FirstItemOffset)
	}
	if !(c.MouseOverScale >= 1) || math.IsInf(c.MouseOverScale, 0) {
		return fmt.Errorf("%w: mouseOverScale must be >= 1, got %v", ErrInvalidConfig, c.MouseOverScale)
	}
	if math.IsNaN(c.MouseOverRotation) || math.IsInf(c.MouseOverRotation, 0) {
		return fmt.Errorf("%w: mouseOverRotation must be finite", ErrInvalidConfig)
	}
	if c.Margin < 0 || math.IsNaN(c.Margin) {
		return fmt.Errorf("%w: margin must be >= 0, got %v", ErrInvalidConfig, c.Margin)
	}
	if _, ok := anchorNames[c.Anchor]; !ok {
		return fmt.Errorf("%w: unknown anchor %d", ErrInvalidConfig, int(c.Anchor))
	}
	if c.KeyEquivalent != "" {
		if _, err := ParseKeyEquivalent(c.KeyEquivalent); err != nil {
			return err
		}
	}
	return nil
}

// ParseFabConfig 从 YAML 数据解析配置
// 未出现的字段保留 DefaultFabConfig 中的默认值
func ParseFabConfig(data []byte) (FabConfig, error) {
	cfg := DefaultFabConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FabConfig{}, fmt.Errorf("无法解析 FAB 配置: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FabConfig{}, err
	}
	return cfg, nil
}

// LoadFabConfig 从 YAML 文件加载配置
//
// 参数：
//   - path: 配置文件路径
//
// 返回：
//   - FabConfig: 解析并校验后的配置
//   - error: 读取、解析或校验错误
func LoadFabConfig(path string) (FabConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FabConfig{}, fmt.Errorf("无法读取配置文件 %s: %w", path, err)
	}
	cfg, err := ParseFabConfig(data)
	if err != nil {
		return FabConfig{}, fmt.Errorf("配置文件 %s: %w", path, err)
	}
	return cfg, nil
}

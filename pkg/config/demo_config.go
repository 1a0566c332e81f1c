package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDemoConfigPath 嵌入的演示配置路径
const DefaultDemoConfigPath = "data/fab.yaml"

const (
	// DefaultWindowWidth / DefaultWindowHeight 演示窗口的默认逻辑尺寸
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// DemoItemConfig 演示场景中的一个菜单项
type DemoItemConfig struct {
	Text     string `yaml:"text"`
	Glyph    string `yaml:"glyph"`    // 按钮字形，为空时只显示标签
	Disabled bool   `yaml:"disabled"` // 初始禁用
	KeepOpen bool   `yaml:"keepOpen"` // 选择后不收起菜单
}

// DemoFabConfig 演示场景中的一个 FAB：控件配置加菜单项
type DemoFabConfig struct {
	FabConfig `yaml:",inline"`
	Items     []DemoItemConfig `yaml:"items"`
}

// UnmarshalYAML 实现 yaml.Unmarshaler
// 未出现的控件字段保留 DefaultFabConfig 中的默认值
func (c *DemoFabConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain DemoFabConfig
	p := plain{FabConfig: DefaultFabConfig()}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*c = DemoFabConfig(p)
	return nil
}

// DemoConfig 演示程序配置
type DemoConfig struct {
	Title      string          `yaml:"title"`
	Width      int             `yaml:"width"`
	Height     int             `yaml:"height"`
	Background HexColor        `yaml:"background"`
	Easing     string          `yaml:"easing"` // 动画缓动名称，为空时使用 ease-in-out-cubic
	Fabs       []DemoFabConfig `yaml:"fabs"`
}

// DefaultDemoConfig 返回只有一个默认 FAB、没有菜单项的演示配置
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Title:      "FAB Demo",
		Width:      DefaultWindowWidth,
		Height:     DefaultWindowHeight,
		Background: HexColor{color.RGBA{R: 0xf2, G: 0xf2, B: 0xf7, A: 0xff}},
		Fabs:       []DemoFabConfig{{FabConfig: DefaultFabConfig()}},
	}
}

// Validate 校验窗口尺寸和每个 FAB 的配置
func (c DemoConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if len(c.Fabs) == 0 {
		return fmt.Errorf("%w: at least one fab is required", ErrInvalidConfig)
	}

	anchors := make(map[Anchor]int, len(c.Fabs))
	for i, fab := range c.Fabs {
		if err := fab.Validate(); err != nil {
			return fmt.Errorf("fabs[%d]: %w", i, err)
		}
		if prev, ok := anchors[fab.Anchor]; ok {
			return fmt.Errorf("%w: fabs[%d] and fabs[%d] share anchor %s", ErrInvalidConfig, prev, i, fab.Anchor)
		}
		anchors[fab.Anchor] = i
		for j, item := range fab.Items {
			if strings.TrimSpace(item.Text) == "" && item.Glyph == "" {
				return fmt.Errorf("%w: fabs[%d].items[%d] has neither text nor glyph", ErrInvalidConfig, i, j)
			}
		}
	}
	return nil
}

// ParseDemoConfig 从 YAML 数据解析演示配置
func ParseDemoConfig(data []byte) (DemoConfig, error) {
	cfg := DefaultDemoConfig()
	cfg.Fabs = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DemoConfig{}, fmt.Errorf("无法解析演示配置: %w", err)
	}
	if len(cfg.Fabs) == 0 {
		cfg.Fabs = DefaultDemoConfig().Fabs
	}
	if err := cfg.Validate(); err != nil {
		return DemoConfig{}, err
	}
	return cfg, nil
}

// LoadDemoConfig 从 YAML 文件加载演示配置
func LoadDemoConfig(path string) (DemoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DemoConfig{}, fmt.Errorf("无法读取配置文件 %s: %w", path, err)
	}
	cfg, err := ParseDemoConfig(data)
	if err != nil {
		return DemoConfig{}, fmt.Errorf("配置文件 %s: %w", path, err)
	}
	return cfg, nil
}

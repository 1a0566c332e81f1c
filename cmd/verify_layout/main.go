// verify_layout 在不打开窗口的情况下打印 FAB 布局
//
// 用法：
//
//	go run ./cmd/verify_layout -config data/fab.yaml
//	go run ./cmd/verify_layout -anchor top-left -items 5 -yaml
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/fab/pkg/config"
	"github.com/decker502/fab/pkg/fab"
	"gopkg.in/yaml.v3"
)

var (
	// 命令行参数
	configPath = flag.String("config", "", "演示配置文件路径，为空时使用默认配置")
	anchorName = flag.String("anchor", "", "覆盖锚点: bottom-right, bottom-left, top-right, top-left")
	itemCount  = flag.Int("items", -1, "覆盖菜单项数量（默认取配置中的菜单项数）")
	width      = flag.Float64("width", 0, "覆盖表面宽度")
	height     = flag.Float64("height", 0, "覆盖表面高度")
	asYAML     = flag.Bool("yaml", false, "以 YAML 输出")
)

// slotReport 一个菜单项的布局
type slotReport struct {
	Index      int       `yaml:"index"`
	Collapsed  fab.Point `yaml:"collapsed"`
	Expanded   fab.Point `yaml:"expanded"`
	EdgeOffset float64   `yaml:"edgeOffset"`
}

// layoutReport 一个 FAB 的布局
type layoutReport struct {
	Anchor        string       `yaml:"anchor"`
	Center        fab.Point    `yaml:"center"`
	ContentHeight float64      `yaml:"contentHeight"`
	Slots         []slotReport `yaml:"slots"`
}

func main() {
	flag.Parse()

	reports, err := buildReports()
	if err != nil {
		log.Fatalf("布局计算失败: %v", err)
	}

	if *asYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			log.Fatalf("YAML 输出失败: %v", err)
		}
		return
	}

	for _, r := range reports {
		fmt.Printf("%s  center=(%.1f, %.1f)  contentHeight=%.1f\n", r.Anchor, r.Center.X, r.Center.Y, r.ContentHeight)
		for _, s := range r.Slots {
			fmt.Printf("  [%d] collapsed=(%.1f, %.1f)  expanded=(%.1f, %.1f)  edgeOffset=%.1f\n",
				s.Index, s.Collapsed.X, s.Collapsed.Y, s.Expanded.X, s.Expanded.Y, s.EdgeOffset)
		}
	}
}

func buildReports() ([]layoutReport, error) {
	demo := config.DefaultDemoConfig()
	if *configPath != "" {
		loaded, err := config.LoadDemoConfig(*configPath)
		if err != nil {
			return nil, err
		}
		demo = loaded
	}

	w, h := float64(demo.Width), float64(demo.Height)
	if *width > 0 {
		w = *width
	}
	if *height > 0 {
		h = *height
	}

	reports := make([]layoutReport, 0, len(demo.Fabs))
	for _, fc := range demo.Fabs {
		cfg := fc.FabConfig
		if *anchorName != "" {
			anchor, err := config.ParseAnchor(*anchorName)
			if err != nil {
				return nil, err
			}
			cfg.Anchor = anchor
		}
		count := len(fc.Items)
		if *itemCount >= 0 {
			count = *itemCount
		}
		reports = append(reports, buildReport(cfg, count, w, h))
	}
	return reports, nil
}

func buildReport(cfg config.FabConfig, count int, w, h float64) layoutReport {
	direction, side := fab.DirectionsFor(cfg.Anchor)
	params := fab.LayoutParams{
		Center:          fab.AnchoredCenter(cfg.Anchor, cfg.Margin, cfg.Diameter, w, h),
		Diameter:        cfg.Diameter,
		Count:           count,
		ItemOffset:      cfg.ItemOffset,
		FirstItemOffset: cfg.FirstItemOffset,
		ItemHeight:      config.ItemViewHeight,
		LateralOffset:   config.ItemLateralOffset,
		Direction:       direction,
		Side:            side,
	}

	report := layoutReport{
		Anchor:        cfg.Anchor.String(),
		Center:        params.Center,
		ContentHeight: fab.ContentHeight(params, cfg.Margin),
	}
	for i, slot := range fab.ComputeLayout(params) {
		report.Slots = append(report.Slots, slotReport{
			Index:      i,
			Collapsed:  slot.Collapsed,
			Expanded:   slot.Expanded,
			EdgeOffset: fab.EdgeOffset(params, i),
		})
	}
	return report
}

package utils

import (
	"sync"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// labelEllipsis 截断标签时追加的省略号
const labelEllipsis = "..."

var (
	labelFace     *text.GoXFace
	labelFaceOnce sync.Once
)

// LabelFace 返回菜单项标签和按钮字形使用的位图字体
// 延迟创建，避免在包初始化时触碰图形资源
func LabelFace() *text.GoXFace {
	labelFaceOnce.Do(func() {
		labelFace = text.NewGoXFace(basicfont.Face7x13)
	})
	return labelFace
}

// MeasureLabel 测量单行标签的像素尺寸
// 直接基于 x/image 的字体度量计算，不需要图形上下文
func MeasureLabel(s string) (width, height float64) {
	face := basicfont.Face7x13
	height = float64(face.Metrics().Height.Ceil())
	if s == "" {
		return 0, height
	}
	width = float64(font.MeasureString(face, s).Ceil())
	return width, height
}

// TruncateLabel 将标签截断到 maxWidth 以内
// 参数:
//   - s: 标签文字
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - string: 原文本（宽度足够时）或 "前缀..." 形式的截断文本
//
// 按字符截断（支持多字节字符），连省略号都放不下时返回空串。
func TruncateLabel(s string, maxWidth float64) string {
	if w, _ := MeasureLabel(s); w <= maxWidth {
		return s
	}

	ellipsisWidth, _ := MeasureLabel(labelEllipsis)
	if ellipsisWidth > maxWidth {
		return ""
	}

	prefix := ""
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		candidate := prefix + string(r)
		if w, _ := MeasureLabel(candidate); w+ellipsisWidth > maxWidth {
			break
		}
		prefix = candidate
		s = s[size:]
	}

	return prefix + labelEllipsis
}

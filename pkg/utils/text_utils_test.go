package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMeasureLabel 7x13 位图字体每个字符宽 7 像素
func TestMeasureLabel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantWidth float64
	}{
		{"空字符串", "", 0},
		{"单字符", "+", 7},
		{"英文单词", "Share", 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := MeasureLabel(tt.input)
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, 13.0, h)
		})
	}
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "Share", TruncateLabel("Share", 100), "宽度足够时保持原文")
	assert.Equal(t, "Sh...", TruncateLabel("Share with friends", 35))
	assert.Equal(t, "...", TruncateLabel("Share", 21))
	assert.Equal(t, "", TruncateLabel("Share", 10), "连省略号都放不下时返回空串")

	got := TruncateLabel("A very long label that will not fit", 120)
	w, _ := MeasureLabel(got)
	assert.LessOrEqual(t, w, 120.0)
}

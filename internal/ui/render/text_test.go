package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/rangeslider/internal/slider"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "clean string unchanged", input: "volume", want: "volume"},
		{name: "control characters removed", input: "vol\x07ume\n", want: "volume"},
		{name: "tab kept", input: "a\tb", want: "a\tb"},
		{name: "nbsp becomes space", input: "left\u00a0pan", want: "left pan"},
		{name: "invalid byte dropped", input: "ga\xffin", want: "gain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{
			name:     "no truncation needed",
			input:    "hello",
			maxWidth: 10,
			want:     "hello",
		},
		{
			name:     "exact fit",
			input:    "hello",
			maxWidth: 5,
			want:     "hello",
		},
		{
			name:     "truncation with ellipsis",
			input:    "hello world",
			maxWidth: 8,
			want:     "hello w…",
		},
		{
			name:     "wide characters",
			input:    "音量スライダー",
			maxWidth: 5,
			want:     "音量…",
		},
		{
			name:     "empty string",
			input:    "",
			maxWidth: 5,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{name: "short string padded", input: "gain", width: 6, want: "gain  "},
		{name: "long string truncated", input: "balance", width: 4, want: "bal…"},
		{name: "exact fit", input: "bass", width: 4, want: "bass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateAndPad(tt.input, tt.width))
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value    float64
		digits   int
		expected string
	}{
		{value: 50, digits: 0, expected: "50"},
		{value: 1234.5, digits: 1, expected: "1,234.5"},
		{value: 0.5, digits: 2, expected: "0.50"},
		{value: -0.25, digits: 2, expected: "-0.25"},
		{value: -12, digits: 1, expected: "-12.0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatValue(tt.value, tt.digits))
		})
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, 0, Digits(slider.Range{Min: 0, Max: 100, Step: 1}))
	assert.Equal(t, 2, Digits(slider.Range{Min: -1, Max: 1, Step: 0.05}))
	assert.Equal(t, 1, Digits(slider.Range{Min: 0.5, Max: 10, Step: 1}))
	assert.Equal(t, maxLabelDigits, Digits(slider.Range{Min: 0, Max: 1, Step: 1e-12}))
}

func TestValueWidth(t *testing.T) {
	assert.Equal(t, 3, ValueWidth(slider.Range{Min: 0, Max: 100, Step: 1}))
	assert.Equal(t, 5, ValueWidth(slider.Range{Min: -12, Max: 12, Step: 0.5}))
	assert.Equal(t, 5, ValueWidth(slider.Range{Min: 0, Max: 1000, Step: 1}))
	assert.Equal(t, "-0.50", Value(-0.5, slider.Range{Min: -1, Max: 1, Step: 0.05}))
}

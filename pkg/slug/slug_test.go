package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_BasicASCII(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"foo bar baz", "foo-bar-baz"},
		{"Simple", "simple"},
		{"ALL UPPER CASE", "all-upper-case"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestGenerate_TurkishCharacters(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Güneş Kremi", "gunes-kremi"},
		{"Çocuk Şampuanı", "cocuk-sampuani"},
		{"Bebek Losyonu", "bebek-losyonu"},
		{"Gül Suyu Toniği", "gul-suyu-tonigi"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestGenerate_SpecialCharacters(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello!!! World???", "hello-world"},
		{"foo@bar#baz", "foo-bar-baz"},
		{"spf 50+ (losyon)", "spf-50-losyon"},
		{"one & two", "one-two"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestGenerate_Whitespace(t *testing.T) {
	assert.Equal(t, "hello-world", Generate("  hello   world  "))
	assert.Equal(t, "", Generate("   "))
	assert.Equal(t, "", Generate(""))
}

func TestGenerate_OnlySpecialCharacters(t *testing.T) {
	assert.Equal(t, "", Generate("!@#$%"))
}

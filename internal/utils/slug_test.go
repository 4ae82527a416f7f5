package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Plumbing & Repairs", "plumbing-repairs"},
		{"  Moving Help  ", "moving-help"},
		{"Mr. Kim's Handyman Service", "mr-kim-s-handyman-service"},
		{"24/7 Locksmith", "24-7-locksmith"},
		{"ALREADY-SLUGGED", "already-slugged"},
		{"---", "ajussi"},
		{"", "ajussi"},
		{"아저씨 서비스", "ajussi"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "title %q", tt.title)
	}
}

func TestSlugCandidate(t *testing.T) {
	assert.Equal(t, "moving-help", SlugCandidate("moving-help", 0))
	assert.Equal(t, "moving-help", SlugCandidate("moving-help", 1))
	assert.Equal(t, "moving-help-2", SlugCandidate("moving-help", 2))
	assert.Equal(t, "moving-help-17", SlugCandidate("moving-help", 17))
}

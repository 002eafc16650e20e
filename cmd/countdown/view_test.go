package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00.0"},
		{-3, "00:00.0"},
		{0.01, "00:00.1"},
		{9.5, "00:09.5"},
		{10, "00:10.0"},
		{61.25, "01:01.3"},
		{600, "10:00.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatRemaining(tt.seconds), "seconds=%v", tt.seconds)
	}
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, progress(10, 10))
	assert.Equal(t, 0.5, progress(5, 10))
	assert.Equal(t, 1.0, progress(0, 10))
	assert.Equal(t, 0.0, progress(20, 10))
	assert.Equal(t, 1.0, progress(3, 0))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[----------]", progressBar(12, 0))
	assert.Equal(t, "[#####-----]", progressBar(12, 0.5))
	assert.Equal(t, "[##########]", progressBar(12, 1))
	assert.Equal(t, "[##########]", progressBar(12, 3))
	assert.Equal(t, "", progressBar(2, 0.5))
}

func TestStatusLine(t *testing.T) {
	assert.Contains(t, statusLine(false, true, false), "finished")
	assert.Contains(t, statusLine(true, false, true), "paused")
	assert.Contains(t, statusLine(false, false, false), "stopped")
	assert.Contains(t, statusLine(false, false, true), "space pause")
}

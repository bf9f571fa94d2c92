package handlers

import (
	"testing"
	"time"
)

func TestRefreshContentRoundsUp(t *testing.T) {
	tests := []struct {
		delay time.Duration
		want  string
	}{
		{2 * time.Second, "2;url=/produtos"},
		{1500 * time.Millisecond, "2;url=/produtos"},
		{100 * time.Millisecond, "1;url=/produtos"},
		{0, "0;url=/produtos"},
		{-time.Second, "0;url=/produtos"},
	}
	for _, tt := range tests {
		if got := refreshContent(tt.delay, productsPath); got != tt.want {
			t.Errorf("refreshContent(%v) = %q, want %q", tt.delay, got, tt.want)
		}
	}
}

package admin

import "testing"

func TestPercentChange(t *testing.T) {
	tests := []struct {
		current, previous int64
		want              int
	}{
		{0, 0, 0},
		{5, 0, 100}, // anything from zero reads as +100%
		{150, 100, 50},
		{50, 100, -50},
		{100, 100, 0},
		{133, 100, 33},
		{167, 100, 67},
		{0, 40, -100},
	}
	for _, tt := range tests {
		if got := PercentChange(tt.current, tt.previous); got != tt.want {
			t.Errorf("PercentChange(%d, %d) = %d, want %d", tt.current, tt.previous, got, tt.want)
		}
	}
}

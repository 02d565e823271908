package tips

import (
	"testing"
	"time"
)

func TestDaily_Deterministic(t *testing.T) {
	day := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	later := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	if Daily(day) != Daily(later) {
		t.Error("tip changed within the same day")
	}
}

func TestDaily_ChangesAcrossDays(t *testing.T) {
	a := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	b := a.AddDate(0, 0, 1)
	if Daily(a) == Daily(b) {
		t.Skip("adjacent days mapped to the same tip (pool wrap) — acceptable")
	}
}

func TestAll_NonEmpty(t *testing.T) {
	for i, tip := range All() {
		if tip == "" {
			t.Errorf("tip %d is empty", i)
		}
	}
}

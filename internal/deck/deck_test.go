package deck

import (
	"testing"
	"time"
)

func TestByID(t *testing.T) {
	for _, id := range IDs() {
		d, err := ByID(id)
		if err != nil {
			t.Fatalf("ByID(%q) failed: %v", id, err)
		}
		if d.ID != id {
			t.Errorf("deck id = %q, want %q", d.ID, id)
		}
		if len(d.Cards) == 0 {
			t.Errorf("deck %q has no cards", id)
		}
	}
}

func TestByID_Unknown(t *testing.T) {
	if _, err := ByID("klingon"); err == nil {
		t.Fatal("expected error for unknown deck")
	}
}

func TestKanaDecksCoverGojuon(t *testing.T) {
	for _, id := range []string{"hiragana", "katakana"} {
		d, _ := ByID(id)
		if len(d.Cards) != 46 {
			t.Errorf("deck %q has %d cards, want 46", id, len(d.Cards))
		}
	}
}

func TestCheck_CaseAndWhitespaceTolerant(t *testing.T) {
	c := Card{Prompt: "か", Answer: "ka"}
	for _, ans := range []string{"ka", "KA", " ka ", "Ka"} {
		if !c.Check(ans) {
			t.Errorf("Check(%q) = false, want true", ans)
		}
	}
	if c.Check("ki") {
		t.Error("Check(ki) = true, want false")
	}
}

func TestCheck_Alternates(t *testing.T) {
	c := Card{Prompt: "し", Answer: "shi", Alt: []string{"si"}}
	if !c.Check("shi") || !c.Check("si") {
		t.Error("alternate answers not accepted")
	}
	if c.Check("sih") {
		t.Error("wrong answer accepted")
	}
}

func TestShuffled_LengthAndNoEarlyRepeats(t *testing.T) {
	d, _ := ByID("hiragana")

	cards := d.Shuffled(20, 42)
	if len(cards) != 20 {
		t.Fatalf("got %d cards, want 20", len(cards))
	}

	// Requests within one deck size draw without repeats.
	seen := make(map[string]bool)
	for _, c := range cards {
		if seen[c.Prompt] {
			t.Fatalf("prompt %q repeated within first pass", c.Prompt)
		}
		seen[c.Prompt] = true
	}
}

func TestShuffled_ExceedingDeckReshuffles(t *testing.T) {
	d, _ := ByID("vocab")
	n := len(d.Cards)*2 + 3
	cards := d.Shuffled(n, 7)
	if len(cards) != n {
		t.Fatalf("got %d cards, want %d", len(cards), n)
	}
}

func TestShuffled_SeedReproducible(t *testing.T) {
	d, _ := ByID("katakana")
	a := d.Shuffled(10, 99)
	b := d.Shuffled(10, 99)
	for i := range a {
		if a[i].Prompt != b[i].Prompt {
			t.Fatalf("same seed produced different sequences at index %d", i)
		}
	}
}

func TestResultAccuracy(t *testing.T) {
	r := Result{Answered: 20, Correct: 15, Duration: time.Minute}
	if acc := r.Accuracy(); acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}
	if acc := (Result{}).Accuracy(); acc != 0 {
		t.Errorf("empty result accuracy = %v, want 0", acc)
	}
}

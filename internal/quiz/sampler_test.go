package quiz

import (
	"errors"
	"math/rand"
	"testing"
)

// testPool builds a pool of n distinct choice questions.
func testPool(n int) []Question {
	pool := make([]Question, n)
	for i := range pool {
		pool[i] = Question{
			Prompt:       string(rune('A' + i)),
			Kind:         KindChoice,
			Options:      []string{"a", "b"},
			CorrectIndex: 0,
			Topic:        "basics",
		}
	}
	return pool
}

func TestSample_DistinctAndComplete(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := testPool(24)

	for trial := 0; trial < 1000; trial++ {
		drawn, err := Sample(pool, 20, rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(drawn) != 20 {
			t.Fatalf("len = %d, want 20", len(drawn))
		}
		seen := make(map[string]bool, len(drawn))
		for _, q := range drawn {
			if seen[q.Prompt] {
				t.Fatalf("duplicate question %q in sample", q.Prompt)
			}
			seen[q.Prompt] = true
		}
	}
}

func TestSample_Uniformity(t *testing.T) {
	// Each pool element's inclusion frequency should approach K/N.
	rng := rand.New(rand.NewSource(42))
	pool := testPool(10)
	const k, trials = 5, 10000

	counts := make(map[string]int)
	for trial := 0; trial < trials; trial++ {
		drawn, err := Sample(pool, k, rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, q := range drawn {
			counts[q.Prompt]++
		}
	}

	want := float64(trials) * float64(k) / float64(len(pool))
	for prompt, c := range counts {
		ratio := float64(c) / want
		if ratio < 0.9 || ratio > 1.1 {
			t.Errorf("question %q drawn %d times, want ~%.0f", prompt, c, want)
		}
	}
}

func TestSample_SampleExceedsPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Sample(testPool(18), 20, rng)

	var cfgErr *InvalidConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want InvalidConfigurationError", err)
	}
	if cfgErr.PoolSize != 18 || cfgErr.SampleSize != 20 {
		t.Errorf("error carries pool=%d sample=%d, want 18/20", cfgErr.PoolSize, cfgErr.SampleSize)
	}
}

func TestSample_FullPoolIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := testPool(8)

	drawn, err := Sample(pool, 8, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for _, q := range drawn {
		seen[q.Prompt] = true
	}
	for _, q := range pool {
		if !seen[q.Prompt] {
			t.Errorf("question %q missing from full-pool sample", q.Prompt)
		}
	}
}

func TestSample_ZeroK(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	drawn, err := Sample(testPool(5), 0, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drawn) != 0 {
		t.Errorf("len = %d, want 0", len(drawn))
	}
}

func TestPool_AtLeastSampleSize(t *testing.T) {
	if len(Pool()) < DefaultSampleSize {
		t.Fatalf("bank has %d questions, need at least %d", len(Pool()), DefaultSampleSize)
	}
}

func TestPool_ReturnsCopy(t *testing.T) {
	p := Pool()
	p[0].Prompt = "mutated"
	if Pool()[0].Prompt == "mutated" {
		t.Fatal("Pool() exposed the underlying bank slice")
	}
}

func TestPool_WellFormed(t *testing.T) {
	for i, q := range Pool() {
		switch q.Kind {
		case KindChoice:
			if len(q.Options) < 2 {
				t.Errorf("question %d: choice question with %d options", i, len(q.Options))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				t.Errorf("question %d: correct index %d out of range", i, q.CorrectIndex)
			}
		case KindInteractive:
			if q.Exercise == "" {
				t.Errorf("question %d: interactive question without exercise ID", i)
			}
		default:
			t.Errorf("question %d: unknown kind %q", i, q.Kind)
		}
		if q.Topic == "" {
			t.Errorf("question %d: missing topic", i)
		}
	}
}

package wordfreq

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/afumu/wordstat/pkg/normalize"
	"github.com/afumu/wordstat/pkg/segment"
)

func TestRank(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		n        int
		expected TopWords
	}{
		{
			name:     "basic",
			tokens:   []string{"a", "a", "b", "b", "b", "c"},
			n:        2,
			expected: TopWords{{"b", 3}, {"a", 2}},
		},
		{
			name:     "ties keep first occurrence",
			tokens:   []string{"z", "y", "x", "y", "z", "x"},
			n:        3,
			expected: TopWords{{"z", 2}, {"y", 2}, {"x", 2}},
		},
		{
			name:     "fewer than n",
			tokens:   []string{"苹果", "香蕉", "苹果"},
			n:        10,
			expected: TopWords{{"苹果", 2}, {"香蕉", 1}},
		},
		{
			name:     "empty",
			tokens:   nil,
			n:        5,
			expected: TopWords{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rank(tt.tokens, tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRankInvalidCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Rank([]string{"a"}, n)
		if !errors.Is(err, ErrInvalidCount) {
			t.Errorf("n=%d: expected ErrInvalidCount, got %v", n, err)
		}
	}
}

func TestRankProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	alphabet := []string{"a", "b", "c", "d", "e", "f", "g"}

	for round := 0; round < 200; round++ {
		tokens := make([]string, r.Intn(40))
		for i := range tokens {
			tokens[i] = alphabet[r.Intn(len(alphabet))]
		}
		n := 1 + r.Intn(10)

		got, err := Rank(tokens, n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		first := make(map[string]int)
		for i, tok := range tokens {
			if _, ok := first[tok]; !ok {
				first[tok] = i
			}
		}

		expectedLen := n
		if len(first) < n {
			expectedLen = len(first)
		}
		if len(got) != expectedLen {
			t.Fatalf("tokens %v n=%d: expected length %d, got %d", tokens, n, expectedLen, len(got))
		}

		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			if prev.Count < cur.Count {
				t.Fatalf("not sorted: %v", got)
			}
			if prev.Count == cur.Count && first[prev.Text] > first[cur.Text] {
				t.Fatalf("tie order broken: %v for %v", got, tokens)
			}
		}
	}
}

func TestCounts(t *testing.T) {
	c := Count([]string{"a", "b", "a"})
	if c.Total() != 3 {
		t.Errorf("expected total 3, got %d", c.Total())
	}
	if c.Distinct() != 2 {
		t.Errorf("expected distinct 2, got %d", c.Distinct())
	}
	if c.Get("a") != 2 || c.Get("missing") != 0 {
		t.Errorf("unexpected counts: a=%d missing=%d", c.Get("a"), c.Get("missing"))
	}

	top, err := c.Top(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top[0].Count = 100
	if c.Get("a") != 2 {
		t.Errorf("Top must not alias internal state")
	}
}

func TestTopWordsAccessors(t *testing.T) {
	w := TopWords{{"x", 5}, {"y", 2}}
	if !reflect.DeepEqual(w.Texts(), []string{"x", "y"}) {
		t.Errorf("unexpected texts %v", w.Texts())
	}
	if !reflect.DeepEqual(w.Counts(), []int{5, 2}) {
		t.Errorf("unexpected counts %v", w.Counts())
	}
}

func TestRankAfterNormalization(t *testing.T) {
	cleaned := normalize.StripChars("a, a; b b b c", normalize.NewCharSet(",;", false))
	got, err := Rank(segment.Whitespace(cleaned), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := TopWords{{"b", 3}, {"a", 2}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestTopWordsValidate(t *testing.T) {
	tests := []struct {
		name  string
		words TopWords
		valid bool
	}{
		{"ok", TopWords{{Text: "a", Count: 3}, {Text: "b", Count: 1}}, true},
		{"empty list", TopWords{}, true},
		{"zero count", TopWords{{Text: "a", Count: 0}}, false},
		{"negative count", TopWords{{Text: "a", Count: 2}, {Text: "b", Count: -3}}, false},
		{"empty text", TopWords{{Text: "", Count: 1}}, false},
		{"blank text", TopWords{{Text: " \t", Count: 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.words.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidWord) {
				t.Errorf("expected ErrInvalidWord, got %v", err)
			}
		})
	}
}

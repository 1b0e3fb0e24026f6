package segment

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestWhitespace(t *testing.T) {
	got := Whitespace("  a a\tb  b\nb c ")
	expected := []string{"a", "a", "b", "b", "b", "c"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestBigram(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"han run", "今天天气", []string{"今天", "天天", "天气"}},
		{"single han", "好", []string{"好"}},
		{"latin passthrough", "Go语言v2", []string{"Go", "语言", "v2"}},
		{"separators", "hello world", []string{"hello", "world"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bigram(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{NameBigram, NameWhitespace, " Whitespace "} {
		seg, release, err := New(name, "")
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if seg == nil || release == nil {
			t.Fatalf("New(%q) returned nil segmenter or release", name)
		}
		release()
	}

	_, _, err := New("hmm", "")
	if !errors.Is(err, ErrUnknownSegmenter) {
		t.Errorf("expected ErrUnknownSegmenter, got %v", err)
	}
}

func TestJiebaCoversInput(t *testing.T) {
	j := NewJieba("")
	defer j.Close()

	text := "我来到北京清华大学"
	words := j.Segment(text)
	if len(words) < 2 {
		t.Fatalf("expected several words, got %v", words)
	}
	for _, w := range words {
		if w == "" {
			t.Errorf("empty token in %v", words)
		}
	}
	if joined := strings.Join(words, ""); joined != text {
		t.Errorf("expected segments to cover %q, got %q", text, joined)
	}

	if got := j.Segment(""); got != nil {
		t.Errorf("expected nil for empty text, got %v", got)
	}
}

func TestJiebaClosed(t *testing.T) {
	j := NewJieba("")
	j.Close()
	j.Close()
	if got := j.Segment("北京"); got != nil {
		t.Errorf("expected nil after close, got %v", got)
	}
}

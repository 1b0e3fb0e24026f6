package chart

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/afumu/wordstat/pkg/wordfreq"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"wordcloud", WordCloud},
		{"BAR", Bar},
		{"饼状图", Pie},
		{" radar ", Radar},
		{"极坐标图", Polar},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}

	if _, err := ParseKind("heatmap"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestKindTextRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%s) failed: %v", b, err)
		}
		if back != k {
			t.Errorf("expected %v, got %v", k, back)
		}
	}
	if len(Catalog()) != 8 {
		t.Errorf("expected 8 kinds, got %d", len(Catalog()))
	}
	if _, err := Kind(42).MarshalText(); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind for invalid kind, got %v", err)
	}
}

func TestAdaptEmptyInput(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			_, err := Adapt(k, wordfreq.TopWords{})
			if !errors.Is(err, ErrEmptyInput) {
				t.Errorf("expected ErrEmptyInput, got %v", err)
			}
		})
	}
}

func TestAdaptAllKinds(t *testing.T) {
	words := wordfreq.TopWords{{Text: "苹果", Count: 10}, {Text: "banana", Count: 3}}
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			spec, err := Adapt(k, words)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(spec.Series) != 1 {
				t.Fatalf("expected 1 series, got %d", len(spec.Series))
			}
			if spec.Title.Text == "" {
				t.Errorf("expected a title")
			}
			if _, err := json.Marshal(spec); err != nil {
				t.Errorf("spec not serializable: %v", err)
			}
		})
	}
}

func TestAdaptUnknownKind(t *testing.T) {
	_, err := Adapt(Kind(99), wordfreq.TopWords{{Text: "a", Count: 1}})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestRadarPerAxisMax(t *testing.T) {
	spec, err := Adapt(Radar, wordfreq.TopWords{{Text: "x", Count: 5}, {Text: "y", Count: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedIndicators := []Indicator{{Name: "x", Max: 5}, {Name: "y", Max: 2}}
	if !reflect.DeepEqual(spec.Radar.Indicator, expectedIndicators) {
		t.Errorf("expected indicators %v, got %v", expectedIndicators, spec.Radar.Indicator)
	}

	expectedData := []RadarValue{{Value: []int{5, 2}}}
	if !reflect.DeepEqual(spec.Series[0].Data, expectedData) {
		t.Errorf("expected data %v, got %v", expectedData, spec.Series[0].Data)
	}
}

func TestCategoricalSeries(t *testing.T) {
	words := wordfreq.TopWords{{Text: "b", Count: 3}, {Text: "a", Count: 2}}
	for kind, seriesType := range map[Kind]string{Bar: "bar", Line: "line", Scatter: "scatter"} {
		spec, err := Adapt(kind, words)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", kind, err)
		}
		if !reflect.DeepEqual(spec.XAxis.Data, []string{"b", "a"}) {
			t.Errorf("%v: unexpected x axis %v", kind, spec.XAxis.Data)
		}
		s := spec.Series[0]
		if s.Name != SeriesName || s.Type != seriesType {
			t.Errorf("%v: unexpected series %q/%q", kind, s.Name, s.Type)
		}
		if !reflect.DeepEqual(s.Data, []int{3, 2}) {
			t.Errorf("%v: unexpected data %v", kind, s.Data)
		}
	}
}

func TestPieResortsAndStyles(t *testing.T) {
	words := wordfreq.TopWords{{Text: "a", Count: 1}, {Text: "b", Count: 4}, {Text: "c", Count: 4}}
	spec, err := Adapt(Pie, words)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []DataItem{{"b", 4}, {"c", 4}, {"a", 1}}
	if !reflect.DeepEqual(spec.Series[0].Data, expected) {
		t.Errorf("expected %v, got %v", expected, spec.Series[0].Data)
	}
	if words[0].Text != "a" {
		t.Errorf("input must not be reordered")
	}
	if spec.Series[0].Label.Formatter != "{b}: {c}" {
		t.Errorf("unexpected label formatter %q", spec.Series[0].Label.Formatter)
	}
	if !reflect.DeepEqual(spec.Series[0].Radius, []string{"30%", "75%"}) {
		t.Errorf("unexpected radius %v", spec.Series[0].Radius)
	}
	if !strings.Contains(spec.Title.Text, "Top 3 Words") {
		t.Errorf("unexpected title %q", spec.Title.Text)
	}
}

func TestPieRadiusOption(t *testing.T) {
	words := wordfreq.TopWords{{Text: "a", Count: 2}, {Text: "b", Count: 1}}

	spec, err := Options{PieRadius: [2]string{"10%", "60%"}}.Adapt(Pie, words)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(spec.Series[0].Radius, []string{"10%", "60%"}) {
		t.Errorf("expected [10%% 60%%], got %v", spec.Series[0].Radius)
	}

	spec, err = Options{}.Adapt(Pie, words)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(spec.Series[0].Radius, []string{"30%", "75%"}) {
		t.Errorf("expected default radius, got %v", spec.Series[0].Radius)
	}

	if _, err := (Options{PieRadius: [2]string{"10%", "60%"}}).Adapt(Pie, nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestParsePieRadius(t *testing.T) {
	got, err := ParsePieRadius(" 20% , 80% ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != [2]string{"20%", "80%"} {
		t.Errorf("expected [20%% 80%%], got %v", got)
	}

	for _, bad := range []string{"", "30%", "30%,", "1,2,3"} {
		if _, err := ParsePieRadius(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

package export

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/afumu/wordstat/pkg/wordfreq"
	"github.com/xuri/excelize/v2"
)

func TestExportCSV(t *testing.T) {
	s := NewService("")
	data, err := s.ExportCSV(wordfreq.TopWords{{Text: "apple", Count: 10}, {Text: "banana", Count: 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "apple,10\nbanana,3\n"
	if string(data) != expected {
		t.Errorf("expected %q, got %q", expected, string(data))
	}
}

func TestCSVRoundTrip(t *testing.T) {
	tests := []wordfreq.TopWords{
		{{Text: "苹果", Count: 7}, {Text: "香蕉", Count: 7}, {Text: "梨", Count: 1}},
		{{Text: "a,b", Count: 2}, {Text: `say "hi"`, Count: 1}},
		{},
	}
	s := NewService("")
	for _, words := range tests {
		data, err := s.ExportCSV(words)
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		back, err := ParseCSV(data)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if !reflect.DeepEqual(back, words) {
			t.Errorf("expected %v, got %v", words, back)
		}
	}
}

func TestParseCSVInvalid(t *testing.T) {
	if _, err := ParseCSV([]byte("a,x\n")); err == nil {
		t.Errorf("expected error for non-numeric count")
	}
	if _, err := ParseCSV([]byte("a,1,extra\n")); err == nil {
		t.Errorf("expected error for wrong field count")
	}
}

func TestExportXLSX(t *testing.T) {
	s := NewService("")
	art, err := s.Export(wordfreq.TopWords{{Text: "词", Count: 4}}, "xlsx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if art.FileName != "高频词.xlsx" {
		t.Errorf("unexpected file name %q", art.FileName)
	}

	f, err := excelize.OpenReader(bytes.NewReader(art.Data))
	if err != nil {
		t.Fatalf("open xlsx failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	expected := [][]string{{"词", "频次"}, {"词", "4"}}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("expected %v, got %v", expected, rows)
	}
}

func TestExportFormats(t *testing.T) {
	s := NewService("words.csv")
	art, err := s.Export(wordfreq.TopWords{{Text: "x", Count: 1}}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if art.FileName != "words.csv" || art.ContentType != "text/csv" {
		t.Errorf("unexpected artifact %q %q", art.FileName, art.ContentType)
	}

	_, err = s.Export(nil, "pdf")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestExportCSVQuoting(t *testing.T) {
	words := wordfreq.TopWords{{Text: `say "hi"`, Count: 2}, {Text: "a,b", Count: 1}}
	data, err := NewService("").ExportCSV(words)
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	expected := "\"say \"\"hi\"\"\",2\n\"a,b\",1\n"
	if string(data) != expected {
		t.Errorf("expected %q, got %q", expected, string(data))
	}

	back, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if !reflect.DeepEqual(back, words) {
		t.Errorf("expected %v, got %v", words, back)
	}
}

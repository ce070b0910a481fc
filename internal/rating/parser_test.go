package rating

import (
	"reflect"
	"testing"
)

func newTestParser() *Parser {
	return NewParser(DefaultVocabulary())
}

func TestParseRecapLine(t *testing.T) {
	reply := `The candidate shows a solid profile overall.

**Ratings Recap**: Education = Strong, Industry = Moderate, Range = Sound, Benchmark = Low, Length = Moderate, Within = Exceptional`

	got := newTestParser().Parse(reply)

	want := map[string]string{
		"Education":                       "strong",
		"Industry Experience":             "moderate",
		"Range of Experience":             "sound",
		"Benchmark of Career Exposure":    "low",
		"Average Length of Stay at Firms": "moderate",
		"Within Firm Alignment":           "exceptional",
	}
	if !reflect.DeepEqual(got.Ratings, want) {
		t.Errorf("Parse recap ratings = %v, want %v", got.Ratings, want)
	}
	if got.ReportedTotal != nil {
		t.Errorf("ReportedTotal = %v, want nil", *got.ReportedTotal)
	}
}

func TestParseFallbackLineScan(t *testing.T) {
	reply := "Education: Strong\nIndustry Experience: Moderate\nSome closing remarks."

	got := newTestParser().Parse(reply)

	want := map[string]string{
		"Education":                       "strong",
		"Industry Experience":             "moderate",
		"Range of Experience":             MissingRating,
		"Benchmark of Career Exposure":    MissingRating,
		"Average Length of Stay at Firms": MissingRating,
		"Within Firm Alignment":           MissingRating,
	}
	if !reflect.DeepEqual(got.Ratings, want) {
		t.Errorf("Parse fallback ratings = %v, want %v", got.Ratings, want)
	}
}

func TestParseJustificationBlocks(t *testing.T) {
	reply := `1. Education
The candidate has a strong academic record from a leading university.

2. Industry Experience
Exposure is moderate, mostly within one sector.

3. Range of Experience
Sound coverage across functions.`

	got := newTestParser().Parse(reply)

	if got.Ratings["Education"] != "strong" {
		t.Errorf("Education = %q, want %q", got.Ratings["Education"], "strong")
	}
	if got.Ratings["Industry Experience"] != "moderate" {
		t.Errorf("Industry Experience = %q, want %q", got.Ratings["Industry Experience"], "moderate")
	}
	if got.Ratings["Range of Experience"] != "sound" {
		t.Errorf("Range of Experience = %q, want %q", got.Ratings["Range of Experience"], "sound")
	}
	if got.Ratings["Within Firm Alignment"] != MissingRating {
		t.Errorf("Within Firm Alignment = %q, want %q", got.Ratings["Within Firm Alignment"], MissingRating)
	}
}

func TestParseFirstMatchWins(t *testing.T) {
	reply := `Education: Strong
Further notes follow.
Education: Low`

	got := newTestParser().Parse(reply)

	if got.Ratings["Education"] != "strong" {
		t.Errorf("Education = %q, want first match %q", got.Ratings["Education"], "strong")
	}
}

func TestParseFirstCategoryWinsOnSharedLine(t *testing.T) {
	reply := "Education and Industry Experience: Sound"

	got := newTestParser().Parse(reply)

	if got.Ratings["Education"] != "sound" {
		t.Errorf("Education = %q, want %q", got.Ratings["Education"], "sound")
	}
	if got.Ratings["Industry Experience"] != MissingRating {
		t.Errorf("Industry Experience = %q, want %q", got.Ratings["Industry Experience"], MissingRating)
	}
}

func TestParseNumericRatings(t *testing.T) {
	reply := "Education: 3\nIndustry Experience: 1"

	got := newTestParser().Parse(reply)

	if got.Ratings["Education"] != "3" {
		t.Errorf("Education = %q, want %q", got.Ratings["Education"], "3")
	}
	if got.Ratings["Industry Experience"] != "1" {
		t.Errorf("Industry Experience = %q, want %q", got.Ratings["Industry Experience"], "1")
	}
}

func TestParseReportedTotal(t *testing.T) {
	reply := `Education: Strong
Industry Experience: Moderate
Total: 14`

	got := newTestParser().Parse(reply)

	if got.ReportedTotal == nil || *got.ReportedTotal != 14 {
		t.Fatalf("ReportedTotal = %v, want 14", got.ReportedTotal)
	}
}

func TestParseIgnoresSubtotalLines(t *testing.T) {
	reply := "Education: Strong\nSubtotal: 3"

	got := newTestParser().Parse(reply)

	if got.ReportedTotal != nil {
		t.Errorf("ReportedTotal = %v, want nil for subtotal-only reply", *got.ReportedTotal)
	}
}

func TestParseEmptyReply(t *testing.T) {
	got := newTestParser().Parse("")

	if len(got.Ratings) != len(ModelCategories()) {
		t.Fatalf("Ratings has %d entries, want %d", len(got.Ratings), len(ModelCategories()))
	}
	for cat, raw := range got.Ratings {
		if raw != MissingRating {
			t.Errorf("%s = %q, want %q", cat, raw, MissingRating)
		}
	}
}

func TestParseIsIdempotent(t *testing.T) {
	reply := `Education: Strong
Industry Experience: Moderate
Range of Experience: Sound
Total: 6`

	p := newTestParser()
	first := p.Parse(reply)
	second := p.Parse(reply)

	if !reflect.DeepEqual(first.Ratings, second.Ratings) {
		t.Errorf("re-parsing the same reply changed ratings: %v vs %v", first.Ratings, second.Ratings)
	}
}

package rating

import (
	"regexp"
	"strconv"
	"strings"
)

// MissingRating is recorded for categories the model reply never scored. The
// composer converts it to 0; an incomplete reply degrades, it never aborts.
const MissingRating = "N/A"

// Extraction is the parsed view of one model reply: a raw rating token per
// model category (MissingRating when absent) and, when the reply stated one,
// the model's own total for cross-checking.
type Extraction struct {
	Ratings       map[string]string
	ReportedTotal *int
}

// Parser extracts per-category ratings from the model's free-text reply. It
// prefers the canonical recap line the prompt demands and falls back to an
// ordered line scan when the reply drifts from that layout.
//
// Duplicate mentions of a category follow a first-match-wins policy: once a
// rating is recorded for a category, later mentions never overwrite it.
type Parser struct {
	vocab      Vocabulary
	categories []Category
	recapRe    *regexp.Regexp
	labelRes   []*regexp.Regexp
}

func NewParser(vocab Vocabulary) *Parser {
	cats := ModelCategories()
	return &Parser{
		vocab:      vocab,
		categories: cats,
		recapRe:    buildRecapRegexp(cats),
		labelRes:   buildLabelRegexps(cats),
	}
}

// Parse is deterministic and total: it always returns a rating entry for every
// model category and never fails, whatever the reply looks like.
func (p *Parser) Parse(reply string) Extraction {
	ratings := make(map[string]string, len(p.categories))
	for _, cat := range p.categories {
		ratings[cat.Name] = MissingRating
	}

	if m := p.recapRe.FindStringSubmatch(reply); m != nil {
		for i, cat := range p.categories {
			ratings[cat.Name] = NormalizeToken(m[i+1])
		}
	} else {
		p.scanLines(reply, ratings)
	}

	return Extraction{
		Ratings:       ratings,
		ReportedTotal: extractReportedTotal(reply),
	}
}

// scanLines is the fallback path: walk the reply line by line keeping a
// current-category cursor, and record the first recognizable rating token seen
// on or after a category's label line.
func (p *Parser) scanLines(reply string, ratings map[string]string) {
	cursor := -1
	for _, line := range strings.Split(reply, "\n") {
		if idx, end := p.matchCategoryLabel(line); idx >= 0 {
			cat := p.categories[idx]
			if ratings[cat.Name] != MissingRating {
				// First match won already; a repeated mention resets nothing.
				cursor = -1
				continue
			}
			if tok, ok := p.findRatingToken(line[end:]); ok {
				ratings[cat.Name] = tok
				cursor = -1
			} else {
				cursor = idx
			}
			continue
		}
		if cursor >= 0 {
			if tok, ok := p.findRatingToken(line); ok {
				ratings[p.categories[cursor].Name] = tok
				cursor = -1
			}
		}
	}
}

// matchCategoryLabel finds the earliest category label on the line. When a
// line mentions more than one category, the first one encountered wins.
func (p *Parser) matchCategoryLabel(line string) (catIdx, labelEnd int) {
	catIdx, labelEnd = -1, -1
	best := len(line) + 1
	for i, re := range p.labelRes {
		loc := re.FindStringIndex(line)
		if loc != nil && loc[0] < best {
			best = loc[0]
			catIdx = i
			labelEnd = loc[1]
		}
	}
	return catIdx, labelEnd
}

// findRatingToken scans a fragment for the first vocabulary word (two-word
// entries checked first) or standalone number. Unrecognizable prose yields
// nothing, leaving the category open for a later line.
func (p *Parser) findRatingToken(fragment string) (string, bool) {
	words := tokenWords(fragment)
	for i := range words {
		if i+1 < len(words) {
			if bigram := words[i] + " " + words[i+1]; p.vocab.Contains(bigram) {
				return bigram, true
			}
		}
		if p.vocab.Contains(words[i]) {
			return words[i], true
		}
		if _, err := strconv.Atoi(words[i]); err == nil {
			return words[i], true
		}
	}
	return "", false
}

var totalRe = regexp.MustCompile(`(?i)\btotal\b[^0-9\-+]*([-+]?\d+)`)

// extractReportedTotal pulls a model-stated total off a line containing
// "total". The composer treats it as a cross-check, never as a parse result.
func extractReportedTotal(reply string) *int {
	for _, line := range strings.Split(reply, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "total") || strings.Contains(lower, "subtotal") {
			continue
		}
		if m := totalRe.FindStringSubmatch(line); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return &n
			}
		}
	}
	return nil
}

func tokenWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '+')
	})
}

// buildRecapRegexp mirrors the layout the prompt demands:
//
//	Ratings Recap: Education = ..., Industry = ..., Range = ..., Benchmark = ..., Length = ..., Within = ...
//
// tolerating markdown emphasis and flexible whitespace around the pieces.
func buildRecapRegexp(cats []Category) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString(`(?i)ratings\s*recap\**\s*[:\-]?\s*\**\s*`)
	for i, cat := range cats {
		if i > 0 {
			sb.WriteString(`[\s*]*,\s*\**\s*`)
		}
		sb.WriteString(regexp.QuoteMeta(strings.ToLower(cat.Recap)))
		sb.WriteString(`\s*=\s*(\w+)`)
	}
	return regexp.MustCompile(sb.String())
}

func buildLabelRegexps(cats []Category) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(cats))
	for _, cat := range cats {
		// The full name matches anywhere; the short recap alias only when it
		// is followed by a delimiter, so ordinary prose does not trip it.
		pattern := `(?i)` + regexp.QuoteMeta(cat.Name)
		if !strings.EqualFold(cat.Name, cat.Recap) {
			pattern += `|(?i)\b` + regexp.QuoteMeta(cat.Recap) + `\b\s*[:=\-]`
		}
		res = append(res, regexp.MustCompile(pattern))
	}
	return res
}

package rating

// BenchmarkScore is the static reference total reported next to every
// composite score. It is not derived from input data.
const BenchmarkScore = 22

// TotalPolicy decides what to do when the model reply states its own total.
type TotalPolicy string

const (
	// TotalPolicyResum always re-sums per-category scores and only flags a
	// disagreement with the reported total. Default: the re-summed value is
	// auditable category by category.
	TotalPolicyResum TotalPolicy = "resum"
	// TotalPolicyReported substitutes the model's reported total for the
	// re-summed model subtotal, matching the legacy behavior some operators
	// rely on.
	TotalPolicyReported TotalPolicy = "reported"
)

// RaterModel and RaterConsultant identify the two rating streams in a
// breakdown.
const (
	RaterModel      = "model"
	RaterConsultant = "consultant"
)

// CategoryScore is one converted rating: the signed contribution a single
// category made to its stream's subtotal.
type CategoryScore struct {
	Category string `json:"category"`
	Rater    string `json:"rater"`
	Raw      string `json:"raw"`
	Score    int    `json:"score"`
}

// Breakdown is the fully deterministic output of one composition pass.
type Breakdown struct {
	PerCategory        []CategoryScore `json:"per_category"`
	ModelSubtotal      int             `json:"model_subtotal"`
	ConsultantSubtotal int             `json:"consultant_subtotal"`
	Total              int             `json:"total"`
	Benchmark          int             `json:"benchmark"`
	ReportedTotal      *int            `json:"reported_total,omitempty"`
	TotalMismatch      bool            `json:"total_mismatch,omitempty"`
}

// Composer converts raw rating maps into a signed composite score. It has no
// error paths: unknown tokens and missing categories score 0 by policy.
type Composer struct {
	vocab  Vocabulary
	policy TotalPolicy
}

func NewComposer(vocab Vocabulary, policy TotalPolicy) *Composer {
	if policy != TotalPolicyReported {
		policy = TotalPolicyResum
	}
	return &Composer{vocab: vocab, policy: policy}
}

// Compose converts both rating streams, applies polarity, and sums the
// subtotals into the total. reportedTotal, when present, is cross-checked
// against the re-summed model subtotal per the configured policy.
func (c *Composer) Compose(modelRatings, consultantRatings map[string]string, reportedTotal *int) Breakdown {
	b := Breakdown{Benchmark: BenchmarkScore, ReportedTotal: reportedTotal}

	for _, cat := range ModelCategories() {
		raw, ok := modelRatings[cat.Name]
		if !ok {
			raw = MissingRating
		}
		score := c.vocab.Score(raw)
		b.PerCategory = append(b.PerCategory, CategoryScore{
			Category: cat.Name, Rater: RaterModel, Raw: raw, Score: score,
		})
		b.ModelSubtotal += score
	}

	for _, cat := range ConsultantCategories() {
		raw, ok := consultantRatings[cat.Name]
		if !ok {
			raw = MissingRating
		}
		score := c.vocab.Score(raw)
		if cat.Polarity == Inverted {
			score = -score
		}
		b.PerCategory = append(b.PerCategory, CategoryScore{
			Category: cat.Name, Rater: RaterConsultant, Raw: raw, Score: score,
		})
		b.ConsultantSubtotal += score
	}

	if reportedTotal != nil {
		b.TotalMismatch = *reportedTotal != b.ModelSubtotal
		if c.policy == TotalPolicyReported {
			b.ModelSubtotal = *reportedTotal
		}
	}

	b.Total = b.ModelSubtotal + b.ConsultantSubtotal
	return b
}

// ScoresFor returns the per-category scores of one rater stream in the fixed
// category order. For inverted categories the unsigned converted value is
// returned, matching what the spreadsheet columns have always carried.
func (b Breakdown) ScoresFor(rater string) []int {
	var scores []int
	for _, cs := range b.PerCategory {
		if cs.Rater != rater {
			continue
		}
		score := cs.Score
		if score < 0 {
			score = -score
		}
		scores = append(scores, score)
	}
	return scores
}

package rating

// Polarity controls whether a category's score adds to or subtracts from its
// subtotal.
type Polarity int

const (
	Normal Polarity = iota
	Inverted
)

// Category is one named dimension of evaluation.
type Category struct {
	Name     string
	Recap    string   // short alias used in the model's recap line (model categories only)
	Polarity Polarity
	Options  []string // allowed consultant selections (consultant categories only)
}

// ModelCategories returns the six categories scored by the rating model, in
// the fixed order the downstream spreadsheet columns depend on.
func ModelCategories() []Category {
	return []Category{
		{Name: "Education", Recap: "Education"},
		{Name: "Industry Experience", Recap: "Industry"},
		{Name: "Range of Experience", Recap: "Range"},
		{Name: "Benchmark of Career Exposure", Recap: "Benchmark"},
		{Name: "Average Length of Stay at Firms", Recap: "Length"},
		{Name: "Within Firm Alignment", Recap: "Within"},
	}
}

// ConsultantCategories returns the eleven categories rated by the human
// reviewer, in the fixed spreadsheet order, each with its allowed option list.
func ConsultantCategories() []Category {
	return []Category{
		{Name: "Extracurricular Activities", Options: []string{"low", "moderate", "sound", "strong", "exceptional"}},
		{Name: "Challenges in Starting Base", Options: []string{"low", "moderate", "notable", "strong", "exceptional"}},
		{Name: "Industry Experience", Options: []string{"low", "moderate", "sound", "strong"}},
		{Name: "Level of Experience", Options: []string{"low", "moderate", "sound", "strong"}},
		{Name: "Geographic Experience", Options: []string{"low", "moderate", "sound", "strong"}},
		{Name: "Speed of Career Progression", Options: []string{"low", "moderate", "strong", "exceptional"}},
		{Name: "Internal Career Progression", Options: []string{"low", "moderate", "strong", "exceptional"}},
		{Name: "Recent Career Progression", Options: []string{"low", "moderate", "strong", "exceptional"}},
		{Name: "Career Moves Facilitated by Prior Colleagues", Options: []string{"none", "single instance", "thematic"}},
		{Name: "Regretted Career Choices", Polarity: Inverted, Options: []string{"none", "single instance", "thematic"}},
		{Name: "Regretted Personal Choices", Polarity: Inverted, Options: []string{"none", "single instance", "thematic"}},
	}
}

// IsInverted reports whether the named category subtracts from its subtotal.
func IsInverted(name string) bool {
	for _, c := range ConsultantCategories() {
		if c.Name == name {
			return c.Polarity == Inverted
		}
	}
	return false
}

// FindConsultantCategory returns the consultant category with the given name.
func FindConsultantCategory(name string) (Category, bool) {
	for _, c := range ConsultantCategories() {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// AllowsOption reports whether value is one of the category's selectable
// options, after normalization.
func (c Category) AllowsOption(value string) bool {
	norm := NormalizeToken(value)
	for _, opt := range c.Options {
		if opt == norm {
			return true
		}
	}
	return false
}

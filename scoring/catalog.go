package scoring

// Kind tells how a question is answered and scored.
type Kind string

const (
	KindScale          Kind = "scale"
	KindMultipleChoice Kind = "multiple-choice"
	KindText           Kind = "text"
)

// Audit categories. The catalog is partitioned by these and score
// breakdowns are reported per category, in this order.
const (
	CategoryStrategy   = "Strategy & Planning"
	CategoryData       = "Data & Analytics"
	CategoryChannels   = "Channels & Content"
	CategoryAutomation = "Automation & Technology"
	CategoryTeam       = "Team & Process"
)

// Question is an immutable catalog entry. For multiple-choice questions the
// option order is a ranking: the first option is the most mature answer.
type Question struct {
	ID       int      `json:"id"`
	Category string   `json:"category"`
	Prompt   string   `json:"prompt"`
	Kind     Kind     `json:"kind"`
	Options  []string `json:"options,omitempty"`
}

// Catalog is the fixed, ordered question list. Built once at startup and
// passed explicitly wherever scoring happens.
type Catalog struct {
	questions  []Question
	byID       map[int]Question
	categories []string
}

// NewCatalog builds a Catalog from a question list. Category order follows
// first appearance in the list.
func NewCatalog(questions []Question) Catalog {
	c := Catalog{
		questions: questions,
		byID:      make(map[int]Question, len(questions)),
	}
	seen := make(map[string]bool)
	for _, q := range questions {
		c.byID[q.ID] = q
		if !seen[q.Category] {
			seen[q.Category] = true
			c.categories = append(c.categories, q.Category)
		}
	}
	return c
}

// Questions returns all catalog questions in order.
func (c Catalog) Questions() []Question {
	return c.questions
}

// Categories returns the distinct category labels in catalog order.
func (c Catalog) Categories() []string {
	return c.categories
}

// Category returns the questions belonging to one category, in order.
func (c Catalog) Category(label string) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Category == label {
			out = append(out, q)
		}
	}
	return out
}

// ByID looks a question up by its identifier.
func (c Catalog) ByID(id int) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Len returns the number of questions in the catalog.
func (c Catalog) Len() int {
	return len(c.questions)
}

var yesPartiallyNo = []string{"Yes", "Partially", "No"}

// Default returns the static marketing maturity audit catalog.
func Default() Catalog {
	return NewCatalog([]Question{
		{ID: 1, Category: CategoryStrategy, Kind: KindScale,
			Prompt: "How clearly defined is your overall marketing strategy for the next 12 months?"},
		{ID: 2, Category: CategoryStrategy, Kind: KindMultipleChoice,
			Prompt:  "Do you have documented buyer personas for your key segments?",
			Options: []string{"Yes, documented and regularly updated", "Yes, but outdated", "Only informal notes", "No"}},
		{ID: 3, Category: CategoryStrategy, Kind: KindMultipleChoice,
			Prompt:  "Is your marketing budget planned against measurable goals?",
			Options: yesPartiallyNo},
		{ID: 4, Category: CategoryStrategy, Kind: KindText,
			Prompt: "What is the single biggest obstacle to executing your marketing strategy?"},

		{ID: 5, Category: CategoryData, Kind: KindScale,
			Prompt: "How confident are you in the accuracy of your marketing data?"},
		{ID: 6, Category: CategoryData, Kind: KindMultipleChoice,
			Prompt:  "Do you track cost per acquisition across channels?",
			Options: []string{"Yes, per channel and campaign", "Yes, blended only", "Occasionally", "No"}},
		{ID: 7, Category: CategoryData, Kind: KindMultipleChoice,
			Prompt:  "Are marketing dashboards reviewed on a regular cadence?",
			Options: []string{"Weekly", "Monthly", "Quarterly", "Rarely or never"}},

		{ID: 8, Category: CategoryChannels, Kind: KindScale,
			Prompt: "How consistent is your content publishing across your active channels?"},
		{ID: 9, Category: CategoryChannels, Kind: KindMultipleChoice,
			Prompt:  "Do you run structured A/B tests on campaigns or landing pages?",
			Options: yesPartiallyNo},
		{ID: 10, Category: CategoryChannels, Kind: KindMultipleChoice,
			Prompt:  "Is SEO part of your ongoing content process?",
			Options: []string{"Yes, with dedicated ownership", "Yes, ad hoc", "Planned but not started", "No"}},

		{ID: 11, Category: CategoryAutomation, Kind: KindScale,
			Prompt: "How much of your lead nurturing runs without manual work?"},
		{ID: 12, Category: CategoryAutomation, Kind: KindMultipleChoice,
			Prompt:  "Is your CRM integrated with your marketing tools?",
			Options: []string{"Fully integrated", "Partially integrated", "Separate systems", "No CRM"}},
		{ID: 13, Category: CategoryAutomation, Kind: KindMultipleChoice,
			Prompt:  "Do you use lead scoring to prioritize follow-up?",
			Options: yesPartiallyNo},

		{ID: 14, Category: CategoryTeam, Kind: KindScale,
			Prompt: "How well defined are roles and responsibilities within your marketing team?"},
		{ID: 15, Category: CategoryTeam, Kind: KindMultipleChoice,
			Prompt:  "Does marketing and sales alignment follow an agreed process?",
			Options: yesPartiallyNo},
		{ID: 16, Category: CategoryTeam, Kind: KindText,
			Prompt: "Which marketing skill is most missing from your current team?"},
	})
}

// Package scoring converts audit answers into maturity percentages.
//
// Everything here is a pure function over immutable inputs: no I/O, no
// global state, no errors. Malformed or missing data contributes zero
// points rather than failing - completeness checks belong to the caller.
package scoring

import "math"

const (
	// scaleMaxPoints is the weight of a scale question.
	scaleMaxPoints = 10
	// choiceMaxPoints is the weight of a multiple-choice question. The top
	// option of a question with more than four options can earn more than
	// this; the final percentage is clamped instead of the points.
	choiceMaxPoints = 4
)

// CategoryScore is the derived maturity score of one category. It is
// recomputed on demand and never persisted. Questions counts the catalog
// questions in the category, not the answered ones.
type CategoryScore struct {
	Category   string `json:"category"`
	Percentage int    `json:"percentage"`
	Questions  int    `json:"questions"`
}

// Score rates a single question/answer pair and returns the earned points
// and the question's weight. Text questions contribute neither. A value
// variant that does not match the question kind, an out-of-range scale
// value or an unknown option all earn zero points.
func Score(q Question, a Answer) (points, maxPoints float64) {
	switch q.Kind {
	case KindScale:
		if v, ok := a.Value.(ScaleValue); ok && v >= 0 && v <= scaleMaxPoints {
			return float64(v), scaleMaxPoints
		}
		return 0, scaleMaxPoints
	case KindMultipleChoice:
		v, ok := a.Value.(ChoiceValue)
		if !ok {
			return 0, choiceMaxPoints
		}
		for i, opt := range q.Options {
			if opt == string(v) {
				return float64(len(q.Options) - i), choiceMaxPoints
			}
		}
		return 0, choiceMaxPoints
	default:
		return 0, 0
	}
}

// ScoreCategory computes the maturity score of one category. Answers are
// selected by their own stored Category field, so an answer whose copied
// category disagrees with its question is silently excluded. Answers whose
// question is not in the category contribute nothing.
func ScoreCategory(category string, catalog Catalog, answers []Answer) CategoryScore {
	questions := catalog.Category(category)
	byID := make(map[int]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var points, maxPoints float64
	for _, a := range answers {
		if a.Category != category {
			continue
		}
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		p, m := Score(q, a)
		points += p
		maxPoints += m
	}

	return CategoryScore{
		Category:   category,
		Percentage: percentage(points, maxPoints),
		Questions:  len(questions),
	}
}

// ScoreAll computes the per-category breakdown for every catalog category,
// in catalog order.
func ScoreAll(catalog Catalog, answers []Answer) []CategoryScore {
	categories := catalog.Categories()
	out := make([]CategoryScore, 0, len(categories))
	for _, c := range categories {
		out = append(out, ScoreCategory(c, catalog, answers))
	}
	return out
}

// ScoreOverall computes the overall maturity percentage as a single flat
// points-over-max ratio across all answers. It is deliberately not the
// average of the per-category percentages: categories contribute in
// proportion to their total question weight.
func ScoreOverall(catalog Catalog, answers []Answer) int {
	var points, maxPoints float64
	for _, a := range answers {
		q, ok := catalog.ByID(a.QuestionID)
		if !ok {
			continue
		}
		p, m := Score(q, a)
		points += p
		maxPoints += m
	}
	return percentage(points, maxPoints)
}

// percentage rounds half away from zero and clamps to [0,100]. Zero max
// points yields 0, never a division error.
func percentage(points, maxPoints float64) int {
	if maxPoints <= 0 {
		return 0
	}
	p := int(math.Round(100 * points / maxPoints))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

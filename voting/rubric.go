package voting

import (
	"fmt"
	"slices"
)

// Rubric maps rubric group -> criterion -> score.
type Rubric map[string]map[string]int

// ValidateRubric requires every configured criterion to be scored in
// [MinScore, MaxScore] and rejects groups or criteria that are not configured.
func ValidateRubric(groups []RubricGroup, rubric Rubric) error {
	known := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		known[g.Key] = struct{}{}
		scores, ok := rubric[g.Key]
		if !ok {
			return fmt.Errorf("%w: missing rubric group %s", ErrInvalidRubric, g.Key)
		}
		criteria := make(map[string]struct{}, len(g.Criteria))
		for _, c := range g.Criteria {
			criteria[c] = struct{}{}
			score, ok := scores[c]
			if !ok {
				return fmt.Errorf("%w: missing score for %s.%s", ErrInvalidRubric, g.Key, c)
			}
			if score < MinScore || score > MaxScore {
				return fmt.Errorf("%w: score %d for %s.%s is outside [%d,%d]",
					ErrInvalidRubric, score, g.Key, c, MinScore, MaxScore)
			}
		}
		if extra := firstUnknown(scores, criteria); extra != "" {
			return fmt.Errorf("%w: unknown criterion %s.%s", ErrInvalidRubric, g.Key, extra)
		}
	}
	if extra := firstUnknown(rubric, known); extra != "" {
		return fmt.Errorf("%w: unknown rubric group %s", ErrInvalidRubric, extra)
	}
	return nil
}

func firstUnknown[V any](m map[string]V, known map[string]struct{}) string {
	var unknown []string
	for k := range m {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return ""
	}
	slices.Sort(unknown)
	return unknown[0]
}

func cloneRubric(r Rubric) Rubric {
	out := make(Rubric, len(r))
	for group, scores := range r {
		cp := make(map[string]int, len(scores))
		for k, v := range scores {
			cp[k] = v
		}
		out[group] = cp
	}
	return out
}

package voting

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinScore and MaxScore bound every rubric criterion (star rating).
const (
	MinScore = 1
	MaxScore = 5
)

var TeamIDPattern = regexp.MustCompile(`^team[0-9]+$`)

type Team struct {
	ID      string   `mapstructure:"id" json:"id"`
	Name    string   `mapstructure:"name" json:"name"`
	Members []string `mapstructure:"members" json:"members"`
	Comment string   `mapstructure:"comment" json:"comment"`
}

// RubricGroup is one evaluation group with its ordered criteria.
type RubricGroup struct {
	Key      string   `mapstructure:"key" json:"key"`
	Criteria []string `mapstructure:"criteria" json:"criteria"`
}

// AwardCategory is backed by exactly one rubric group.
type AwardCategory struct {
	Key       string  `mapstructure:"key" json:"key"`
	RubricKey string  `mapstructure:"rubric" json:"rubric"`
	Weight    float64 `mapstructure:"weight" json:"weight"`
}

type Config struct {
	Teams   []Team          `mapstructure:"teams"`
	Rubrics []RubricGroup   `mapstructure:"rubrics"`
	Awards  []AwardCategory `mapstructure:"awards"`
}

func DefaultConfig() Config {
	return Config{
		Teams: []Team{
			{
				ID:      "team1",
				Name:    "Team Alpha",
				Members: []string{"Tanaka Yuki", "Suzuki Haruto", "Sato Aoi"},
				Comment: "Our goal was to create an intuitive attendance system that simplifies daily check-ins.",
			},
			{
				ID:      "team2",
				Name:    "Team Beta",
				Members: []string{"Watanabe Hina", "Ito Sota", "Kobayashi Mei"},
				Comment: "We focused on creating a visually appealing interface with intuitive navigation.",
			},
			{
				ID:      "team3",
				Name:    "Team Gamma",
				Members: []string{"Yamamoto Ren", "Nakamura Yuna", "Kato Hiroto"},
				Comment: "Our solution integrates seamlessly with existing systems while providing new capabilities.",
			},
		},
		Rubrics: []RubricGroup{
			{
				Key:      "presentationSkills",
				Criteria: []string{"pronunciation", "grammar", "structure", "slideQuality", "expression"},
			},
			{
				Key: "implementationQuality",
				Criteria: []string{"requiredFeatures", "scalability", "usability", "completeness",
					"technicalNovelty", "feasibility", "businessAppeal", "overallImpression"},
			},
		},
		Awards: []AwardCategory{
			{Key: "presentationAward", RubricKey: "presentationSkills", Weight: 0.5},
			{Key: "implementationAward", RubricKey: "implementationQuality", Weight: 0.5},
		},
	}
}

// Validate fails with ErrInvalidConfiguration on the first problem found.
func (c Config) Validate() error {
	if len(c.Rubrics) == 0 {
		return fmt.Errorf("%w: no rubric groups", ErrInvalidConfiguration)
	}
	rubrics := make(map[string]struct{}, len(c.Rubrics))
	for _, r := range c.Rubrics {
		if r.Key == "" {
			return fmt.Errorf("%w: rubric group without key", ErrInvalidConfiguration)
		}
		if _, dup := rubrics[r.Key]; dup {
			return fmt.Errorf("%w: duplicate rubric group %q", ErrInvalidConfiguration, r.Key)
		}
		if len(r.Criteria) == 0 {
			return fmt.Errorf("%w: rubric group %q has no criteria", ErrInvalidConfiguration, r.Key)
		}
		seen := make(map[string]struct{}, len(r.Criteria))
		for _, crit := range r.Criteria {
			if crit == "" {
				return fmt.Errorf("%w: empty criterion in %q", ErrInvalidConfiguration, r.Key)
			}
			if _, dup := seen[crit]; dup {
				return fmt.Errorf("%w: duplicate criterion %q in %q", ErrInvalidConfiguration, crit, r.Key)
			}
			seen[crit] = struct{}{}
		}
		rubrics[r.Key] = struct{}{}
	}

	if len(c.Awards) == 0 {
		return fmt.Errorf("%w: no award categories", ErrInvalidConfiguration)
	}
	awards := make(map[string]struct{}, len(c.Awards))
	for _, a := range c.Awards {
		if a.Key == "" {
			return fmt.Errorf("%w: award category without key", ErrInvalidConfiguration)
		}
		if _, dup := awards[a.Key]; dup {
			return fmt.Errorf("%w: duplicate award category %q", ErrInvalidConfiguration, a.Key)
		}
		if _, ok := rubrics[a.RubricKey]; !ok {
			return fmt.Errorf("%w: award %q uses unknown rubric %q", ErrInvalidConfiguration, a.Key, a.RubricKey)
		}
		if a.Weight <= 0 {
			return fmt.Errorf("%w: award %q must have a positive weight", ErrInvalidConfiguration, a.Key)
		}
		awards[a.Key] = struct{}{}
	}

	teams := make(map[string]struct{}, len(c.Teams))
	for _, t := range c.Teams {
		if !TeamIDPattern.MatchString(t.ID) {
			return fmt.Errorf("%w: malformed team id %q", ErrInvalidConfiguration, t.ID)
		}
		if _, dup := teams[t.ID]; dup {
			return fmt.Errorf("%w: duplicate team id %q", ErrInvalidConfiguration, t.ID)
		}
		teams[t.ID] = struct{}{}
	}
	return nil
}

func (c Config) Rubric(key string) (RubricGroup, bool) {
	for _, r := range c.Rubrics {
		if r.Key == key {
			return r, true
		}
	}
	return RubricGroup{}, false
}

// AwardMap resolves each award category to its rubric group. Call after Validate.
func (c Config) AwardMap() AwardMap {
	m := make(AwardMap, len(c.Awards))
	for _, a := range c.Awards {
		r, _ := c.Rubric(a.RubricKey)
		m[a.Key] = r
	}
	return m
}

func (c Config) Weights() map[string]float64 {
	w := make(map[string]float64, len(c.Awards))
	for _, a := range c.Awards {
		w[a.Key] = a.Weight
	}
	return w
}

// CompareTeamIDs orders "team2" before "team10". Ids outside the team pattern
// fall back to plain string comparison.
func CompareTeamIDs(a, b string) int {
	na, okA := teamNumber(a)
	nb, okB := teamNumber(b)
	if okA && okB && na != nb {
		if na < nb {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func teamNumber(id string) (int, bool) {
	if !TeamIDPattern.MatchString(id) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, "team"))
	if err != nil {
		return 0, false
	}
	return n, true
}

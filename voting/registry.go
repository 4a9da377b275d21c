package voting

import (
	"context"
	"errors"
	"fmt"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
	"slices"
	"sync"
)

// TeamRegistry is the pool of teams that may receive votes: the configured
// teams plus those registered at runtime. Runtime registrations are saved to
// the teams document when the registry has storage.
type TeamRegistry struct {
	mu         sync.RWMutex
	teams      map[string]Team
	registered []Team
	docs       storage.DocumentStorage
}

func NewTeamRegistry(teams []Team) *TeamRegistry {
	r := &TeamRegistry{teams: make(map[string]Team, len(teams))}
	for _, t := range teams {
		r.teams[t.ID] = cloneTeam(t)
	}
	return r
}

// LoadTeamRegistry adds the teams registered in earlier runs to the
// configured ones. A saved team that clashes with a configured id or has a
// malformed id is skipped.
func LoadTeamRegistry(ctx context.Context, teams []Team, docs storage.DocumentStorage) *TeamRegistry {
	r := NewTeamRegistry(teams)
	r.docs = docs

	var saved []Team
	err := docs.Load(ctx, storage.DocumentTeams, &saved)
	switch {
	case errors.Is(err, storage.ErrDocumentNotFound):
		return r
	case err != nil:
		logging.Log.Warnf("VOTE: failed to load registered teams, using configured teams only: %v", err)
		return r
	}

	for _, t := range saved {
		if !TeamIDPattern.MatchString(t.ID) {
			logging.Log.Warnf("VOTE: skipping saved team with malformed id %q", t.ID)
			continue
		}
		if _, ok := r.teams[t.ID]; ok {
			logging.Log.Warnf("VOTE: saved team %s is already configured, keeping the configured one", t.ID)
			continue
		}
		t = cloneTeam(t)
		r.teams[t.ID] = t
		r.registered = append(r.registered, t)
	}
	logging.Log.Infof("VOTE: restored %d registered teams", len(r.registered))
	return r
}

func (r *TeamRegistry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.teams[id]
	return ok
}

func (r *TeamRegistry) Get(id string) (Team, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.teams[id]
	if !ok {
		return Team{}, false
	}
	return cloneTeam(t), true
}

// All returns the teams ordered by id.
func (r *TeamRegistry) All() []Team {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, cloneTeam(t))
	}
	slices.SortFunc(out, func(a, b Team) int { return CompareTeamIDs(a.ID, b.ID) })
	return out
}

func (r *TeamRegistry) Index() map[string]Team {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Team, len(r.teams))
	for id, t := range r.teams {
		out[id] = cloneTeam(t)
	}
	return out
}

// Register adds team to the pool. With storage attached the team is only
// added once the teams document has been saved.
func (r *TeamRegistry) Register(ctx context.Context, team Team) error {
	if !TeamIDPattern.MatchString(team.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidTeamID, team.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[team.ID]; ok {
		return fmt.Errorf("%w: %s", ErrTeamAlreadyExists, team.ID)
	}

	team = cloneTeam(team)
	next := append(slices.Clip(r.registered), team)
	if r.docs != nil {
		if err := r.docs.Save(ctx, storage.DocumentTeams, next); err != nil {
			logging.Log.Errorf("VOTE: failed to persist team %s: %v", team.ID, err)
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	}
	r.registered = next
	r.teams[team.ID] = team
	return nil
}

func cloneTeam(t Team) Team {
	t.Members = slices.Clone(t.Members)
	if t.Members == nil {
		t.Members = []string{}
	}
	return t
}

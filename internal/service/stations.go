package service

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/trainbook/internal/database/repository"
)

// minSimilarity is the lowest normalized edit similarity accepted as a
// fuzzy station match.
const minSimilarity = 0.6

// StationResolver maps typed origin/destination text onto a catalog station.
type StationResolver struct {
	Stations *repository.StationRepo
}

// Resolve returns the station best matching text, or nil when nothing
// is close enough. Exact code or city matches win, then prefix matches,
// then whole-word matches inside a city or name, then the most similar
// city or name.
func (r *StationResolver) Resolve(ctx context.Context, text string) (*repository.Station, error) {
	q := normalize(text)
	if q == "" {
		return nil, nil
	}
	if s, err := r.Stations.ByCode(ctx, q); err != nil || s != nil {
		return s, err
	}

	prefixed, err := r.Stations.ByCityPrefix(ctx, firstWord(q))
	if err != nil {
		return nil, err
	}
	for _, s := range prefixed {
		if normalize(s.City) == q {
			return &s, nil
		}
	}
	for _, s := range prefixed {
		city := normalize(s.City)
		if strings.HasPrefix(city, q) || strings.HasPrefix(q, city+" ") || strings.HasPrefix(normalize(s.Name), q) {
			return &s, nil
		}
	}

	all, err := r.Stations.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if containsWords(normalize(all[i].City), q) || containsWords(normalize(all[i].Name), q) {
			return &all[i], nil
		}
	}

	var best *repository.Station
	bestScore := minSimilarity
	for i := range all {
		score := max(similarity(q, normalize(all[i].City)), similarity(q, normalize(all[i].Name)))
		if score >= bestScore {
			if best == nil || score > bestScore {
				best = &all[i]
				bestScore = score
			}
		}
	}
	return best, nil
}

// normalize lower-cases text, collapses spaces and drops anything after
// the first comma ("Kings Cross, London, UK" becomes "kings cross").
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return strings.Join(strings.Fields(s), " ")
}

// containsWords reports whether phrase appears in s on word boundaries
// ("delhi" is in "new delhi", "elhi" is not).
func containsWords(s, phrase string) bool {
	return strings.Contains(" "+s+" ", " "+phrase+" ")
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

func similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

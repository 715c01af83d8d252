package booking

// RecentSearch is a past search kept for re-display.
type RecentSearch struct {
	Origin      string
	Destination string
	DateLabel   string
}

// SeedRecent returns the entries a new screen shows before any search.
func SeedRecent() []RecentSearch {
	seed := RecentSearch{Origin: "Kings Cross, London, UK", Destination: "Birmingham, UK", DateLabel: "Sat 15 June"}
	return []RecentSearch{seed, seed}
}

// prependRecent returns a new slice with entry first and at most limit
// entries overall. The input slice is not modified.
func prependRecent(list []RecentSearch, entry RecentSearch, limit int) []RecentSearch {
	if limit <= 0 {
		return []RecentSearch{}
	}
	n := len(list) + 1
	if n > limit {
		n = limit
	}
	out := make([]RecentSearch, 0, n)
	out = append(out, entry)
	for _, r := range list {
		if len(out) == n {
			break
		}
		out = append(out, r)
	}
	return out
}

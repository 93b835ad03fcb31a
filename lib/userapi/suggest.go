package userapi

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

const minSuggestionScore = 0.7

// SuggestUsernames returns up to `n` usernames most similar to `query` by
// Jaro-Winkler similarity, best first. Weak matches are left out.
func SuggestUsernames(users []User, query string, n int) []string {
	type scored struct {
		username string
		score    float64
	}

	query = strings.ToLower(query)
	var candidates []scored
	for _, u := range users {
		score := matchr.JaroWinkler(query, strings.ToLower(u.Username), false)
		if score < minSuggestionScore {
			continue
		}
		candidates = append(candidates, scored{username: u.Username, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	var out []string
	for i := 0; i < len(candidates) && i < n; i++ {
		out = append(out, candidates[i].username)
	}
	return out
}

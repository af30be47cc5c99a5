package main

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// minSuggestionScore drops weak fuzzy matches (raw fzf scores).
const minSuggestionScore = 20

type suggestion struct {
	name  string
	score int
}

// suggest returns the candidates matching name fuzzily, best matches first.
func suggest(name string, candidates []string) []string {
	pattern := []rune(strings.ToLower(strings.TrimSpace(name)))
	if len(pattern) == 0 {
		return nil
	}
	algo.Init("default")
	slab := util.MakeSlab(16384, 1024)
	var found []suggestion
	for _, c := range candidates {
		chars := util.ToChars([]byte(c))
		result, _ := algo.FuzzyMatchV2(false, false, true, &chars, pattern, false, slab)
		if result.Start < 0 || result.Score < minSuggestionScore {
			continue
		}
		found = append(found, suggestion{name: c, score: result.Score})
	}
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].score != found[j].score {
			return found[i].score > found[j].score
		}
		return len(found[i].name) < len(found[j].name)
	})
	names := make([]string, len(found))
	for i, s := range found {
		names[i] = s.name
	}
	return names
}

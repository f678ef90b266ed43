package catalog

import (
	"sort"
	"strings"
)

const (
	ratingWeight  = 0.4
	keywordWeight = 0.3
)

var difficultySynonyms = map[string][]string{
	"beginner":     {"beginner", "intro", "basic", "level 1", "fundamentals"},
	"intermediate": {"intermediate", "mid-level", "level 2", "advanced beginner"},
	"advanced":     {"advanced", "expert", "professional", "level 3", "master"},
}

// Recommendation is a ranked course.
type Recommendation struct {
	Entry
	KeywordScore int
	Score        float64
}

// Recommend ranks courses for topic and level and returns at most limit of
// them. When no course mentions the topic the level-filtered catalog (or, if
// that is empty too, the whole catalog) is ranked by rating instead, so the
// result is only empty for a non-positive limit.
func (c *Catalog) Recommend(topic, level string, limit int) []Recommendation {
	if limit <= 0 {
		return nil
	}
	topic = strings.ToLower(strings.TrimSpace(topic))
	level = strings.ToLower(strings.TrimSpace(level))

	levelled := make([]Entry, 0, len(c.entries))
	for _, entry := range c.entries {
		if level == "" || matchesLevel(entry.Difficulty, level) {
			levelled = append(levelled, entry)
		}
	}

	var ranked []Recommendation
	for _, entry := range levelled {
		keyword := 0
		if topic != "" {
			keyword = keywordScore(entry, topic)
			if keyword == 0 {
				continue
			}
		}
		ranked = append(ranked, Recommendation{Entry: entry, KeywordScore: keyword})
	}
	if len(ranked) == 0 {
		pool := levelled
		if len(pool) == 0 {
			pool = c.entries
		}
		for _, entry := range pool {
			ranked = append(ranked, Recommendation{Entry: entry})
		}
	}

	for i := range ranked {
		ranked[i].Score = ranked[i].Rating*ratingWeight + float64(ranked[i].KeywordScore)*keywordWeight
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func keywordScore(entry Entry, topic string) int {
	score := 0
	if strings.Contains(strings.ToLower(entry.Title), topic) {
		score += 3
	}
	if strings.Contains(strings.ToLower(entry.Description), topic) {
		score += 2
	}
	if strings.Contains(strings.ToLower(strings.Join(entry.Skills, ", ")), topic) {
		score++
	}
	return score
}

func matchesLevel(difficulty, level string) bool {
	difficulty = strings.ToLower(difficulty)
	synonyms, ok := difficultySynonyms[level]
	if !ok {
		synonyms = []string{level}
	}
	for _, synonym := range synonyms {
		if strings.Contains(difficulty, synonym) {
			return true
		}
	}
	return false
}

package service

import (
	"fmt"
	"strings"

	"github.com/pageza/nutrimentor/backend/internal/models"
	"github.com/pageza/nutrimentor/backend/internal/types"
)

// maxPreferenceItems bounds each liked/disliked list in a summary.
const maxPreferenceItems = 5

// preferenceKeywords is the fixed vocabulary scanned for keyword tallies.
var preferenceKeywords = []string{"protein", "carbs", "vegetarian", "vegan", "low-calorie"}

// PreferenceAnalyzer derives a PreferenceSummary from a user's feedback log.
// Deduplication preserves first-seen append order, so summaries are
// deterministic for a given log. A like and a dislike of the same content
// both stand; the kinds are never reconciled against each other.
type PreferenceAnalyzer struct {
	store IFeedbackStore
}

var _ IPreferenceAnalyzer = (*PreferenceAnalyzer)(nil)

func NewPreferenceAnalyzer(store IFeedbackStore) *PreferenceAnalyzer {
	return &PreferenceAnalyzer{store: store}
}

// Summarize loads the full feedback log and reduces it to a bounded summary.
// An empty or missing log yields an empty summary, not an error.
func (a *PreferenceAnalyzer) Summarize(userID string) (types.PreferenceSummary, error) {
	records, err := a.store.Load(userID)
	if err != nil {
		return types.PreferenceSummary{}, fmt.Errorf("failed to load feedback for user %s: %w", userID, err)
	}

	var summary types.PreferenceSummary
	var liked, disliked []string
	for _, record := range records {
		content := strings.TrimSpace(record.Content)
		if content == "" {
			continue
		}
		switch record.Kind {
		case models.FeedbackLike:
			summary.TotalLikes++
			liked = append(liked, content)
		case models.FeedbackDislike:
			summary.TotalDislikes++
			disliked = append(disliked, content)
		}
	}

	summary.LikedItems = dedupeAndCap(liked, maxPreferenceItems)
	summary.DislikedItems = dedupeAndCap(disliked, maxPreferenceItems)

	// Keyword tallies scan the full feedback text, not the capped lists.
	allLiked := strings.ToLower(strings.Join(liked, " "))
	allDisliked := strings.ToLower(strings.Join(disliked, " "))
	for _, keyword := range preferenceKeywords {
		if strings.Contains(allLiked, keyword) {
			summary.PreferredKeywords = append(summary.PreferredKeywords, keyword)
		}
		if strings.Contains(allDisliked, keyword) {
			summary.AvoidedKeywords = append(summary.AvoidedKeywords, keyword)
		}
	}

	return summary, nil
}

// dedupeAndCap removes duplicates keeping the first occurrence of each item,
// then truncates to at most limit entries.
func dedupeAndCap(items []string, limit int) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	var result []string
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
		if len(result) == limit {
			break
		}
	}
	return result
}

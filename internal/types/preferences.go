package types

// PreferenceSummary is the bounded view of a user's feedback history that
// feeds prompt personalization. It is derived on demand and never persisted.
type PreferenceSummary struct {
	LikedItems        []string `json:"liked_items"`
	DislikedItems     []string `json:"disliked_items"`
	TotalLikes        int      `json:"total_likes"`
	TotalDislikes     int      `json:"total_dislikes"`
	PreferredKeywords []string `json:"preferred_keywords"`
	AvoidedKeywords   []string `json:"avoided_keywords"`
}

// Prompt is the structured instruction payload sent to the generative model.
// System carries the assistant role and formatting rules, Context the user
// query plus profile and preference lines.
type Prompt struct {
	System  string
	Context string
}

package types

// RegisterRequest is the payload for account creation
type RegisterRequest struct {
	Name              string  `json:"name" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	Password          string  `json:"password" binding:"required,min=6"`
	Age               int     `json:"age"`
	Gender            string  `json:"gender"`
	Diet              string  `json:"diet"`
	Goal              string  `json:"goal"`
	HeightCm          float64 `json:"height_cm"`
	WeightKg          float64 `json:"weight_kg"`
	MedicalConditions string  `json:"medical_conditions"`
	PreferredLanguage string  `json:"preferred_language"`
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the session token back to the client
type AuthResponse struct {
	Token string `json:"token"`
}

// ChatResponse is returned for a successful nutrition query
type ChatResponse struct {
	Response   string `json:"response"`
	ResponseID string `json:"response_id"`
}

// FeedbackRequest records a like/dislike against a cached response
type FeedbackRequest struct {
	ResponseID string `json:"response_id" binding:"required"`
	Feedback   string `json:"feedback" binding:"required"`
}

// UpdateLanguageRequest changes the user's preferred response language
type UpdateLanguageRequest struct {
	Language string `json:"language"`
}

// UpdateProfileRequest updates mutable profile attributes. Pointer fields
// distinguish "not provided" from zero values.
type UpdateProfileRequest struct {
	Age               *int     `json:"age"`
	Gender            *string  `json:"gender"`
	Diet              *string  `json:"diet"`
	Goal              *string  `json:"goal"`
	HeightCm          *float64 `json:"height_cm"`
	WeightKg          *float64 `json:"weight_kg"`
	MedicalConditions *string  `json:"medical_conditions"`
	PreferredLanguage *string  `json:"preferred_language"`
}

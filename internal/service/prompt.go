package service

import (
	"fmt"
	"strings"

	"github.com/pageza/nutrimentor/backend/internal/models"
	"github.com/pageza/nutrimentor/backend/internal/types"
)

const systemPromptTemplate = `You are a helpful and knowledgeable AI Nutrition Assistant. Your goal is to provide personalized, accurate, and actionable nutrition advice, meal suggestions, and food analysis based on the user's query, their profile, and their past feedback.

When providing information, adhere strictly to these formatting guidelines:

1.  If it's a meal request (e.g., "Suggest breakfast options," "meal plan"):
    - Provide exactly 3 distinct meal options.
    - For each meal option, include:
        - A concise Description of the meal.
        - A detailed Nutritional Info section with:
            - Protein: Xg
            - Carbohydrates: Xg
            - Fats: Xg
            - Fiber: Xg
            - Calories: X kcal

2.  If it's a single food item query (e.g., "nutritional info for apple"):
    - Provide a detailed nutritional breakdown for that specific item.

3.  If it's a general nutrition question (e.g., "benefits of protein"):
    - Give a clear, comprehensive, and detailed answer.

IMPORTANT:
- Personalization: Tailor your responses based on the user's provided profile (age, gender, diet, goal, height, weight, BMI, medical conditions) and their feedback (liked/disliked items).
- Avoid Disliked Items: Explicitly avoid recommending or including ingredients/concepts that the user has previously disliked.
- Clarity: Ensure all nutritional values are clearly stated with units.
- Tone: Maintain a helpful, encouraging, and professional tone.
- Language: Respond entirely in the language corresponding to the BCP-47 language tag: %s.`

// ComposePrompt merges the user's query, profile attributes and preference
// summary into the instruction payload for the model. Pure function: the same
// inputs always produce the same prompt.
func ComposePrompt(query, userName string, profile *models.UserProfile, summary types.PreferenceSummary, targetLanguage string) types.Prompt {
	var context strings.Builder

	fmt.Fprintf(&context, "User Query: %s\n\n", query)

	if profile != nil {
		fmt.Fprintf(&context,
			"User Profile: Name=%s, Age=%d, Gender=%s, Diet=%s, Goal=%s, Height=%.0fcm, Weight=%.0fkg, BMI=%.1f, Medical Conditions=%s.\n",
			userName, profile.Age, profile.Gender, profile.Diet, profile.Goal,
			profile.HeightCm, profile.WeightKg, profile.BMI, profile.MedicalConditions)
	}

	if len(summary.LikedItems) > 0 {
		fmt.Fprintf(&context, "User previously liked: %s.\n", strings.Join(summary.LikedItems, ", "))
	}
	if len(summary.DislikedItems) > 0 {
		fmt.Fprintf(&context, "User previously disliked: %s. Please avoid recommending similar items.\n",
			strings.Join(summary.DislikedItems, ", "))
	}

	return types.Prompt{
		System:  fmt.Sprintf(systemPromptTemplate, targetLanguage),
		Context: context.String(),
	}
}

package service

import (
	"context"
	"log"
)

// NoopTranslator is the pass-through ITranslator implementation. A real
// translation backend (e.g. Cloud Translation) slots in behind the same
// interface without touching callers.
type NoopTranslator struct{}

var _ ITranslator = NoopTranslator{}

// Translate returns the text unchanged. The target language is still logged
// so a deployment without a translation backend is visible in the logs.
func (NoopTranslator) Translate(ctx context.Context, text, targetLanguage, sourceLanguage string) string {
	if sourceLanguage == "" {
		sourceLanguage = "auto"
	}
	log.Printf("[Translator] pass-through translation from %s to %s", sourceLanguage, targetLanguage)
	return text
}

package openai

import (
	"strings"

	"github.com/pantryops/pantryd/constants"
)

func buildSystemPrompt() string {
	parts := []string{
		"You are a grocery inventory parser. Return ONLY JSON that matches the JSON Schema provided.",
		"Each item describes one inventory change: action is 'add' for things acquired (bought, got, picked up), 'subtract' for things consumed (used, ate, finished), 'set' for statements of current possession (have, left, remaining).",
		"Quantities are non-negative numbers; default to 1 when the text names an item without a count.",
		"Units should be everyday grocery units (gallon, dozen, lb, count, bag, ...).",
		"Allowed categories (enum): " + strings.Join(constants.AllCategories(), ", ") + ".",
		"Confidence bands: >=0.9 unambiguous, 0.7-0.89 minor assumptions, 0.5-0.69 ambiguous, <0.5 unclear.",
		"Set needs_review to true if overall confidence is below 0.7, any item is ambiguous, item names are unclear, or the request mixes acquiring and consuming in one batch.",
		"Use ISO-8601 dates (YYYY-MM-DD) for expiration. Output expiration: null only when the text explicitly says there is no expiration.",
		"Never invent items that are not in the input. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Grocery input (first ~3k chars):\n")
	if len(text) > 3000 {
		b.WriteString(text[:3000])
	} else {
		b.WriteString(text)
	}
	return b.String()
}

func buildImagePrompt(hint string) string {
	switch constants.ParseSourceType(hint) {
	case constants.SourceImageReceipt:
		return "The attached photo is a store receipt. Extract each purchased line item as an 'add' action."
	case constants.SourceImageList:
		return "The attached photo is a handwritten or printed grocery list. Extract each listed item as an 'add' action."
	default:
		return "The attached image contains grocery information (receipt or list). Extract the items it shows."
	}
}

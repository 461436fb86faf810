package constants

import "strings"

// Category is the closed vocabulary for inventory categorization.
type Category string

const (
	Produce       Category = "produce"
	Dairy         Category = "dairy"
	Meat          Category = "meat"
	Seafood       Category = "seafood"
	Bakery        Category = "bakery"
	Frozen        Category = "frozen"
	Pantry        Category = "pantry"
	Beverages     Category = "beverages"
	Snacks        Category = "snacks"
	Condiments    Category = "condiments"
	Household     Category = "household"
	PersonalCare  Category = "personal_care"
	Uncategorized Category = "uncategorized"
)

var allCategories = []Category{
	Produce,
	Dairy,
	Meat,
	Seafood,
	Bakery,
	Frozen,
	Pantry,
	Beverages,
	Snacks,
	Condiments,
	Household,
	PersonalCare,
	Uncategorized,
}

// AllCategories returns the category vocabulary as strings, Uncategorized last.
func AllCategories() []string {
	out := make([]string, len(allCategories))
	for i, c := range allCategories {
		out[i] = string(c)
	}
	return out
}

// NormalizeCategory maps a raw category label to the closed vocabulary.
// Anything unrecognized becomes Uncategorized rather than an error.
func NormalizeCategory(raw string) Category {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	for _, c := range allCategories {
		if s == string(c) {
			return c
		}
	}
	switch s {
	case "vegetables", "fruit", "fruits", "veggies":
		return Produce
	case "drinks", "drink", "beverage":
		return Beverages
	case "fish":
		return Seafood
	case "bread", "baked_goods":
		return Bakery
	case "canned", "canned_goods", "dry_goods", "grains", "staples":
		return Pantry
	case "sauces", "spices", "seasoning", "seasonings":
		return Condiments
	case "cleaning", "cleaning_supplies", "paper_goods":
		return Household
	case "toiletries", "hygiene":
		return PersonalCare
	}
	return Uncategorized
}

// IsCategory reports whether s is already a canonical category value.
func IsCategory(s string) bool {
	for _, c := range allCategories {
		if s == string(c) {
			return true
		}
	}
	return false
}

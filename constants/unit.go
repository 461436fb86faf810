package constants

import "strings"

// DefaultUnit is used when a record is created without an explicit unit.
const DefaultUnit = "unit"

// unitSynonyms maps raw unit spellings to one canonical token.
// Keys are lowercase; lookups trim and lowercase first.
var unitSynonyms = map[string]string{
	"gallon": "gallon", "gallons": "gallon", "gal": "gallon",
	"quart": "quart", "quarts": "quart", "qt": "quart",
	"pint": "pint", "pints": "pint", "pt": "pint",
	"liter": "liter", "liters": "liter", "litre": "liter", "litres": "liter", "l": "liter",
	"milliliter": "ml", "milliliters": "ml", "ml": "ml",
	"ounce": "oz", "ounces": "oz", "oz": "oz",
	"pound": "lb", "pounds": "lb", "lb": "lb", "lbs": "lb",
	"gram": "g", "grams": "g", "g": "g",
	"kilogram": "kg", "kilograms": "kg", "kg": "kg",
	"cup": "cup", "cups": "cup",
	"tablespoon": "tbsp", "tablespoons": "tbsp", "tbsp": "tbsp",
	"teaspoon": "tsp", "teaspoons": "tsp", "tsp": "tsp",
	"dozen": "dozen", "doz": "dozen",
	"count": "count", "counts": "count", "ct": "count", "piece": "count",
	"pieces": "count", "pc": "count", "pcs": "count", "each": "count", "ea": "count",
	"pack": "pack", "packs": "pack", "package": "pack", "packages": "pack", "pkg": "pack",
	"bag": "bag", "bags": "bag",
	"box": "box", "boxes": "box",
	"can": "can", "cans": "can",
	"jar": "jar", "jars": "jar",
	"bottle": "bottle", "bottles": "bottle",
	"loaf": "loaf", "loaves": "loaf",
	"bunch": "bunch", "bunches": "bunch",
	"head": "head", "heads": "head",
	"stick": "stick", "sticks": "stick",
	"roll": "roll", "rolls": "roll",
	"unit": "unit", "units": "unit", "item": "unit", "items": "unit",
}

// NormalizeUnit maps a raw unit to its canonical token.
// Unknown units are kept as typed (lowercased) rather than rejected; an empty
// unit stays empty so callers can tell "not provided" apart from a default.
func NormalizeUnit(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if canon, ok := unitSynonyms[s]; ok {
		return canon
	}
	return s
}

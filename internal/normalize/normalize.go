// Package normalize canonicalizes extracted items: names to title case, units
// and categories to their closed vocabularies, dates to UTC instants, numeric
// fields clamped into range. Normalization is pure and idempotent —
// re-normalizing already-normalized items is a no-op.
package normalize

import (
	"strings"
	"time"
	"unicode"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/common"
	"github.com/pantryops/pantryd/internal/extract"
	"github.com/pantryops/pantryd/internal/inventory"
)

// Items validates and canonicalizes a batch. Items with empty names are
// dropped; every other problem is repaired by clamping or defaulting rather
// than rejecting the item.
func Items(items []extract.ExtractedItem) []extract.ExtractedItem {
	out := make([]extract.ExtractedItem, 0, len(items))
	for _, it := range items {
		name := TitleCase(strings.TrimSpace(it.Name))
		if name == "" {
			continue
		}
		n := it
		n.Name = name
		n.Unit = constants.NormalizeUnit(it.Unit)
		if strings.TrimSpace(it.Category) != "" {
			n.Category = string(constants.NormalizeCategory(it.Category))
		} else {
			n.Category = ""
		}
		if n.Quantity < 0 {
			n.Quantity = 0
		}
		n.Confidence = clamp01(it.Confidence)
		switch strings.ToLower(strings.TrimSpace(it.Action)) {
		case extract.ActionAdd, extract.ActionSubtract, extract.ActionSet:
			n.Action = strings.ToLower(strings.TrimSpace(it.Action))
		default:
			n.Action = extract.ActionAdd
		}
		n.Location = trimOptional(it.Location)
		n.Notes = trimOptional(it.Notes)
		n.Brand = strings.TrimSpace(it.Brand)
		n.Expiration = normalizeExpiration(it.Expiration)
		out = append(out, n)
	}
	return out
}

// ToUpdateRecords converts normalized items into the canonical update form
// the mutation engine consumes, preserving the null-vs-absent distinction on
// expiration.
func ToUpdateRecords(items []extract.ExtractedItem) []inventory.UpdateRecord {
	out := make([]inventory.UpdateRecord, 0, len(items))
	for _, it := range items {
		upd := inventory.UpdateRecord{
			Name:     it.Name,
			Quantity: it.Quantity,
			Unit:     it.Unit,
			Action:   it.Action,
			Category: it.Category,
		}
		if strings.TrimSpace(it.Location) != "" {
			upd.Location = common.Some(strings.TrimSpace(it.Location))
		}
		if strings.TrimSpace(it.Notes) != "" {
			upd.Notes = common.Some(strings.TrimSpace(it.Notes))
		}
		if it.Expiration.Present {
			if it.Expiration.Null {
				upd.Expiration = common.Null[time.Time]()
			} else if t, ok := ParseInstant(it.Expiration.Value); ok {
				upd.Expiration = common.Some(t)
			}
			// unparseable: field dropped, not rejected
		}
		out = append(out, upd)
	}
	return out
}

// normalizeExpiration canonicalizes a parseable date to RFC3339 UTC, passes
// explicit null through untouched, and drops anything unparseable.
func normalizeExpiration(o common.Optional[string]) common.Optional[string] {
	if !o.Present || o.Null {
		return o
	}
	if t, ok := ParseInstant(o.Value); ok {
		return common.Some(t.UTC().Format(time.RFC3339))
	}
	return common.Optional[string]{}
}

var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseInstant parses the date spellings extraction plausibly emits.
func ParseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// TitleCase uppercases the first letter of each word and lowercases the rest.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			startOfWord = true
			b.WriteRune(r)
		case startOfWord:
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func trimOptional(s string) string {
	return strings.TrimSpace(s)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

package extract

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pantryops/pantryd/constants"
)

//go:embed tables.yaml
var defaultTables []byte

const (
	fallbackMatchedConfidence = 0.6
	fallbackEmptyConfidence   = 0.2
)

type keywordTables struct {
	Actions struct {
		Add             []string `yaml:"add"`
		AddPhrases      []string `yaml:"add_phrases"`
		Subtract        []string `yaml:"subtract"`
		SubtractPhrases []string `yaml:"subtract_phrases"`
		Set             []string `yaml:"set"`
	} `yaml:"actions"`
	Items map[string]struct {
		Unit     string `yaml:"unit"`
		Category string `yaml:"category"`
	} `yaml:"items"`
}

// FallbackParser is the deterministic, keyword-table driven parser used when
// the extraction provider is unavailable. It is the failure boundary: Parse
// never returns an error and its output always carries NeedsReview=true.
type FallbackParser struct {
	tables  keywordTables
	actions map[string]string // single word -> action
	phrases []phraseAction
	logger  *slog.Logger
}

type phraseAction struct {
	phrase string
	action string
}

var tokenRe = regexp.MustCompile(`[a-z0-9_]+(?:\.[0-9]+)?`)

// NewFallbackParser builds a parser from the embedded keyword tables.
func NewFallbackParser(logger *slog.Logger) (*FallbackParser, error) {
	return newFallbackParser(defaultTables, logger)
}

// NewFallbackParserFromFile builds a parser from an external YAML table file,
// for deployments that want a larger staple vocabulary.
func NewFallbackParserFromFile(path string, logger *slog.Logger) (*FallbackParser, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keyword tables: %w", err)
	}
	return newFallbackParser(raw, logger)
}

func newFallbackParser(raw []byte, logger *slog.Logger) (*FallbackParser, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var t keywordTables
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode keyword tables: %w", err)
	}
	if len(t.Items) == 0 {
		return nil, fmt.Errorf("keyword tables define no items")
	}

	p := &FallbackParser{tables: t, actions: map[string]string{}, logger: logger}
	for _, w := range t.Actions.Add {
		p.actions[w] = ActionAdd
	}
	for _, w := range t.Actions.Subtract {
		p.actions[w] = ActionSubtract
	}
	for _, w := range t.Actions.Set {
		p.actions[w] = ActionSet
	}
	for _, ph := range t.Actions.AddPhrases {
		p.phrases = append(p.phrases, phraseAction{phrase: ph, action: ActionAdd})
		p.actions[strings.ReplaceAll(ph, " ", "_")] = ActionAdd
	}
	for _, ph := range t.Actions.SubtractPhrases {
		p.phrases = append(p.phrases, phraseAction{phrase: ph, action: ActionSubtract})
		p.actions[strings.ReplaceAll(ph, " ", "_")] = ActionSubtract
	}
	return p, nil
}

// Parse scans text for action, quantity, unit, and item keywords, in that
// rough grammar: the most recent action word governs subsequent items, a
// number followed (optionally via a unit word) by an item keyword becomes its
// quantity, defaulting to 1.
func (p *FallbackParser) Parse(text string) ExtractionResult {
	lower := strings.ToLower(text)
	// collapse multi-word action phrases into single tokens first
	for _, ph := range p.phrases {
		token := strings.ReplaceAll(ph.phrase, " ", "_")
		lower = strings.ReplaceAll(lower, ph.phrase, token)
	}

	action := ActionAdd
	var pendingQty float64
	var haveQty bool
	var pendingUnit string

	var items []ExtractedItem
	for _, tok := range tokenRe.FindAllString(lower, -1) {
		if a, ok := p.actions[tok]; ok {
			action = a
			continue
		}
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			pendingQty, haveQty = f, true
			continue
		}
		if isKnownUnit(tok) {
			// remember an explicit unit between the number and the item
			pendingUnit = constants.NormalizeUnit(tok)
			continue
		}
		entry, name, ok := p.lookupItem(tok)
		if !ok {
			continue
		}
		qty := 1.0
		if haveQty {
			qty = pendingQty
		}
		unit := entry.Unit
		if pendingUnit != "" {
			unit = pendingUnit
		}
		items = append(items, ExtractedItem{
			Name:       name,
			Quantity:   qty,
			Unit:       unit,
			Action:     action,
			Category:   entry.Category,
			Confidence: fallbackMatchedConfidence,
		})
		pendingQty, haveQty, pendingUnit = 0, false, ""
	}

	overall := fallbackEmptyConfidence
	if len(items) > 0 {
		overall = fallbackMatchedConfidence
	}
	p.logger.Info("fallback.parse",
		"items", len(items),
		"overall_confidence", overall,
	)
	return ExtractionResult{
		Items:             items,
		OverallConfidence: overall,
		OriginalText:      text,
		NeedsReview:       true,
		UsedFallback:      true,
	}
}

func (p *FallbackParser) lookupItem(tok string) (struct {
	Unit     string `yaml:"unit"`
	Category string `yaml:"category"`
}, string, bool) {
	if e, ok := p.tables.Items[tok]; ok {
		return e, tok, true
	}
	// crude plural/singular bridge
	if strings.HasSuffix(tok, "s") {
		if e, ok := p.tables.Items[strings.TrimSuffix(tok, "s")]; ok {
			return e, tok, true
		}
	} else if e, ok := p.tables.Items[tok+"s"]; ok {
		return e, tok, true
	}
	var zero struct {
		Unit     string `yaml:"unit"`
		Category string `yaml:"category"`
	}
	return zero, "", false
}

var knownUnitWords = map[string]struct{}{
	"gallon": {}, "gallons": {}, "gal": {}, "quart": {}, "quarts": {},
	"pint": {}, "pints": {}, "liter": {}, "liters": {}, "litre": {}, "litres": {},
	"ounce": {}, "ounces": {}, "oz": {}, "pound": {}, "pounds": {}, "lb": {}, "lbs": {},
	"gram": {}, "grams": {}, "kilogram": {}, "kilograms": {}, "kg": {},
	"cup": {}, "cups": {}, "dozen": {}, "doz": {}, "count": {}, "ct": {},
	"pack": {}, "packs": {}, "bag": {}, "bags": {}, "box": {}, "boxes": {},
	"can": {}, "cans": {}, "jar": {}, "jars": {}, "bottle": {}, "bottles": {},
	"loaf": {}, "loaves": {}, "bunch": {}, "bunches": {}, "head": {}, "heads": {},
	"stick": {}, "sticks": {}, "roll": {}, "rolls": {},
}

func isKnownUnit(tok string) bool {
	_, ok := knownUnitWords[tok]
	return ok
}

package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"plus":      '+',
	"minus":     '-',
	"equals":    '=',
}

// LoadKeyConfig builds a sparse override table from the [keys] and [special_keys] config sections
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(runeKeys, specialKeys map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}

	if len(runeKeys) > 0 {
		kt.Runes = make(map[rune]Intent, len(runeKeys))
		for keyStr, action := range runeKeys {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			intent, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = intent
		}
	}

	if len(specialKeys) > 0 {
		kt.SpecialKeys = make(map[tcell.Key]Intent, len(specialKeys))
		for keyStr, action := range specialKeys {
			k, ok := KeyByName(strings.ToLower(keyStr))
			if !ok {
				return nil, fmt.Errorf("[special_keys] unknown key name: %q", keyStr)
			}
			intent, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[special_keys] key %q: %w", keyStr, err)
			}
			kt.SpecialKeys[k] = intent
		}
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name to an intent
func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	intent, ok := ActionIntent(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return intent, nil
}

// MergeKeyTable returns base overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if result.Runes == nil {
		result.Runes = map[rune]Intent{}
	}
	if result.SpecialKeys == nil {
		result.SpecialKeys = map[tcell.Key]Intent{}
	}
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]Intent) {
	for k, v := range override {
		if v == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}

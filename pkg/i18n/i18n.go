// Package i18n translates the strings the terminal UI renders.
package i18n

import (
	"fmt"
	"strings"

	"github.com/td0m/tickit/pkg/prefs"
)

var tables = map[prefs.Language]map[string]string{
	prefs.English: english,
	prefs.Arabic:  arabic,
}

// T looks key up in the language table, falling back to English and then to
// the key itself. args are name/value pairs replacing {{name}} placeholders.
func T(lang prefs.Language, key string, args ...interface{}) string {
	s, ok := tables[lang][key]
	if !ok {
		s, ok = english[key]
	}
	if !ok {
		s = key
	}
	return interpolate(s, args)
}

func interpolate(s string, args []interface{}) string {
	if len(args) == 0 {
		return s
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "{{"+fmt.Sprint(args[i])+"}}", fmt.Sprint(args[i+1]))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Has reports whether the language has its own translation for key
func Has(lang prefs.Language, key string) bool {
	_, ok := tables[lang][key]
	return ok
}

// Keys lists every English key, the reference table
func Keys() []string {
	keys := make([]string, 0, len(english))
	for k := range english {
		keys = append(keys, k)
	}
	return keys
}

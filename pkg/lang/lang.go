// Package lang maps natural language names to ISO 639-1 codes for the
// translation resolver.
package lang

import "strings"

var byName = map[string]string{
	"arabic":     "ar",
	"bengali":    "bn",
	"bulgarian":  "bg",
	"chinese":    "zh",
	"croatian":   "hr",
	"czech":      "cs",
	"danish":     "da",
	"dutch":      "nl",
	"english":    "en",
	"estonian":   "et",
	"finnish":    "fi",
	"french":     "fr",
	"german":     "de",
	"greek":      "el",
	"hebrew":     "he",
	"hindi":      "hi",
	"hungarian":  "hu",
	"indonesian": "id",
	"italian":    "it",
	"japanese":   "ja",
	"korean":     "ko",
	"latvian":    "lv",
	"lithuanian": "lt",
	"malay":      "ms",
	"norwegian":  "no",
	"persian":    "fa",
	"polish":     "pl",
	"portuguese": "pt",
	"romanian":   "ro",
	"russian":    "ru",
	"serbian":    "sr",
	"slovak":     "sk",
	"slovenian":  "sl",
	"spanish":    "es",
	"swahili":    "sw",
	"swedish":    "sv",
	"thai":       "th",
	"turkish":    "tr",
	"ukrainian":  "uk",
	"vietnamese": "vi",
}

// codes is the reverse index, so bare ISO codes are accepted too.
var codes = buildCodes()

func buildCodes() map[string]bool {
	m := make(map[string]bool, len(byName))
	for _, code := range byName {
		m[code] = true
	}
	return m
}

// Code resolves a language name or ISO 639-1 code to the ISO code,
// case-insensitively.
func Code(name string) (string, bool) {
	name = strings.ToLower(name)
	if code, ok := byName[name]; ok {
		return code, true
	}
	if codes[name] {
		return name, true
	}
	return "", false
}

// Names returns all known language names.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	return names
}

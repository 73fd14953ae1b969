// Package transliteration maps Kubachi Cyrillic orthography to an IPA-like phonemic string.
package transliteration

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Palochka is the canonical form of the letter that marks ejectives and pharyngeals.
// Sources write it as Latin I, Cyrillic І or Ӏ, in either case.
const Palochka = "І"

var palochkaReplacer = strings.NewReplacer(
	"I", Palochka,
	"i", Palochka,
	"і", Palochka,
	"Ӏ", Palochka,
	"ӏ", Palochka,
)

// Rules are ordered longest first. strings.Replacer compares candidates in argument order
// at each position, so a trigraph always wins over a digraph it contains, and the output
// of a match is never scanned again.
var rules = []string{
	// geminate ejectives
	"ккІ", "kːʼ",
	"ппІ", "pːʼ",
	"ттІ", "tːʼ",
	"ццІ", "tsːʼ",
	"ччІ", "tʃːʼ",

	"гІ", "ɢ",
	"гъ", "ʁ",
	"гь", "h",
	"хъ", "q",
	"хь", "x",
	"кь", "ƛ",
	"кІ", "kʼ",
	"пІ", "pʼ",
	"тІ", "tʼ",
	"цІ", "tsʼ",
	"чІ", "tʃʼ",
	"къ", "qʼ",

	"\u0304", "ː", // combining macron
	"\u0301", "ˈ", // combining acute

	// NFC composes these long vowels
	"ӣ", "iː",
	"ӯ", "uː",

	"а", "a",
	"б", "b",
	"в", "v",
	"г", "g",
	"д", "d",
	"е", "e",
	"ё", "jo",
	"ж", "ʒ",
	"з", "z",
	"и", "i",
	"й", "j",
	"к", "k",
	"л", "l",
	"м", "m",
	"н", "n",
	"о", "o",
	"п", "p",
	"р", "r",
	"с", "s",
	"т", "t",
	"у", "u",
	"ф", "f",
	"х", "x",
	"ц", "ts",
	"ч", "tʃ",
	"ш", "ʃ",
	"щ", "ʃtʃ",
	"ъ", "ʔ",
	"ы", "ɨ",
	"ь", "ʲ",
	"э", "e",
	"ю", "ju",
	"я", "ja",
}

var replacer = strings.NewReplacer(rules...)

// Transliterate converts a lowercase orthographic string into its phonemic form.
// Every spelling of palochka, including Latin I and i, is read as palochka first. Other characters
// without a mapping (digits, punctuation, the alternate-form separator, the remaining Latin
// letters) are copied unchanged, so the function is total.
func Transliterate(term string) string {
	return replacer.Replace(palochkaReplacer.Replace(term))
}

// Fold lowercases an orthographic string while keeping the palochka in its canonical form.
func Fold(term string) string {
	return palochkaReplacer.Replace(cases.Lower(language.Russian).String(term))
}

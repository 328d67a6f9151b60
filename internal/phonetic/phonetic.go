// Package phonetic maps password characters to spoken words in the NATO or
// the Swedish military alphabet, so a password can be read aloud without
// ambiguity.
package phonetic

import (
	"unicode"

	"github.com/mkarlsson/passforge/internal/models"
)

// Alphabet selects the word table.
type Alphabet string

const (
	// NATO is the international radiotelephony alphabet.
	NATO Alphabet = "NATO"
	// Swedish is the Swedish military alphabet.
	Swedish Alphabet = "Swedish"
)

// fallbackWord is returned for characters no table knows.
const fallbackWord = "Symbol"

// words holds one spoken word per alphabet.
type words struct {
	nato    string
	swedish string
}

// accented covers the three Swedish letters that have no slot in the base
// 26-letter tables. NATO describes them in English; Swedish uses the native
// names.
var accented = map[rune]words{
	'å': {nato: "Alpha with Ring", swedish: "Åke"},
	'ä': {nato: "Alpha with Umlaut", swedish: "Ärlig"},
	'ö': {nato: "Oscar with Umlaut", swedish: "Östen"},
}

// punctuation is checked by exact code point before the base tables,
// independent of alphabet.
var punctuation = map[rune]words{
	'!':  {nato: "Exclamation Mark", swedish: "Utropstecken"},
	'?':  {nato: "Question Mark", swedish: "Frågetecken"},
	'@':  {nato: "At Sign", swedish: "Snabel-a"},
	'#':  {nato: "Hash", swedish: "Brädgård"},
	'$':  {nato: "Dollar Sign", swedish: "Dollartecken"},
	'%':  {nato: "Percent", swedish: "Procenttecken"},
	'&':  {nato: "Ampersand", swedish: "Och-tecken"},
	'*':  {nato: "Asterisk", swedish: "Asterisk"},
	'(':  {nato: "Left Parenthesis", swedish: "Vänsterparentes"},
	')':  {nato: "Right Parenthesis", swedish: "Högerparentes"},
	'-':  {nato: "Dash", swedish: "Bindestreck"},
	'_':  {nato: "Underscore", swedish: "Understreck"},
	'=':  {nato: "Equals", swedish: "Likhetstecken"},
	'+':  {nato: "Plus", swedish: "Plustecken"},
	'.':  {nato: "Period", swedish: "Punkt"},
	',':  {nato: "Comma", swedish: "Komma"},
	':':  {nato: "Colon", swedish: "Kolon"},
	';':  {nato: "Semicolon", swedish: "Semikolon"},
	'/':  {nato: "Slash", swedish: "Snedstreck"},
	'\\': {nato: "Backslash", swedish: "Bakstreck"},
	' ':  {nato: "Space", swedish: "Mellanslag"},
}

// base holds the 36-entry letter and digit tables.
var base = map[rune]words{
	'a': {nato: "Alpha", swedish: "Adam"},
	'b': {nato: "Bravo", swedish: "Bertil"},
	'c': {nato: "Charlie", swedish: "Cesar"},
	'd': {nato: "Delta", swedish: "David"},
	'e': {nato: "Echo", swedish: "Erik"},
	'f': {nato: "Foxtrot", swedish: "Filip"},
	'g': {nato: "Golf", swedish: "Gustav"},
	'h': {nato: "Hotel", swedish: "Helge"},
	'i': {nato: "India", swedish: "Ivar"},
	'j': {nato: "Juliett", swedish: "Johan"},
	'k': {nato: "Kilo", swedish: "Kalle"},
	'l': {nato: "Lima", swedish: "Ludvig"},
	'm': {nato: "Mike", swedish: "Martin"},
	'n': {nato: "November", swedish: "Niklas"},
	'o': {nato: "Oscar", swedish: "Olof"},
	'p': {nato: "Papa", swedish: "Petter"},
	'q': {nato: "Quebec", swedish: "Qvintus"},
	'r': {nato: "Romeo", swedish: "Rudolf"},
	's': {nato: "Sierra", swedish: "Sigurd"},
	't': {nato: "Tango", swedish: "Tore"},
	'u': {nato: "Uniform", swedish: "Urban"},
	'v': {nato: "Victor", swedish: "Viktor"},
	'w': {nato: "Whiskey", swedish: "Wilhelm"},
	'x': {nato: "X-ray", swedish: "Xerxes"},
	'y': {nato: "Yankee", swedish: "Yngve"},
	'z': {nato: "Zulu", swedish: "Zäta"},
	'0': {nato: "Zero", swedish: "Nolla"},
	'1': {nato: "One", swedish: "Etta"},
	'2': {nato: "Two", swedish: "Tvåa"},
	'3': {nato: "Three", swedish: "Trea"},
	'4': {nato: "Four", swedish: "Fyra"},
	'5': {nato: "Five", swedish: "Femma"},
	'6': {nato: "Six", swedish: "Sexa"},
	'7': {nato: "Seven", swedish: "Sjua"},
	'8': {nato: "Eight", swedish: "Åtta"},
	'9': {nato: "Nine", swedish: "Nia"},
}

// symbols is the secondary per-alphabet symbol table consulted after the
// base table.
var symbols = map[rune]words{
	'"':  {nato: "Quote", swedish: "Citationstecken"},
	'\'': {nato: "Apostrophe", swedish: "Apostrof"},
	'<':  {nato: "Less Than", swedish: "Mindre än"},
	'>':  {nato: "Greater Than", swedish: "Större än"},
	'[':  {nato: "Left Bracket", swedish: "Vänster hakparentes"},
	']':  {nato: "Right Bracket", swedish: "Höger hakparentes"},
	'{':  {nato: "Left Brace", swedish: "Vänster klammerparentes"},
	'}':  {nato: "Right Brace", swedish: "Höger klammerparentes"},
	'|':  {nato: "Pipe", swedish: "Lodstreck"},
	'~':  {nato: "Tilde", swedish: "Tilde"},
	'^':  {nato: "Caret", swedish: "Cirkumflex"},
	'`':  {nato: "Backtick", swedish: "Grav accent"},
}

func (w words) forAlphabet(a Alphabet) string {
	if a == Swedish {
		return w.swedish
	}
	return w.nato
}

// Transliterate maps one character to its spoken word. Lookup order:
// Swedish accented letters, the punctuation table, the base letter/digit
// table, the secondary symbol table, then the literal "Symbol". Letters
// that were uppercase in the input get a "Capital " (NATO) or "Stor "
// (Swedish) prefix; digits and symbols never do.
func Transliterate(r rune, alphabet Alphabet) string {
	lower := unicode.ToLower(r)

	word, ok := accented[lower]
	if !ok {
		word, ok = punctuation[r]
	}
	if !ok {
		word, ok = base[lower]
	}
	if !ok {
		word, ok = symbols[r]
	}
	if !ok {
		return fallbackWord
	}

	result := word.forAlphabet(alphabet)
	if unicode.IsLetter(r) && unicode.IsUpper(r) {
		if alphabet == Swedish {
			return "Stor " + result
		}
		return "Capital " + result
	}
	return result
}

// TransliterateString maps every character of s, preserving order.
func TransliterateString(s string, alphabet Alphabet) []models.PhoneticPair {
	pairs := make([]models.PhoneticPair, 0, len(s))
	for _, r := range s {
		pairs = append(pairs, models.PhoneticPair{
			Char: string(r),
			Word: Transliterate(r, alphabet),
		})
	}
	return pairs
}

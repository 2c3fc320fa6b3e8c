package domain

// Key names for the non-character keys. Both the terminal names and the
// browser-style names are accepted.
const (
	KeyEscape    = "esc"
	KeyBackspace = "backspace"
	KeyEnter     = "enter"
	KeyRoot      = "r"
)

// KeyIntent maps a key name onto an intent under profile p.
// It returns false for keys the profile does not recognise.
func KeyIntent(key string, p Profile) (Intent, bool) {
	switch key {
	case KeyEscape, "Escape":
		return Clear(), true
	case KeyBackspace, "Backspace":
		return Backspace(), true
	case KeyEnter, "Enter", "=":
		return Evaluate(), true
	case ".":
		return DecimalPoint(), true
	case "+", "-", "*", "/":
		return Operator(rune(key[0])), true
	case "%":
		if p.SupportsModulo {
			return Operator('%'), true
		}
		return Intent{}, false
	case KeyRoot, GlyphSquareRoot:
		if p.SupportsSquareRoot {
			return SquareRoot(), true
		}
		return Intent{}, false
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return Digit(rune(key[0])), true
	}
	return Intent{}, false
}

// SplitKeys breaks a compact key script such as "12+3=" into key names.
// Whitespace separates multi-character names: "7 * 2 enter".
func SplitKeys(script string) []string {
	var keys []string
	var word []rune
	flush := func() {
		if len(word) == 0 {
			return
		}
		w := string(word)
		word = word[:0]
		if _, ok := namedKeys[w]; ok {
			keys = append(keys, w)
			return
		}
		for _, r := range w {
			keys = append(keys, string(r))
		}
	}
	for _, r := range script {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			flush()
			continue
		}
		word = append(word, r)
	}
	flush()
	return keys
}

var namedKeys = map[string]struct{}{
	KeyEscape:    {},
	"Escape":     {},
	KeyBackspace: {},
	"Backspace":  {},
	KeyEnter:     {},
	"Enter":      {},
}

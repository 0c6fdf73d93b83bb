package keyseq

// Digraph input (Ctrl-K in Vi insert mode) types a two-character mnemonic
// that resolves to a single code point, per the RFC-1345 convention. The
// full standard table runs to roughly 1,300 pairs; this is a representative
// subset -- Latin-1 supplement letters, common punctuation, and the
// typography marks editors reach for most -- in the same flat
// map[digraphKey]rune shape internal/keyseq/keys.go uses for its
// stringToKey/keyToString lookup tables, so the table can be extended in
// place by adding more entries.
//
// This is a fresh addition: nothing upstream models digraphs, since a
// grep-selector has no Vi insert-mode emulation to hang them off of.

type digraphKey struct {
	a, b rune
}

var digraphs = map[digraphKey]rune{
	{'a', '!'}: 'á', {'a', ':'}: 'ä', {'a', '^'}: 'â', {'a', '`'}: 'à', {'a', '~'}: 'ã', {'a', '-'}: 'ā',
	{'e', '!'}: 'é', {'e', ':'}: 'ë', {'e', '^'}: 'ê', {'e', '`'}: 'è', {'e', '-'}: 'ē',
	{'i', '!'}: 'í', {'i', ':'}: 'ï', {'i', '^'}: 'î', {'i', '`'}: 'ì', {'i', '-'}: 'ī',
	{'o', '!'}: 'ó', {'o', ':'}: 'ö', {'o', '^'}: 'ô', {'o', '`'}: 'ò', {'o', '~'}: 'õ', {'o', '-'}: 'ō', {'o', '/'}: 'ø',
	{'u', '!'}: 'ú', {'u', ':'}: 'ü', {'u', '^'}: 'û', {'u', '`'}: 'ù', {'u', '-'}: 'ū',
	{'y', '!'}: 'ý', {'y', ':'}: 'ÿ',
	{'n', '~'}: 'ñ', {'c', ','}: 'ç',

	{'A', '!'}: 'Á', {'A', ':'}: 'Ä', {'A', '^'}: 'Â', {'A', '`'}: 'À', {'A', '~'}: 'Ã',
	{'E', '!'}: 'É', {'E', ':'}: 'Ë', {'E', '^'}: 'Ê', {'E', '`'}: 'È',
	{'I', '!'}: 'Í', {'I', ':'}: 'Ï', {'I', '^'}: 'Î', {'I', '`'}: 'Ì',
	{'O', '!'}: 'Ó', {'O', ':'}: 'Ö', {'O', '^'}: 'Ô', {'O', '`'}: 'Ò', {'O', '~'}: 'Õ', {'O', '/'}: 'Ø',
	{'U', '!'}: 'Ú', {'U', ':'}: 'Ü', {'U', '^'}: 'Û', {'U', '`'}: 'Ù',
	{'N', '~'}: 'Ñ', {'C', ','}: 'Ç',

	{'s', 's'}: 'ß', {'a', 'e'}: 'æ', {'A', 'E'}: 'Æ', {'o', 'e'}: 'œ', {'O', 'E'}: 'Œ',
	{'d', '-'}: 'đ', {'D', '-'}: 'Đ', {'t', 'h'}: 'þ', {'T', 'H'}: 'Þ',

	{'!', '!'}: '¡', {'?', '?'}: '¿', {'S', 'E'}: '§', {'P', 'I'}: '¶', {'C', 'o'}: '©', {'R', 'g'}: '®',
	{'T', 'M'}: '™', {'D', 'G'}: '°', {'P', 'd'}: '£', {'C', 't'}: '¢', {'Y', 'e'}: '¥', {'C', 'u'}: '¤',

	{'1', '2'}: '½', {'1', '4'}: '¼', {'3', '4'}: '¾', {'1', '3'}: '⅓', {'2', '3'}: '⅔',

	{'-', '1'}: '‐', {'-', 'N'}: '–', {'-', 'M'}: '—', {'.', '.'}: '…',
	{'\'', '6'}: '‘', {'\'', '9'}: '’', {'"', '6'}: '“', {'"', '9'}: '”',
	{'<', '<'}: '«', {'>', '>'}: '»',

	{'-', '>'}: '→', {'<', '-'}: '←', {'-', '!'}: '↑', {'-', 'v'}: '↓',
	{'=', '='}: '≡', {'/', '='}: '≠', {'<', '='}: '≤', {'>', '='}: '≥',
	{'+', '-'}: '±', {'*', 'X'}: '×', {'-', ':'}: '÷',
	{'P', 'P'}: '∥', {'0', '0'}: '∞', {'S', 'U'}: '∑', {'*', 'P'}: '∏',
}

// Lookup resolves a two-character digraph mnemonic to its code point,
// matching RFC-1345's case-sensitive, order-sensitive convention: (a, b) is
// distinct from (b, a).
func Lookup(a, b rune) (rune, bool) {
	r, ok := digraphs[digraphKey{a, b}]
	return r, ok
}

// Size reports the number of entries in the table.
func Size() int { return len(digraphs) }

// RegisterDigraph adds or overrides a single (a, b) -> r mapping, letting a
// loaded configuration extend the built-in RFC-1345 subset with its own
// mnemonics.
func RegisterDigraph(a, b, r rune) {
	digraphs[digraphKey{a, b}] = r
}

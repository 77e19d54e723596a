package folding

// rangeRule folds every code unit in [lo, hi].
type rangeRule struct {
	lo, hi uint16
	fold   func(u uint16) uint16
}

func (r rangeRule) contains(u uint16) bool {
	return u >= r.lo && u <= r.hi
}

// nibble keeps the low four bits of u and adds them to base.
func nibble(base uint16) func(uint16) uint16 {
	return func(u uint16) uint16 { return u&0xF + base }
}

// offset maps the first unit of a range to base and the rest linearly.
func offset(first, base uint16) func(uint16) uint16 {
	return func(u uint16) uint16 { return u - first + base }
}

func constant(c uint16) func(uint16) uint16 {
	return func(uint16) uint16 { return c }
}

// fullwidthFirst is U+FF01 FULLWIDTH EXCLAMATION MARK.
const fullwidthFirst = 0xFF01

// rangeRules are evaluated in order; the first match wins.
var rangeRules = []rangeRule{
	// Superscript, subscript and Hangzhou digits.
	{0x2070, 0x2070, nibble('0')},
	{0x2074, 0x2079, nibble('0')},
	{0x2080, 0x2089, nibble('0')},
	{0x3021, 0x3029, nibble('0')},

	// Parenthesized and circled ideographs one to nine.
	{0x3220, 0x3228, nibble('1')},
	{0x3280, 0x3288, nibble('1')},

	// Fullwidth ASCII variants.
	{fullwidthFirst, 0xFF5E, offset(fullwidthFirst, '!')},

	// Circled, parenthesized and full stop digits one to nine.
	{0x2460, 0x2468, offset(0x2460, '1')},
	{0x2474, 0x247C, offset(0x2474, '1')},
	{0x2488, 0x2490, offset(0x2488, '1')},

	// Parenthesized and circled Latin letters.
	{0x249C, 0x24B5, offset(0x249C, 'a')},
	{0x24B6, 0x24CF, offset(0x24B6, 'A')},
	{0x24D0, 0x24E9, offset(0x24D0, 'a')},

	// Box drawing, block elements, geometric shapes, miscellaneous symbols.
	{0x2500, 0x257F, constant('|')},
	{0x2580, 0x259F, constant('#')},
	{0x25A0, 0x25FF, constant('*')},
	{0x2600, 0x267F, constant('.')},
}

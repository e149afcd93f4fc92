package fontsdf

// ASCII returns the printable ASCII codepoints '!'..'~' (0x21..0x7E).
func ASCII() []rune {
	out := make([]rune, 0, 0x7E-0x21+1)
	for r := rune(0x21); r <= 0x7E; r++ {
		out = append(out, r)
	}
	return out
}

// Latin1 returns ASCII plus the Latin-1 supplement 0xA1..0xFF.
func Latin1() []rune {
	out := ASCII()
	for r := rune(0xA1); r <= 0xFF; r++ {
		out = append(out, r)
	}
	return out
}

// Latin1French returns Latin1 plus the French typesetting extensions
// U+0152 (Œ), U+0153 (œ), and U+0178 (Ÿ).
func Latin1French() []rune {
	out := Latin1()
	return append(out, 0x0152, 0x0153, 0x0178)
}

// HexDigits returns '0'..'9' followed by 'A'..'F'.
func HexDigits() []rune {
	out := make([]rune, 0, 16)
	for r := rune('0'); r <= '9'; r++ {
		out = append(out, r)
	}
	for r := rune('A'); r <= 'F'; r++ {
		out = append(out, r)
	}
	return out
}

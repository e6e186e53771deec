package network

import "unicode/utf8"

// Unicode blocks counted as non-Latin signal. The kana range below also
// re-counts CJK ideographs, which biases the ratio toward flagging CJK text
// as non-English more aggressively. That double count is intentional.
func nonLatinWeight(r rune) int {
	weight := 0
	switch {
	case r >= 0x0400 && r <= 0x04FF: // Cyrillic
		weight++
	case r >= 0x0600 && r <= 0x06FF: // Arabic
		weight++
	case r >= 0xAC00 && r <= 0xD7AF: // Hangul syllables
		weight++
	case r >= 0x0370 && r <= 0x03FF: // Greek
		weight++
	case r >= 0x0E00 && r <= 0x0E7F: // Thai
		weight++
	case r >= 0x4E00 && r <= 0x9FFF: // CJK unified ideographs
		weight++
	}
	if r >= 0x3040 && r <= 0x30FF || r >= 0x4E00 && r <= 0x9FFF { // kana + CJK
		weight++
	}
	return weight
}

// IsLikelyEnglish reports whether text reads as Latin-script text. It is a
// coarse character-ratio heuristic, not a language model: text counts as
// English while the weighted non-Latin character count stays at or below 15%
// of the total rune count. Empty input counts as English, since absence of
// signal should not exclude an entity.
func IsLikelyEnglish(text string) bool {
	if text == "" {
		return true
	}

	nonLatin := 0
	for _, r := range text {
		nonLatin += nonLatinWeight(r)
	}

	total := utf8.RuneCountInString(text)
	// Integer form of nonLatin/total > 0.15, kept exact at the boundary.
	return nonLatin*100 <= total*15
}

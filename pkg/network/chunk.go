package network

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// splitIntoSentences breaks article text into sentence-sized pieces on
// terminal punctuation. Line breaks inside a sentence are collapsed to
// spaces so extraction prompts see continuous prose.
func splitIntoSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	normalized := strings.Join(strings.Fields(text), " ")

	var sentences []string
	var current strings.Builder
	runes := []rune(normalized)
	for i, r := range runes {
		current.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Sentence ends only when punctuation is followed by whitespace or
		// end of text; keeps decimals like "2.5" together.
		if i+1 < len(runes) && runes[i+1] != ' ' {
			continue
		}
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// chunkText packs sentences into chunks of at most maxTokens tokens under the
// given encoding. A single sentence longer than maxTokens becomes its own
// chunk rather than being split mid-sentence.
func chunkText(text string, encoding string, maxTokens int) ([]string, error) {
	sentences := splitIntoSentences(text)
	if len(sentences) == 0 {
		return nil, nil
	}

	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, err
	}

	var chunks []string
	var current strings.Builder
	currentTokens := 0

	for _, sentence := range sentences {
		tokens := len(enc.Encode(sentence, nil, nil))
		if currentTokens > 0 && currentTokens+tokens > maxTokens {
			chunks = append(chunks, current.String())
			current.Reset()
			currentTokens = 0
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(sentence)
		currentTokens += tokens
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks, nil
}

package matching

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern matches word tokens of at least two characters.
var tokenPattern = regexp.MustCompile(`[a-z0-9_]{2,}`)

// englishStopwords are excluded from the term vocabulary.
var englishStopwords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"all": true, "an": true, "and": true, "any": true, "are": true,
	"as": true, "at": true, "be": true, "because": true, "been": true,
	"before": true, "being": true, "between": true, "both": true, "but": true,
	"by": true, "can": true, "do": true, "does": true, "doing": true,
	"down": true, "during": true, "each": true, "few": true, "for": true,
	"from": true, "further": true, "had": true, "has": true, "have": true,
	"having": true, "he": true, "her": true, "here": true, "him": true,
	"his": true, "how": true, "i": true, "if": true, "in": true,
	"into": true, "is": true, "it": true, "its": true, "just": true,
	"me": true, "more": true, "most": true, "my": true, "no": true,
	"nor": true, "not": true, "of": true, "off": true, "on": true,
	"once": true, "only": true, "or": true, "other": true, "our": true,
	"out": true, "over": true, "own": true, "same": true, "she": true,
	"so": true, "some": true, "such": true, "than": true, "that": true,
	"the": true, "their": true, "them": true, "then": true, "there": true,
	"these": true, "they": true, "this": true, "those": true, "through": true,
	"to": true, "too": true, "under": true, "until": true, "up": true,
	"using": true, "very": true, "was": true, "we": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"who": true, "why": true, "will": true, "with": true, "you": true,
	"your": true,
}

// tfidfModel holds a fixed vocabulary with smoothed inverse document
// frequencies, fitted once over the job corpus at catalog load time.
type tfidfModel struct {
	vocabulary map[string]int
	idf        []float64
	documents  [][]float64
}

func tokenize(text string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := tokens[:0]
	for _, tok := range tokens {
		if !englishStopwords[tok] {
			out = append(out, tok)
		}
	}
	return out
}

// fitTFIDF builds the vocabulary and IDF weights from the corpus and
// returns the model with one normalized vector per document.
func fitTFIDF(corpus []string) *tfidfModel {
	m := &tfidfModel{vocabulary: make(map[string]int)}

	tokenized := make([][]string, len(corpus))
	docFreq := make(map[string]int)
	for i, text := range corpus {
		tokens := tokenize(text)
		tokenized[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			docFreq[tok]++
			if _, ok := m.vocabulary[tok]; !ok {
				m.vocabulary[tok] = len(m.vocabulary)
			}
		}
	}

	// Smoothed IDF: ln((1+N)/(1+df)) + 1
	n := float64(len(corpus))
	m.idf = make([]float64, len(m.vocabulary))
	for tok, idx := range m.vocabulary {
		m.idf[idx] = math.Log((1+n)/(1+float64(docFreq[tok]))) + 1
	}

	m.documents = make([][]float64, len(corpus))
	for i, tokens := range tokenized {
		m.documents[i] = m.vectorize(tokens)
	}

	return m
}

// transform maps free text onto the fitted vocabulary. Unknown terms are
// ignored.
func (m *tfidfModel) transform(text string) []float64 {
	return m.vectorize(tokenize(text))
}

func (m *tfidfModel) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(m.vocabulary))
	for _, tok := range tokens {
		if idx, ok := m.vocabulary[tok]; ok {
			vec[idx] += m.idf[idx]
		}
	}
	normalize(vec)
	return vec
}

func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

// cosineSimilarity of two L2-normalized vectors is their dot product.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}

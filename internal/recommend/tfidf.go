// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches word tokens of two or more characters, mirroring
// the conventional vectorizer token pattern.
var tokenPattern = regexp.MustCompile(`\w\w+`)

// Vectorizer builds TF-IDF vectors over a corpus. A Vectorizer is
// constructed fresh for every computation; it holds no state between
// calls, so the vocabulary always reflects exactly the current corpus.
type Vectorizer struct {
	maxFeatures int
}

// NewVectorizer creates a vectorizer with the given vocabulary cap.
// A non-positive cap falls back to the default of 5000 features.
func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = 5000
	}
	return &Vectorizer{maxFeatures: maxFeatures}
}

// FitTransform fits the vocabulary on the corpus and returns one
// L2-normalized TF-IDF row per document, in input order.
//
// Terms are lowercase unigrams and bigrams with English stop words
// removed before n-gram construction. When the corpus yields more terms
// than the feature cap, the most frequent terms are kept (ties broken
// alphabetically) so the result is reproducible for a fixed corpus.
// A corpus with an empty vocabulary (all stop words or empty texts)
// produces all-zero rows rather than failing.
func (v *Vectorizer) FitTransform(corpus []string) [][]float64 {
	docTerms := make([][]string, len(corpus))
	for i, doc := range corpus {
		docTerms[i] = extractTerms(doc)
	}

	// Document frequency and total count per term.
	df := make(map[string]int)
	total := make(map[string]int)
	for _, terms := range docTerms {
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			total[t]++
			seen[t] = struct{}{}
		}
		for t := range seen {
			df[t]++
		}
	}

	vocab := v.selectVocabulary(total)

	// Smoothed idf, matching the standard vectorizer formulation.
	n := float64(len(corpus))
	idf := make([]float64, len(vocab))
	for t, idx := range vocab {
		idf[idx] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	rows := make([][]float64, len(corpus))
	for i, terms := range docTerms {
		row := make([]float64, len(vocab))
		for _, t := range terms {
			if idx, ok := vocab[t]; ok {
				row[idx]++
			}
		}
		for j := range row {
			row[j] *= idf[j]
		}
		l2Normalize(row)
		rows[i] = row
	}
	return rows
}

// selectVocabulary assigns a stable index to every retained term. When
// the term count exceeds the cap, the most frequent terms win, with
// alphabetical order breaking frequency ties.
func (v *Vectorizer) selectVocabulary(total map[string]int) map[string]int {
	terms := make([]string, 0, len(total))
	for t := range total {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	if len(terms) > v.maxFeatures {
		sort.SliceStable(terms, func(i, j int) bool {
			return total[terms[i]] > total[terms[j]]
		})
		terms = terms[:v.maxFeatures]
		sort.Strings(terms)
	}

	vocab := make(map[string]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
	}
	return vocab
}

// extractTerms tokenizes a text into lowercase unigrams and bigrams with
// stop words removed. Bigrams are formed over the stop-word-filtered
// token stream, matching the conventional vectorizer pipeline.
func extractTerms(text string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)

	filtered := tokens[:0]
	for _, tok := range tokens {
		if !isStopWord(tok) {
			filtered = append(filtered, tok)
		}
	}

	terms := make([]string, 0, 2*len(filtered))
	terms = append(terms, filtered...)
	for i := 0; i+1 < len(filtered); i++ {
		terms = append(terms, filtered[i]+" "+filtered[i+1])
	}
	return terms
}

// l2Normalize scales the vector to unit Euclidean length in place.
// Zero vectors are left untouched.
func l2Normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}

// RankByContent scores every candidate profile against the query profile.
// It fits a fresh vectorizer over [query] + candidates and returns one
// cosine similarity per candidate, in input order. An empty candidate set
// returns nil.
func RankByContent(query string, candidates []string, maxFeatures int) []float64 {
	if len(candidates) == 0 {
		return nil
	}

	corpus := make([]string, 0, len(candidates)+1)
	corpus = append(corpus, query)
	corpus = append(corpus, candidates...)

	rows := NewVectorizer(maxFeatures).FitTransform(corpus)

	scores := make([]float64, len(candidates))
	for i := range candidates {
		scores[i] = cosineSimilarity(rows[0], rows[i+1])
	}
	return scores
}

// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ciconnect/recommender/internal/models"
)

// emergingKeywords is the fixed vocabulary of phrases scanned for in
// project descriptions. Matches are exact phrases, case-insensitive,
// word-boundary delimited.
var emergingKeywords = []string{
	"machine learning", "deep learning", "ai", "artificial intelligence",
	"blockchain", "iot", "internet of things", "cloud computing",
	"data science", "big data", "cybersecurity", "mobile development",
	"web development", "react", "python", "javascript", "node.js",
}

// keywordPatterns are the compiled word-boundary matchers for
// emergingKeywords, in the same order.
var keywordPatterns = compileKeywordPatterns()

func compileKeywordPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(emergingKeywords))
	for i, kw := range emergingKeywords {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return patterns
}

// AnalyzeTrends aggregates technology, tag, and emerging-keyword
// frequencies over projects created within the trailing window ending at
// asOf. Projects outside the window are ignored. An empty window yields
// empty lists, never an error.
func AnalyzeTrends(projects []*models.Project, asOf time.Time, cfg TrendsConfig) TrendReport {
	report := TrendReport{
		Technologies: []TrendEntry{},
		Tags:         []TrendEntry{},
		GrowthAreas:  []GrowthArea{},
		WindowDays:   cfg.WindowDays,
		AsOf:         asOf,
	}

	cutoff := asOf.AddDate(0, 0, -cfg.WindowDays)

	techCounter := newFrequencyCounter()
	tagCounter := newFrequencyCounter()
	var descriptions []string

	for _, p := range projects {
		if p.CreatedAt.Before(cutoff) || p.CreatedAt.After(asOf) {
			continue
		}
		report.ProjectCount++

		for _, t := range p.Technologies {
			if t.Name != "" {
				techCounter.add(t.Name)
			}
		}
		for _, tag := range p.Tags {
			if tag != "" {
				tagCounter.add(tag)
			}
		}
		if p.Description != "" {
			descriptions = append(descriptions, p.Description)
		}
	}

	report.Technologies = techCounter.top(cfg.MaxTechnologies)
	report.Tags = tagCounter.top(cfg.MaxTags)
	report.GrowthAreas = scanGrowthAreas(descriptions, cfg)
	return report
}

// frequencyCounter counts labels while remembering first-seen order so
// frequency ties rank deterministically.
type frequencyCounter struct {
	counts map[string]int
	order  []string
}

func newFrequencyCounter() *frequencyCounter {
	return &frequencyCounter{counts: make(map[string]int)}
}

func (c *frequencyCounter) add(label string) {
	if _, seen := c.counts[label]; !seen {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// top returns the most frequent labels, first-seen order breaking ties.
func (c *frequencyCounter) top(limit int) []TrendEntry {
	entries := make([]TrendEntry, 0, len(c.order))
	for _, label := range c.order {
		entries = append(entries, TrendEntry{Label: label, Count: c.counts[label]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// scanGrowthAreas counts emerging-keyword occurrences across the
// concatenated project descriptions and labels each keyword's growth
// rate from its count.
func scanGrowthAreas(descriptions []string, cfg TrendsConfig) []GrowthArea {
	if len(descriptions) == 0 {
		return []GrowthArea{}
	}

	text := strings.ToLower(strings.Join(descriptions, " "))

	areas := make([]GrowthArea, 0, len(emergingKeywords))
	for i, kw := range emergingKeywords {
		count := len(keywordPatterns[i].FindAllStringIndex(text, -1))
		if count == 0 {
			continue
		}
		rate := "medium"
		if count > cfg.HighGrowthCount {
			rate = "high"
		}
		areas = append(areas, GrowthArea{Keyword: kw, Count: count, GrowthRate: rate})
	}

	// Vocabulary order breaks count ties.
	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Count > areas[j].Count
	})

	if len(areas) > cfg.MaxGrowthAreas {
		areas = areas[:cfg.MaxGrowthAreas]
	}
	return areas
}

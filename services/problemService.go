package services

import (
	"log"
	"net/url"
	"regexp"
	"strings"

	"leetcode-assistant/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// problemURLPattern matches the canonical problem-URL shape: scheme,
// optional www, the catalog domain, "/problems/", then any
// non-whitespace run.
var problemURLPattern = regexp.MustCompile(`https?://(www\.)?leetcode\.com/problems/[^\s]+`)

const catalogDomain = "leetcode.com"

// ProblemService derives problem references from URLs. It is a pure
// string transform: no network access and no catalog lookup.
type ProblemService struct{}

func NewProblemService() *ProblemService {
	return &ProblemService{}
}

// Extract parses a URL and returns a problem reference, or nil when the
// URL is malformed or does not point at a catalog problem. Extraction
// never fails the caller; a bad URL degrades to "no context".
func (s *ProblemService) Extract(rawURL string) *models.ProblemReference {
	if rawURL == "" {
		return nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		log.Printf("[ERROR] Failed to parse problem URL %q: %v", rawURL, err)
		return nil
	}

	if !strings.Contains(u.Hostname(), catalogDomain) {
		return nil
	}

	parts := splitPath(u.Path)
	if len(parts) < 2 || parts[0] != "problems" {
		return nil
	}

	slug := parts[1]
	return &models.ProblemReference{
		Identifier:   slug,
		DisplayTitle: humanizeSlug(slug),
		SourceURL:    rawURL,
	}
}

// DetectReference scans free text for the first substring shaped like a
// catalog problem URL. Returns "" when none is present.
func (s *ProblemService) DetectReference(freeText string) string {
	return problemURLPattern.FindString(freeText)
}

// GuessDifficulty estimates a difficulty rating from the display title
// alone. This is a heuristic guess for UI decoration, not authoritative
// data: the extractor never consults the catalog.
func (s *ProblemService) GuessDifficulty(displayTitle string) models.Difficulty {
	words := strings.Fields(strings.ToLower(displayTitle))
	if matchesAnyKeyword(words, hardTitleKeywords) {
		return models.DifficultyHard
	}
	if matchesAnyKeyword(words, easyTitleKeywords) {
		return models.DifficultyEasy
	}
	return models.DifficultyMedium
}

// Title words that tend to show up in the catalog's hard problems.
var hardTitleKeywords = []string{
	"median", "regular", "expression", "skyline", "histogram",
	"scheduler", "ladder", "trapping", "serialize", "alien",
}

// Title words that tend to show up in the catalog's easy problems.
var easyTitleKeywords = []string{
	"sum", "palindrome", "reverse", "merge", "duplicate",
	"valid", "roman", "contains", "single", "majority",
}

func matchesAnyKeyword(titleWords, keywords []string) bool {
	for _, keyword := range keywords {
		if len(fuzzy.Find(keyword, titleWords)) > 0 {
			return true
		}
	}
	return false
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// humanizeSlug turns a catalog slug into a display title: words split on
// hyphens, first letter of each capitalized, joined by spaces.
func humanizeSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

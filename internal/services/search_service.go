package services

import (
	"log"
	"sort"
	"strconv"
	"strings"

	"khisha/internal/database"
	"khisha/internal/models"

	"gorm.io/gorm"
)

// SearchHit is one ranked match from the health record search
type SearchHit struct {
	Kind    string               `json:"kind"` // "symptom" or "journal"
	Score   float64              `json:"score"`
	Symptom *models.Symptom      `json:"symptom,omitempty"`
	Journal *models.JournalEntry `json:"journal,omitempty"`
}

type SearchService struct {
	db *gorm.DB
}

func NewSearchService() *SearchService {
	return &SearchService{
		db: database.GetDB(),
	}
}

// Search looks up a user's symptoms and journal entries with ranking.
// Full-text matches rank above plain substring matches; both strategies
// run and the results are merged and deduplicated.
func (s *SearchService) Search(userID uint, searchTerm string, limit, offset int) ([]SearchHit, error) {
	cleanTerm := strings.TrimSpace(searchTerm)
	if cleanTerm == "" {
		return []SearchHit{}, nil
	}

	var hits []SearchHit

	// Strategy 1: Postgres full-text search with ranking (highest priority)
	ftsHits, err := s.fullTextSearch(userID, cleanTerm)
	if err != nil {
		log.Printf("FTS search error: %v", err)
	} else {
		hits = append(hits, ftsHits...)
	}

	// Strategy 2: partial matching fallback for terms FTS stems away
	partialHits, err := s.partialSearch(userID, cleanTerm)
	if err != nil {
		log.Printf("Partial search error: %v", err)
	} else {
		hits = append(hits, partialHits...)
	}

	combined := s.combineAndRank(hits)

	// Apply pagination
	start := offset
	end := offset + limit
	if start >= len(combined) {
		return []SearchHit{}, nil
	}
	if end > len(combined) {
		end = len(combined)
	}

	return combined[start:end], nil
}

type scoredSymptom struct {
	models.Symptom
	Rank float64
}

type scoredJournal struct {
	models.JournalEntry
	Rank float64
}

// fullTextSearch runs tsquery matching over symptoms and journal notes
func (s *SearchService) fullTextSearch(userID uint, searchTerm string) ([]SearchHit, error) {
	tsquery := s.prepareSearchQuery(searchTerm)
	if tsquery == "" {
		return []SearchHit{}, nil
	}

	var hits []SearchHit

	var symptoms []scoredSymptom
	err := s.db.Raw(`
		SELECT *,
		       ts_rank_cd(to_tsvector('english', name || ' ' || coalesce(description, '') || ' ' || coalesce(notes, '')),
		                  to_tsquery('english', ?), 1) AS rank
		FROM symptom
		WHERE user_id = ?
		  AND to_tsvector('english', name || ' ' || coalesce(description, '') || ' ' || coalesce(notes, ''))
		      @@ to_tsquery('english', ?)
		ORDER BY rank DESC
		LIMIT 30
	`, tsquery, userID, tsquery).Scan(&symptoms).Error
	if err != nil {
		return nil, err
	}
	for i := range symptoms {
		hits = append(hits, SearchHit{
			Kind:    "symptom",
			Score:   symptoms[i].Rank * 100, // High priority for FTS
			Symptom: &symptoms[i].Symptom,
		})
	}

	var entries []scoredJournal
	err = s.db.Raw(`
		SELECT *,
		       ts_rank_cd(to_tsvector('english', coalesce(notes, '')), to_tsquery('english', ?), 1) AS rank
		FROM journal_entry
		WHERE user_id = ?
		  AND to_tsvector('english', coalesce(notes, '')) @@ to_tsquery('english', ?)
		ORDER BY rank DESC
		LIMIT 30
	`, tsquery, userID, tsquery).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	for i := range entries {
		hits = append(hits, SearchHit{
			Kind:    "journal",
			Score:   entries[i].Rank * 100,
			Journal: &entries[i].JournalEntry,
		})
	}

	return hits, nil
}

// partialSearch performs case-insensitive substring matching as fallback
func (s *SearchService) partialSearch(userID uint, searchTerm string) ([]SearchHit, error) {
	pattern := "%" + strings.ToLower(searchTerm) + "%"

	var hits []SearchHit

	var symptoms []scoredSymptom
	err := s.db.Raw(`
		SELECT *,
		       CASE
		           WHEN LOWER(name) LIKE ? THEN 3
		           WHEN LOWER(category) LIKE ? THEN 2
		           WHEN LOWER(description) LIKE ? THEN 1
		           ELSE 0.5
		       END AS rank
		FROM symptom
		WHERE user_id = ?
		  AND (LOWER(name) LIKE ? OR LOWER(category) LIKE ? OR LOWER(description) LIKE ? OR LOWER(notes) LIKE ?)
		ORDER BY rank DESC
		LIMIT 20
	`, pattern, pattern, pattern, userID, pattern, pattern, pattern, pattern).Scan(&symptoms).Error
	if err != nil {
		return nil, err
	}
	for i := range symptoms {
		hits = append(hits, SearchHit{
			Kind:    "symptom",
			Score:   symptoms[i].Rank * 10, // Low priority for partial
			Symptom: &symptoms[i].Symptom,
		})
	}

	var entries []scoredJournal
	err = s.db.Raw(`
		SELECT *, 1.0 AS rank
		FROM journal_entry
		WHERE user_id = ? AND LOWER(notes) LIKE ?
		ORDER BY date DESC
		LIMIT 20
	`, userID, pattern).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	for i := range entries {
		hits = append(hits, SearchHit{
			Kind:    "journal",
			Score:   entries[i].Rank * 10,
			Journal: &entries[i].JournalEntry,
		})
	}

	return hits, nil
}

// prepareSearchQuery converts user input to tsquery format
func (s *SearchService) prepareSearchQuery(searchTerm string) string {
	terms := strings.Fields(strings.ToLower(searchTerm))
	if len(terms) == 0 {
		return ""
	}

	// Prefix matching per word, OR logic for broader coverage
	processedTerms := make([]string, len(terms))
	for i, term := range terms {
		processedTerms[i] = term + ":*"
	}

	return strings.Join(processedTerms, " | ")
}

// combineAndRank merges hits from both strategies, keeping the best score
// per underlying record
func (s *SearchService) combineAndRank(hits []SearchHit) []SearchHit {
	best := make(map[string]SearchHit)

	for _, hit := range hits {
		var key string
		switch hit.Kind {
		case "symptom":
			key = "symptom-" + strconv.FormatUint(uint64(hit.Symptom.ID), 10)
		case "journal":
			key = "journal-" + strconv.FormatUint(uint64(hit.Journal.ID), 10)
		}
		existing, exists := best[key]
		if !exists || hit.Score > existing.Score {
			best[key] = hit
		}
	}

	combined := make([]SearchHit, 0, len(best))
	for _, hit := range best {
		combined = append(combined, hit)
	}
	sort.Slice(combined, func(i, j int) bool {
		return combined[i].Score > combined[j].Score
	})

	return combined
}

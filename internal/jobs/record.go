package jobs

import (
	"encoding/json"
	"fmt"
)

// Record is one job listing as delivered by the source. Records are never
// mutated after loading.
type Record struct {
	ID           int      `json:"id"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Technologies []string `json:"technologies"`
	Experience   string   `json:"experience"`
	CTC          float64  `json:"ctc"`
}

// HasTechnology reports whether tech is one of the record's tags.
func (r Record) HasTechnology(tech string) bool {
	for _, t := range r.Technologies {
		if t == tech {
			return true
		}
	}
	return false
}

// Parse decodes a JSON array of records. Field presence is not validated;
// missing fields decode to their zero values.
func Parse(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing job records: %w", err)
	}
	return records, nil
}

// IDs returns the identifiers of records in order.
func IDs(records []Record) []int {
	ids := make([]int, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

// DuplicateIDs returns identifiers that appear more than once, in the order
// their second occurrence was seen.
func DuplicateIDs(records []Record) []int {
	seen := make(map[int]bool, len(records))
	var dups []int
	for _, r := range records {
		if seen[r.ID] {
			dups = append(dups, r.ID)
			continue
		}
		seen[r.ID] = true
	}
	return dups
}

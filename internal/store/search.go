package store

import "strings"

// SearchExperiences scans every stored experience and returns those whose
// problem, tags or solution lines contain the query, case-insensitively.
// No ranking, no pagination; results come back in enumeration order.
func (s *FileStore) SearchExperiences(query string) ([]map[string]any, error) {
	docs, err := s.ListExperiences()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var results []map[string]any
	for _, doc := range docs {
		if strings.Contains(searchText(doc), q) {
			results = append(results, doc)
		}
	}
	return results, nil
}

// searchText concatenates the searchable fields of an experience document.
func searchText(doc map[string]any) string {
	var b strings.Builder
	if problem, ok := doc["problem"].(string); ok {
		b.WriteString(problem)
	}
	for _, key := range []string{"tags", "solution"} {
		items, ok := doc[key].([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			if s, ok := item.(string); ok {
				b.WriteString(" ")
				b.WriteString(s)
			}
		}
	}
	return strings.ToLower(b.String())
}

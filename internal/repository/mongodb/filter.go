package mongodb

import (
	"go-candidate-backend/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// filterField maps one CandidateFilter field to its document key.
// value reports false when the field must not constrain the query.
type filterField struct {
	key   string
	value func(f domain.CandidateFilter) (interface{}, bool)
}

var candidateFilterFields = []filterField{
	{"uuid", func(f domain.CandidateFilter) (interface{}, bool) { return text(f.UUID) }},
	{"first_name", func(f domain.CandidateFilter) (interface{}, bool) { return text(f.FirstName) }},
	{"last_name", func(f domain.CandidateFilter) (interface{}, bool) { return text(f.LastName) }},
	{"email", func(f domain.CandidateFilter) (interface{}, bool) { return text(f.Email) }},
	{"career_level", func(f domain.CandidateFilter) (interface{}, bool) { return text(f.CareerLevel) }},
	{"job_major", func(f domain.CandidateFilter) (interface{}, bool) { return text(f.JobMajor) }},
	{"years_of_experience", func(f domain.CandidateFilter) (interface{}, bool) { return number(f.YearsOfExperience) }},
	{"degree_type", func(f domain.CandidateFilter) (interface{}, bool) { return text(f.DegreeType) }},
	{"skills", func(f domain.CandidateFilter) (interface{}, bool) { return text(f.Skills) }},
	{"nationality", func(f domain.CandidateFilter) (interface{}, bool) { return text(f.Nationality) }},
	{"city", func(f domain.CandidateFilter) (interface{}, bool) { return text(f.City) }},
	{"salary", func(f domain.CandidateFilter) (interface{}, bool) { return number(f.Salary) }},
	{"gender", func(f domain.CandidateFilter) (interface{}, bool) { return text(f.Gender) }},
}

// buildCandidateFilter returns an exact-match conjunction over the provided
// fields. An empty filter matches every document.
func buildCandidateFilter(f domain.CandidateFilter) bson.D {
	query := bson.D{}
	for _, field := range candidateFilterFields {
		if v, ok := field.value(f); ok {
			query = append(query, bson.E{Key: field.key, Value: v})
		}
	}
	return query
}

func text[T ~string](p *T) (interface{}, bool) {
	if p == nil || *p == "" {
		return nil, false
	}
	return string(*p), true
}

func number[T int | float64](p *T) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}

// updateField maps one CandidateUpdate field to its document key.
type updateField struct {
	key   string
	value func(u domain.CandidateUpdate) (interface{}, bool)
}

var candidateUpdateFields = []updateField{
	{"first_name", func(u domain.CandidateUpdate) (interface{}, bool) { return provided(u.FirstName) }},
	{"last_name", func(u domain.CandidateUpdate) (interface{}, bool) { return provided(u.LastName) }},
	{"career_level", func(u domain.CandidateUpdate) (interface{}, bool) { return provided(u.CareerLevel) }},
	{"job_major", func(u domain.CandidateUpdate) (interface{}, bool) { return provided(u.JobMajor) }},
	{"years_of_experience", func(u domain.CandidateUpdate) (interface{}, bool) { return provided(u.YearsOfExperience) }},
	{"degree_type", func(u domain.CandidateUpdate) (interface{}, bool) { return provided(u.DegreeType) }},
	{"skills", func(u domain.CandidateUpdate) (interface{}, bool) { return providedSkills(u.Skills) }},
	{"nationality", func(u domain.CandidateUpdate) (interface{}, bool) { return provided(u.Nationality) }},
	{"city", func(u domain.CandidateUpdate) (interface{}, bool) { return provided(u.City) }},
	{"salary", func(u domain.CandidateUpdate) (interface{}, bool) { return provided(u.Salary) }},
	{"gender", func(u domain.CandidateUpdate) (interface{}, bool) { return provided(u.Gender) }},
}

// buildCandidateUpdate returns the $set document for the provided fields only.
func buildCandidateUpdate(u domain.CandidateUpdate) bson.D {
	set := bson.D{}
	for _, field := range candidateUpdateFields {
		if v, ok := field.value(u); ok {
			set = append(set, bson.E{Key: field.key, Value: v})
		}
	}
	return set
}

func provided[T any](o domain.Optional[T]) (interface{}, bool) {
	if !o.Set {
		return nil, false
	}
	return o.Value, true
}

// providedSkills stores an explicit empty list rather than null.
func providedSkills(o domain.Optional[[]string]) (interface{}, bool) {
	if !o.Set {
		return nil, false
	}
	if o.Value == nil {
		return []string{}, true
	}
	return o.Value, true
}

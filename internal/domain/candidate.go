package domain

import (
	"context"

	"go-candidate-backend/pkg/report"
)

type CareerLevel string

const (
	CareerLevelJunior   CareerLevel = "Junior"
	CareerLevelMidLevel CareerLevel = "Mid Level"
	CareerLevelSenior   CareerLevel = "Senior"
)

func (c CareerLevel) Valid() bool {
	switch c {
	case CareerLevelJunior, CareerLevelMidLevel, CareerLevelSenior:
		return true
	}
	return false
}

type DegreeType string

const (
	DegreeHighSchool DegreeType = "High School"
	DegreeBachelor   DegreeType = "Bachelor"
	DegreeMaster     DegreeType = "Master"
)

func (d DegreeType) Valid() bool {
	switch d {
	case DegreeHighSchool, DegreeBachelor, DegreeMaster:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale         Gender = "Male"
	GenderFemale       Gender = "Female"
	GenderNotSpecified Gender = "Not Specified"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderNotSpecified:
		return true
	}
	return false
}

// Candidate is both the create payload and the stored document. UUID is
// assigned on create; any client-supplied value is discarded.
type Candidate struct {
	UUID              string      `json:"uuid" bson:"uuid"`
	FirstName         string      `json:"firstName" bson:"first_name" binding:"required"`
	LastName          string      `json:"lastName" bson:"last_name" binding:"required"`
	Email             string      `json:"email" bson:"email" binding:"required,email"`
	CareerLevel       CareerLevel `json:"careerLevel" bson:"career_level" binding:"required,enum"`
	JobMajor          string      `json:"jobMajor" bson:"job_major" binding:"required"`
	YearsOfExperience int         `json:"yearsOfExperience" bson:"years_of_experience" binding:"gte=0"`
	DegreeType        DegreeType  `json:"degreeType" bson:"degree_type" binding:"required,enum"`
	Skills            []string    `json:"skills" bson:"skills" binding:"required"`
	Nationality       string      `json:"nationality" bson:"nationality" binding:"required"`
	City              string      `json:"city" bson:"city" binding:"required"`
	Salary            float64     `json:"salary" bson:"salary"`
	Gender            Gender      `json:"gender" bson:"gender" binding:"required,enum"`
}

// ReportFields lists the exported columns in document order.
func (c Candidate) ReportFields() []report.Field {
	return []report.Field{
		{Name: "uuid", Value: c.UUID},
		{Name: "first_name", Value: c.FirstName},
		{Name: "last_name", Value: c.LastName},
		{Name: "email", Value: c.Email},
		{Name: "career_level", Value: string(c.CareerLevel)},
		{Name: "job_major", Value: c.JobMajor},
		{Name: "years_of_experience", Value: c.YearsOfExperience},
		{Name: "degree_type", Value: string(c.DegreeType)},
		{Name: "skills", Value: c.Skills},
		{Name: "nationality", Value: c.Nationality},
		{Name: "city", Value: c.City},
		{Name: "salary", Value: c.Salary},
		{Name: "gender", Value: string(c.Gender)},
	}
}

// CandidateUpdate is a partial update. Only fields with Set=true are written;
// email and uuid are not updatable.
type CandidateUpdate struct {
	FirstName         Optional[string]      `json:"firstName"`
	LastName          Optional[string]      `json:"lastName"`
	CareerLevel       Optional[CareerLevel] `json:"careerLevel"`
	JobMajor          Optional[string]      `json:"jobMajor"`
	YearsOfExperience Optional[int]         `json:"yearsOfExperience"`
	DegreeType        Optional[DegreeType]  `json:"degreeType"`
	Skills            Optional[[]string]    `json:"skills"`
	Nationality       Optional[string]      `json:"nationality"`
	City              Optional[string]      `json:"city"`
	Salary            Optional[float64]     `json:"salary"`
	Gender            Optional[Gender]      `json:"gender"`
}

// IsEmpty reports whether no field was provided.
func (u CandidateUpdate) IsEmpty() bool {
	return !u.FirstName.Set && !u.LastName.Set && !u.CareerLevel.Set &&
		!u.JobMajor.Set && !u.YearsOfExperience.Set && !u.DegreeType.Set &&
		!u.Skills.Set && !u.Nationality.Set && !u.City.Set &&
		!u.Salary.Set && !u.Gender.Set
}

// Violations returns the json names of provided fields holding invalid values.
func (u CandidateUpdate) Violations() []string {
	var bad []string
	if v, ok := u.CareerLevel.Get(); ok && !v.Valid() {
		bad = append(bad, "careerLevel")
	}
	if v, ok := u.YearsOfExperience.Get(); ok && v < 0 {
		bad = append(bad, "yearsOfExperience")
	}
	if v, ok := u.DegreeType.Get(); ok && !v.Valid() {
		bad = append(bad, "degreeType")
	}
	if v, ok := u.Gender.Get(); ok && !v.Valid() {
		bad = append(bad, "gender")
	}
	return bad
}

// CandidateFilter selects candidates by exact match on every non-nil,
// non-empty field. Skills matches candidates whose skill list contains it.
type CandidateFilter struct {
	UUID              *string      `json:"uuid"`
	FirstName         *string      `json:"firstName"`
	LastName          *string      `json:"lastName"`
	Email             *string      `json:"email"`
	CareerLevel       *CareerLevel `json:"careerLevel" binding:"omitempty,enum"`
	JobMajor          *string      `json:"jobMajor"`
	YearsOfExperience *int         `json:"yearsOfExperience" binding:"omitempty,gte=0"`
	DegreeType        *DegreeType  `json:"degreeType" binding:"omitempty,enum"`
	Skills            *string      `json:"skills"`
	Nationality       *string      `json:"nationality"`
	City              *string      `json:"city"`
	Salary            *float64     `json:"salary"`
	Gender            *Gender      `json:"gender" binding:"omitempty,enum"`
}

type CandidateRepository interface {
	// FindByID returns (nil, nil) when absent.
	FindByID(ctx context.Context, id string) (*Candidate, error)
	// FindByEmail returns (nil, nil) when absent.
	FindByEmail(ctx context.Context, email string) (*Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	// Update applies the provided fields and returns the stored result,
	// or (nil, nil) when no candidate has the id.
	Update(ctx context.Context, id string, update CandidateUpdate) (*Candidate, error)
	// Delete reports whether a document was removed.
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
}

type CandidateUsecase interface {
	Create(ctx context.Context, candidate *Candidate) (string, error)
	Get(ctx context.Context, id string) (*Candidate, error)
	Update(ctx context.Context, id string, update CandidateUpdate) (*Candidate, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	GenerateReport(ctx context.Context, format report.Format) (*report.Report, error)
}

// ReportExporter is satisfied by report.Exporter.
type ReportExporter interface {
	Export(ctx context.Context, records []report.Record, format report.Format) (*report.Report, error)
}

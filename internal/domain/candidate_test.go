package domain_test

import (
	"encoding/json"
	"testing"

	"go-candidate-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateUpdateDecoding(t *testing.T) {
	t.Run("Omitted and null fields stay unset", func(t *testing.T) {
		var u domain.CandidateUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"firstName":"X","city":null}`), &u))

		assert.Equal(t, domain.Some("X"), u.FirstName)
		assert.False(t, u.City.Set)
		assert.False(t, u.LastName.Set)
		assert.False(t, u.IsEmpty())
	})

	t.Run("Zero values are distinguishable from absent", func(t *testing.T) {
		var u domain.CandidateUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"yearsOfExperience":0,"skills":[],"jobMajor":""}`), &u))

		assert.True(t, u.YearsOfExperience.Set)
		assert.Equal(t, 0, u.YearsOfExperience.Value)
		assert.True(t, u.Skills.Set)
		assert.Empty(t, u.Skills.Value)
		assert.True(t, u.JobMajor.Set)
	})

	t.Run("Empty payload is a no-op", func(t *testing.T) {
		var u domain.CandidateUpdate
		require.NoError(t, json.Unmarshal([]byte(`{}`), &u))
		assert.True(t, u.IsEmpty())
	})

	t.Run("Type mismatch fails decoding", func(t *testing.T) {
		var u domain.CandidateUpdate
		assert.Error(t, json.Unmarshal([]byte(`{"salary":"lots"}`), &u))
	})
}

func TestCandidateUpdateViolations(t *testing.T) {
	u := domain.CandidateUpdate{
		CareerLevel:       domain.Some(domain.CareerLevel("Principal")),
		DegreeType:        domain.Some(domain.DegreeMaster),
		Gender:            domain.Some(domain.Gender("")),
		YearsOfExperience: domain.Some(-1),
	}
	assert.ElementsMatch(t, []string{"careerLevel", "gender", "yearsOfExperience"}, u.Violations())

	assert.Empty(t, domain.CandidateUpdate{CareerLevel: domain.Some(domain.CareerLevelMidLevel)}.Violations())
}

func TestEnums(t *testing.T) {
	assert.True(t, domain.CareerLevelMidLevel.Valid())
	assert.False(t, domain.CareerLevel("mid level").Valid())
	assert.True(t, domain.DegreeHighSchool.Valid())
	assert.False(t, domain.DegreeType("PhD").Valid())
	assert.True(t, domain.GenderNotSpecified.Valid())
	assert.False(t, domain.Gender("Other").Valid())
}

func TestOptionalMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A domain.Optional[int] `json:"a"`
		B domain.Optional[int] `json:"b"`
	}{A: domain.Some(3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(out))
}

func TestCandidateReportFieldsOrder(t *testing.T) {
	fields := domain.Candidate{UUID: "id-1", FirstName: "John"}.ReportFields()
	require.Len(t, fields, 13)
	assert.Equal(t, "uuid", fields[0].Name)
	assert.Equal(t, "id-1", fields[0].Value)
	assert.Equal(t, "first_name", fields[1].Name)
	assert.Equal(t, "gender", fields[12].Name)
}

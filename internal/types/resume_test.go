package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validResume() ResumeData {
	return ResumeData{
		Contact: Contact{Name: "John Doe", Email: "john@example.com"},
		Work: []WorkEntry{
			{Title: "Engineer", Company: "TechCorp", Dates: "2020 – Present", Bullets: []string{"Built stuff"}},
		},
		Skills: SkillSet{{Name: "Technical", Skills: []string{"Go", "SQL"}}},
	}
}

func TestResumeData_Validate_Valid(t *testing.T) {
	data := validResume()
	assert.NoError(t, data.Validate())
}

func TestResumeData_Validate_ListsAllViolations(t *testing.T) {
	data := ResumeData{
		Contact: Contact{},
		Work:    []WorkEntry{{Title: "Engineer"}},
		Education: []EducationEntry{
			{Degree: "BS", Institution: "UW", Dates: "2016 – 2020"},
			{Degree: "MS"},
		},
	}

	err := data.Validate()
	require.Error(t, err)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))

	fields := make([]string, 0, len(schemaErr.Violations))
	for _, v := range schemaErr.Violations {
		fields = append(fields, v.Field)
	}
	assert.Contains(t, fields, "contact.name")
	assert.Contains(t, fields, "contact.email")
	assert.Contains(t, fields, "work[0].company")
	assert.Contains(t, fields, "work[0].dates")
	assert.Contains(t, fields, "education[1].institution")
	assert.Contains(t, fields, "education[1].dates")
	assert.Len(t, schemaErr.Violations, 6)
	assert.Contains(t, err.Error(), "6 violation(s)")
}

func TestResumeData_Validate_DuplicateSkillCategory(t *testing.T) {
	data := validResume()
	data.Skills = SkillSet{
		{Name: "Languages", Skills: []string{"Go"}},
		{Name: "Languages", Skills: []string{"Python"}},
	}

	err := data.Validate()
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Len(t, schemaErr.Violations, 1)
	assert.Equal(t, "skills.Languages", schemaErr.Violations[0].Field)
}

func TestSkillSet_UnmarshalJSON_PreservesOrder(t *testing.T) {
	var skills SkillSet
	err := json.Unmarshal([]byte(`{"Zeta": ["z"], "Alpha": ["a", "b"], "Mid": []}`), &skills)
	require.NoError(t, err)

	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, skills.Names())
	assert.Equal(t, []string{"a", "b"}, skills[1].Skills)
	assert.NotNil(t, skills[2].Skills)
	assert.Empty(t, skills[2].Skills)
}

func TestSkillSet_UnmarshalJSON_RejectsArray(t *testing.T) {
	var skills SkillSet
	err := json.Unmarshal([]byte(`["Go"]`), &skills)
	assert.Error(t, err)
}

func TestSkillSet_UnmarshalYAML_PreservesOrder(t *testing.T) {
	var doc struct {
		Skills SkillSet `yaml:"skills"`
	}
	content := "skills:\n  Tools: [git, make]\n  Languages:\n    - Go\n    - Python\n"
	require.NoError(t, yaml.Unmarshal([]byte(content), &doc))

	assert.Equal(t, []string{"Tools", "Languages"}, doc.Skills.Names())
	assert.Equal(t, []string{"Go", "Python"}, doc.Skills[1].Skills)
}

func TestSkillSet_MarshalJSON_KeepsOrder(t *testing.T) {
	skills := SkillSet{
		{Name: "Zeta", Skills: []string{"z"}},
		{Name: "Alpha", Skills: nil},
	}

	jsonBytes, err := json.Marshal(skills)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":["z"],"Alpha":[]}`, string(jsonBytes))
}

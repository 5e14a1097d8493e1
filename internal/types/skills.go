package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// SkillCategory is one named group of skills.
type SkillCategory struct {
	Name   string
	Skills []string
}

// SkillSet is an ordered mapping from category name to skills. Category order
// is rendering order, so decoding keeps the order keys appear in the source.
type SkillSet []SkillCategory

// Names returns the category names in order.
func (s SkillSet) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

func (s SkillSet) validate() error {
	seen := make(map[string]bool, len(s))
	var violations []FieldViolation
	for _, c := range s {
		if seen[c.Name] {
			violations = append(violations, FieldViolation{
				Field:   "skills." + c.Name,
				Message: "duplicate skill category",
			})
		}
		seen[c.Name] = true
	}
	if len(violations) > 0 {
		return &SchemaError{Violations: violations}
	}
	return nil
}

// MarshalJSON encodes the set as a JSON object with keys in order.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		skills := c.Skills
		if skills == nil {
			skills = []string{}
		}
		val, err := json.Marshal(skills)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("skills: expected object, got %v", tok)
	}

	result := SkillSet{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("skills: expected string key, got %v", tok)
		}
		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return fmt.Errorf("skills.%s: %w", name, err)
		}
		if skills == nil {
			skills = []string{}
		}
		result = append(result, SkillCategory{Name: name, Skills: skills})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = result
	return nil
}

// UnmarshalYAML decodes a YAML mapping, keeping key order.
func (s *SkillSet) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*s = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("skills: expected mapping at line %d", value.Line)
	}

	result := make(SkillSet, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		var skills []string
		if err := valNode.Decode(&skills); err != nil {
			return fmt.Errorf("skills.%s: %w", keyNode.Value, err)
		}
		if skills == nil {
			skills = []string{}
		}
		result = append(result, SkillCategory{Name: keyNode.Value, Skills: skills})
	}

	*s = result
	return nil
}

package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Skills is a list of skill names. Rows written before the column was
// normalized hold a comma separated string instead of a JSON array, so
// Scan accepts both; Value always writes JSON.
type Skills []string

// Scan implements the sql.Scanner interface
func (s *Skills) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = Skills{}
	case []byte:
		*s = ParseSkills(string(v))
	case string:
		*s = ParseSkills(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, s)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s Skills) Value() (driver.Value, error) {
	if s == nil {
		s = Skills{}
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// MarshalJSON keeps a nil list rendered as [] rather than null.
func (s Skills) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// ParseSkills decodes a stored skills value. A JSON array of strings is
// returned as-is; anything else is split on commas with whitespace trimmed
// and empty tokens dropped.
func ParseSkills(raw string) Skills {
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		if out == nil {
			return Skills{}
		}
		return Skills(out)
	}

	parts := strings.Split(raw, ",")
	skills := make(Skills, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// ParseNullableSkills is ParseSkills for a nullable column.
func ParseNullableSkills(raw *string) Skills {
	if raw == nil {
		return Skills{}
	}
	return ParseSkills(*raw)
}

// IsCanonical reports whether raw is already stored as a JSON array.
func IsCanonical(raw string) bool {
	var out []string
	return json.Unmarshal([]byte(raw), &out) == nil && out != nil
}

package model_test

import (
	"encoding/json"
	"testing"

	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.Skills
	}{
		{"json array", `["a","b"]`, model.Skills{"a", "b"}},
		{"csv with spaces", "a, b ,c", model.Skills{"a", "b", "c"}},
		{"csv drops empty tokens", "go,, ,rust,", model.Skills{"go", "rust"}},
		{"empty string", "", model.Skills{}},
		{"json null", "null", model.Skills{}},
		{"empty json array", "[]", model.Skills{}},
		{"single value", "kubernetes", model.Skills{"kubernetes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.ParseSkills(tt.raw))
		})
	}
}

func TestParseNullableSkills(t *testing.T) {
	assert.Equal(t, model.Skills{}, model.ParseNullableSkills(nil))
	raw := "x,y"
	assert.Equal(t, model.Skills{"x", "y"}, model.ParseNullableSkills(&raw))
}

func TestSkillsScanValue(t *testing.T) {
	var s model.Skills
	require.NoError(t, s.Scan([]byte("docker, terraform")))
	assert.Equal(t, model.Skills{"docker", "terraform"}, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, model.Skills{}, s)

	assert.Error(t, s.Scan(42))

	v, err := model.Skills{"docker", "terraform"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["docker","terraform"]`, v)

	v, err = model.Skills(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestSkillsMarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Skills model.Skills `json:"skills"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"skills":[]}`, string(b))
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, model.IsCanonical(`["a"]`))
	assert.True(t, model.IsCanonical(`[]`))
	assert.False(t, model.IsCanonical(`a,b`))
	assert.False(t, model.IsCanonical(`null`))
}

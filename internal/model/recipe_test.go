package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishedRecipe_MatchesKeyword(t *testing.T) {
	row := PublishedRecipe{
		Title:       "Nasi Goreng Kampung",
		Ingredients: StringList{"rice", "egg", "sweet soy sauce"},
	}

	tests := []struct {
		name    string
		keyword string
		want    bool
	}{
		{"empty keyword matches everything", "", true},
		{"title substring, case-insensitive", "GORENG", true},
		{"exact ingredient element", "egg", true},
		{"multi-word ingredient element", "sweet soy sauce", true},
		{"ingredient substring does not match", "soy", false},
		{"no match anywhere", "rendang", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, row.MatchesKeyword(tt.keyword))
		})
	}
}

func TestStringList_Contains(t *testing.T) {
	l := StringList{"rice", "egg"}

	assert.True(t, l.Contains("egg"))
	assert.False(t, l.Contains("Egg"), "element match is case-sensitive, like JSON_CONTAINS")
	assert.False(t, StringList(nil).Contains("egg"))
}

package casing

import (
	"errors"
	"testing"

	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	tests := []struct {
		value string
		c     Case
		want  bool
	}{
		{"feat", Lower, true},
		{"Feat", Lower, false},
		{"FEAT", Upper, true},
		{"Feat", Upper, false},
		{"Core", Pascal, true},
		{"CI", Pascal, true},
		{"CoreAPI", Pascal, true},
		{"deps", Pascal, false},
		{"deps-dev", Pascal, false},
		{"Add new feature", Pascal, false},
		{"parseHTTPHeader", Camel, true},
		{"ParseHeader", Camel, false},
		{"deps-dev", Kebab, true},
		{"deps_dev", Kebab, false},
		{"deps_dev", Snake, true},
		{"Add new feature", Sentence, true},
		{"add new feature", Sentence, false},
		{"API endpoint", Sentence, true},
		{"Add New Feature", Start, true},
		{"Add new feature", Start, false},
		{"", Pascal, true},
		{"1.2.0 bump", Sentence, true},
		{"add `Eslint` config", Sentence, false},
		{"`Eslint`", Lower, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.c)+"/"+tt.value, func(t *testing.T) {
			got, err := Is(tt.value, tt.c)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIs_UnknownCase(t *testing.T) {
	_, err := Is("value", Case("title-case"))

	assert.True(t, errors.Is(err, domainErrors.ErrUnknownCase))
}

func TestIsAny(t *testing.T) {
	forbidden := []Case{Sentence, Start, Pascal, Upper}

	t.Run("should match the first applicable case", func(t *testing.T) {
		ok, err := IsAny("Add new feature", forbidden)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should report no match for lower-case subjects", func(t *testing.T) {
		ok, err := IsAny("add new feature", forbidden)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"parse", "HTTP", "Header"}, Words("parseHTTPHeader"))
	assert.Equal(t, []string{"deps", "dev"}, Words("deps-dev"))
	assert.Equal(t, []string{"XML", "Parser"}, Words("XMLParser"))
	assert.Nil(t, Words(" - "))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("pascal-case"))
	assert.False(t, Valid("PascalCase"))
}

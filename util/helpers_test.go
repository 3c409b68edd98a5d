package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
	assert.True(t, IsNotEmpty(" x "))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, "a"))
}

func TestSanitizeKey(t *testing.T) {
	assert.Equal(t, "comparison-main", SanitizeKey("comparison:main"))
	assert.Equal(t, "a-b-c", SanitizeKey(" a/b c "))
	assert.Equal(t, "v1", SanitizeKey("[v1]"))
}

func TestComponentFromPURL(t *testing.T) {
	tests := []struct {
		purl          string
		wantName      string
		wantEcosystem string
	}{
		{"pkg:npm/lodash@4.17.20", "lodash", "npm"},
		{"pkg:npm/%40babel/helpers@7.26.0", "@babel/helpers", "npm"},
		{"pkg:golang/github.com/gin-gonic/gin@v1.9.0", "github.com/gin-gonic/gin", "golang"},
		{"pkg:pypi/Django@4.2", "django", "pypi"},
	}

	for _, tt := range tests {
		name, ecosystem, err := ComponentFromPURL(tt.purl)
		require.NoError(t, err, tt.purl)
		assert.Equal(t, tt.wantName, name, tt.purl)
		assert.Equal(t, tt.wantEcosystem, ecosystem, tt.purl)
	}
}

func TestComponentFromPURLInvalid(t *testing.T) {
	_, _, err := ComponentFromPURL("not-a-purl")
	assert.Error(t, err)
}

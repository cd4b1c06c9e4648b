package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSlug(t *testing.T) {
	valid := []string{"picasso", "deniz-aktas", "a1-b2-c3", "61"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), s)
	}

	invalid := []string{"", "Picasso", "deniz--aktas", "-picasso", "picasso-", "deniz aktas", "deniz_aktas", "ünlü"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), s)
	}
}

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "pablo-picasso", GenerateSlug("Pablo Picasso"))
	assert.Equal(t, "no-14", GenerateSlug("No. 14"))
	assert.Equal(t, "a-b", GenerateSlug("  A   b  "))

	out := GenerateSlug("Deniz  Aktas!!")
	assert.True(t, IsValidSlug(out), out)
}

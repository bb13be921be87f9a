package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForComparison(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Vanne", "vanne"},
		{"Motorisée", "motorisee"},
		{"ÉLÉONORE", "eleonore"},
		{"Entre-Bride", "entre-bride"},
		{"Numéro de série", "numero de serie"},
		{"àâäéèêëïîôöùûüç", "aaaeeeeiioouuuc"},
		{"no accents here", "no accents here"},
		{"123-ABC", "123-abc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ForComparison(tt.in), "input %q", tt.in)
	}
}

func TestForStorage(t *testing.T) {
	assert.Equal(t, "MOTORISEE", ForStorage("Motorisée"))
	assert.Equal(t, "VANNE A OPERCULE", ForStorage("Vanne à Opercule"))
	assert.Equal(t, "AB-100", ForStorage("ab-100"))
}

func TestStorageIdempotent(t *testing.T) {
	inputs := []string{"Motorisée", "Entre-Bride", "déjà vu", "ŒUF", "Straße"}
	for _, s := range inputs {
		once := ForStorage(s)
		assert.Equal(t, once, ForStorage(once), "input %q", s)
	}
}

func TestComparisonStableUnderStorage(t *testing.T) {
	// folding must not depend on whether the input already went through
	// the storage canonicalization
	inputs := []string{"Couleur", "Numéro de série", "BLEU", "bleu foncé", ""}
	for _, s := range inputs {
		assert.Equal(t, ForComparison(s), ForComparison(ForStorage(s)), "input %q", s)
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   \t\n"))
	assert.False(t, IsBlank("0"))
	assert.False(t, IsBlank("false"))
	assert.False(t, IsBlank(" x "))
}

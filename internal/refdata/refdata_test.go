package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateByName(t *testing.T) {
	assert.Equal(t, "NY", StateByName("New York"))
	assert.Equal(t, "CA", StateByName("california"))
	assert.Equal(t, "TX", StateByName("TX"))
	assert.Equal(t, "QC", StateByName("qc"))
}

func TestCountryByISO(t *testing.T) {
	assert.Equal(t, "_unitedStates", CountryByISO("US"))
	assert.Equal(t, "_unitedStates", CountryByISO("us"))
	assert.Equal(t, "_germany", CountryByISO("DE"))
	// unknown codes pass through untouched
	assert.Equal(t, "XX", CountryByISO("XX"))
}

func TestNormalizeCountry(t *testing.T) {
	assert.Equal(t, "UnitedStates", NormalizeCountry("_unitedStates"))
	assert.Equal(t, "Canada", NormalizeCountry("_canada"))
	assert.Equal(t, "", NormalizeCountry(""))
	assert.Equal(t, "", NormalizeCountry("_"))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "15551234567", DigitsOnly("+1 (555) 123-4567"))
	assert.Equal(t, "5551234567", DigitsOnly("555.123.4567 ext"))
	assert.Equal(t, "", DigitsOnly("none"))
}

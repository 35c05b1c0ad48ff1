package registration

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeFromDate(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday today", time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC), 26},
		{"birthday tomorrow", time.Date(2000, time.June, 16, 0, 0, 0, 0, time.UTC), 25},
		{"birthday yesterday", time.Date(2000, time.June, 14, 0, 0, 0, 0, time.UTC), 26},
		{"earlier month", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), 26},
		{"later month", time.Date(2000, time.December, 31, 0, 0, 0, 0, time.UTC), 25},
		{"future date clamps to zero", time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AgeFromDate(tc.dob, now))
		})
	}
}

func TestZodiacSign(t *testing.T) {
	tests := []struct {
		month time.Month
		day   int
		want  string
	}{
		{time.January, 19, "Capricorn"},
		{time.January, 20, "Aquarius"},
		{time.February, 18, "Aquarius"},
		{time.February, 19, "Pisces"},
		{time.March, 20, "Pisces"},
		{time.March, 21, "Aries"},
		{time.April, 19, "Aries"},
		{time.April, 20, "Taurus"},
		{time.May, 20, "Taurus"},
		{time.May, 21, "Gemini"},
		{time.June, 20, "Gemini"},
		{time.June, 21, "Cancer"},
		{time.July, 22, "Cancer"},
		{time.July, 23, "Leo"},
		{time.August, 22, "Leo"},
		{time.August, 23, "Virgo"},
		{time.September, 22, "Virgo"},
		{time.September, 23, "Libra"},
		{time.October, 22, "Libra"},
		{time.October, 23, "Scorpio"},
		{time.November, 21, "Scorpio"},
		{time.November, 22, "Sagittarius"},
		{time.December, 21, "Sagittarius"},
		{time.December, 22, "Capricorn"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ZodiacSign(tc.month, tc.day), "%v %d", tc.month, tc.day)
	}
}

func TestRecomputeDerivedFromBirthDateField(t *testing.T) {
	withFixedClock(t)
	schema := BuildSchema(fullCatalog())

	values := map[string]any{"dateOfBirth": "2000-05-21", "firstName": "Amara"}
	RecomputeDerived(schema, values)

	assert.Equal(t, 26, values["age"])
	assert.Equal(t, "Gemini", values["zodiacSign"])
	// Unrelated fields are never touched.
	assert.Equal(t, "Amara", values["firstName"])
	assert.Len(t, values, 4)
}

func TestRecomputeDerivedFromDayMonthYearTrio(t *testing.T) {
	withFixedClock(t)
	schema := CompiledSchema{}

	values := map[string]any{"birthDay": float64(29), "birthMonth": float64(2), "birthYear": float64(2000)}
	RecomputeDerived(schema, values)

	assert.Equal(t, 26, values["age"])
	assert.Equal(t, "Pisces", values["zodiacSign"])
}

func TestRecomputeDerivedRejectsOverflowedDates(t *testing.T) {
	withFixedClock(t)
	schema := CompiledSchema{}

	// Feb 30 would normalize to March 1; it must not produce derived values.
	values := map[string]any{"birthDay": 30, "birthMonth": 2, "birthYear": 2000}
	RecomputeDerived(schema, values)

	assert.NotContains(t, values, "age")
	assert.NotContains(t, values, "zodiacSign")
}

func TestRecomputeDerivedIsIdempotent(t *testing.T) {
	withFixedClock(t)
	schema := BuildSchema(fullCatalog())

	values := map[string]any{"dateOfBirth": "1995-04-12"}
	RecomputeDerived(schema, values)
	first := map[string]any{}
	for k, v := range values {
		first[k] = v
	}

	RecomputeDerived(schema, values)
	assert.Equal(t, first, values)
}

func TestRecomputeDerivedNoBirthDate(t *testing.T) {
	schema := BuildSchema(fullCatalog())
	values := map[string]any{"firstName": "Amara"}
	RecomputeDerived(schema, values)
	assert.Len(t, values, 1)
}

func TestGenerateBioIsDeterministic(t *testing.T) {
	values := map[string]any{
		"firstName":         "Amara",
		"occupation":        []string{"Software Engineer"},
		"location":          "Nairobi",
		"hobbies":           []string{"hiking", "painting", "chess", "reading"},
		"relationshipGoals": "Long-term Partner",
	}

	first := GenerateBio(values)
	second := GenerateBio(values)
	require.Equal(t, first, second)

	assert.GreaterOrEqual(t, len(first), MinBioLength)
	assert.Contains(t, first, "Hi, I'm Amara")
	assert.Contains(t, first, "working in software engineer")
	assert.Contains(t, first, "based in Nairobi")
	// Only the first three likes make it in.
	assert.Contains(t, first, "hiking, painting and chess")
	assert.NotContains(t, first, "reading")
	assert.Contains(t, first, "Looking for long-term partner.")
}

func TestGenerateBioFallbacks(t *testing.T) {
	bio := GenerateBio(map[string]any{})

	assert.GreaterOrEqual(t, len(bio), MinBioLength)
	assert.True(t, strings.HasPrefix(bio, "Hi, I'm New here"))
	assert.Contains(t, bio, "Excited to meet someone genuine.")
}

func TestGenerateBioFallsBackToInterests(t *testing.T) {
	bio := GenerateBio(map[string]any{
		"firstName": "Lia",
		"interests": []string{"live music"},
	})
	assert.Contains(t, bio, "I love live music.")
}

func TestJoinNaturally(t *testing.T) {
	assert.Equal(t, "", joinNaturally(nil))
	assert.Equal(t, "hiking", joinNaturally([]string{"hiking"}))
	assert.Equal(t, "hiking and chess", joinNaturally([]string{"hiking", "chess"}))
	assert.Equal(t, "a, b and c", joinNaturally([]string{"a", "b", "c"}))
}

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fullProfile() *Profile {
	return &Profile{
		ID:              "uid-1",
		FullName:        strPtr("Jane Doe"),
		ProfilePhotoURL: strPtr("http://localhost:8080/files/profile-photos/uid-1/profile.png"),
		Phone:           strPtr("+46 70 123 45 67"),
		Location:        strPtr("Stockholm"),
		Bio:             strPtr("Recruitment specialist."),
		Experience:      strPtr("10 years in executive search."),
		Education:       strPtr("MSc, Uppsala University"),
		Skills:          []string{"sourcing", "negotiation"},
	}
}

func TestCalculateCompletion_WeightsSumTo100(t *testing.T) {
	_, items := CalculateCompletion(nil)
	require.Len(t, items, 8)

	total := 0
	for _, item := range items {
		total += item.Weight
	}
	assert.Equal(t, 100, total)
}

func TestCalculateCompletion_EmptyInputs(t *testing.T) {
	pct, items := CalculateCompletion(nil)
	assert.Equal(t, 0, pct)
	for _, item := range items {
		assert.False(t, item.Completed, "item %s should be incomplete on nil profile", item.ID)
	}

	pct, _ = CalculateCompletion(&Profile{ID: "uid-1"})
	assert.Equal(t, 0, pct)

	// Pointer to empty string is still "not filled".
	pct, _ = CalculateCompletion(&Profile{ID: "uid-1", Bio: strPtr("")})
	assert.Equal(t, 0, pct)
}

func TestCalculateCompletion_FullProfile(t *testing.T) {
	pct, items := CalculateCompletion(fullProfile())
	assert.Equal(t, 100, pct)
	for _, item := range items {
		assert.True(t, item.Completed, "item %s should be complete", item.ID)
	}
}

func TestCalculateCompletion_PartialSums(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		want    int
	}{
		{
			name:    "experience alone",
			profile: &Profile{ID: "u", Experience: strPtr("x")},
			want:    20,
		},
		{
			name:    "photo and bio",
			profile: &Profile{ID: "u", ProfilePhotoURL: strPtr("x"), Bio: strPtr("y")},
			want:    30,
		},
		{
			name:    "name, phone, location, education, skills",
			profile: &Profile{ID: "u", FullName: strPtr("a"), Phone: strPtr("b"), Location: strPtr("c"), Education: strPtr("d"), Skills: []string{"e"}},
			want:    50,
		},
		{
			name:    "empty skills slice does not count",
			profile: &Profile{ID: "u", Skills: []string{}, FullName: strPtr("a")},
			want:    10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, _ := CalculateCompletion(tt.profile)
			assert.Equal(t, tt.want, pct)
		})
	}
}

func TestCalculateCompletion_MonotonicAsFieldsFill(t *testing.T) {
	p := &Profile{ID: "u"}
	prev, _ := CalculateCompletion(p)

	fill := []func(){
		func() { p.ProfilePhotoURL = strPtr("x") },
		func() { p.FullName = strPtr("x") },
		func() { p.Phone = strPtr("x") },
		func() { p.Location = strPtr("x") },
		func() { p.Bio = strPtr("x") },
		func() { p.Experience = strPtr("x") },
		func() { p.Education = strPtr("x") },
		func() { p.Skills = []string{"x"} },
	}
	for i, step := range fill {
		step()
		pct, _ := CalculateCompletion(p)
		assert.GreaterOrEqual(t, pct, prev, "step %d must not decrease the percentage", i)
		prev = pct
	}
	assert.Equal(t, 100, prev)
}

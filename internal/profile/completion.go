// File: internal/profile/completion.go
package profile

import "math"

// CompletionItem is one weighted checklist entry in the profile-completion
// score. Items are derived from the profile on every call, never stored.
type CompletionItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Weight    int    `json:"weight"`
}

// The fixed checklist. Weights sum to 100.
var completionChecklist = []struct {
	id     string
	label  string
	weight int
	filled func(p *Profile) bool
}{
	{"photo", "Profile Photo", 15, func(p *Profile) bool { return present(p.ProfilePhotoURL) }},
	{"name", "Full Name", 10, func(p *Profile) bool { return present(p.FullName) }},
	{"phone", "Phone Number", 10, func(p *Profile) bool { return present(p.Phone) }},
	{"location", "Location", 10, func(p *Profile) bool { return present(p.Location) }},
	{"bio", "Bio/Summary", 15, func(p *Profile) bool { return present(p.Bio) }},
	{"experience", "Work Experience", 20, func(p *Profile) bool { return present(p.Experience) }},
	{"education", "Education", 10, func(p *Profile) bool { return present(p.Education) }},
	{"skills", "Skills", 10, func(p *Profile) bool { return len(p.Skills) > 0 }},
}

// CalculateCompletion computes the weighted completion percentage for a
// profile. A nil profile scores 0 with every item incomplete.
func CalculateCompletion(p *Profile) (int, []CompletionItem) {
	items := make([]CompletionItem, 0, len(completionChecklist))
	completedWeight := 0
	totalWeight := 0

	for _, entry := range completionChecklist {
		completed := p != nil && entry.filled(p)
		items = append(items, CompletionItem{
			ID:        entry.id,
			Label:     entry.label,
			Completed: completed,
			Weight:    entry.weight,
		})
		totalWeight += entry.weight
		if completed {
			completedWeight += entry.weight
		}
	}

	percentage := int(math.Round(float64(completedWeight) * 100 / float64(totalWeight)))
	return percentage, items
}

func present(s *string) bool {
	return s != nil && *s != ""
}

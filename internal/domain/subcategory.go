package domain

// Subcategory is a user-defined activity type belonging to exactly one
// category. Created, renamed, and deleted independently of day records;
// hour entries keep referring to a deleted subcategory's id and display
// falls back to "Unknown".
type Subcategory struct {
	Syncable
	UserID   string   `json:"user_id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Color    string   `json:"color"`
}

// Snapshot returns the display copy attached to hour entries.
func (s *Subcategory) Snapshot() *SubcategorySnapshot {
	return &SubcategorySnapshot{
		Name:     s.Name,
		Color:    s.Color,
		Category: s.Category,
	}
}

// UnknownSubcategoryName is the display fallback for dangling references.
const UnknownSubcategoryName = "Unknown"

// DefaultSubcategories returns the starter set created for a new account
// during onboarding. Colors default to the owning category's color.
func DefaultSubcategories() []Subcategory {
	names := map[Category][]string{
		CategoryRest: {
			"Sleep", "Break", "Nap", "Relaxation", "Meditation", "Prayer", "Reflection",
		},
		CategoryWork: {
			"Meetings", "Coding", "Planning", "Emails", "Studying", "Reading", "Research", "Practice",
		},
		CategoryOther: {
			"Wasted", "Others", "Spiritual", "Cooking", "Cleaning", "Shopping", "Commute",
			"Entertainment", "Gaming", "Social Media", "Exercise", "Hobbies", "Misc",
		},
	}

	var subs []Subcategory
	for _, cat := range Categories() {
		for _, name := range names[cat] {
			subs = append(subs, Subcategory{
				Name:     name,
				Category: cat,
				Color:    cat.Color(),
			})
		}
	}
	return subs
}

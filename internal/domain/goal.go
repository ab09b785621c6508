package domain

// Goal is a user-defined daily target for a category+subcategory pair.
// Goals have their own lifecycle, independent of day records.
type Goal struct {
	Syncable
	UserID        string   `json:"user_id"`
	Category      Category `json:"category"`
	SubcategoryID string   `json:"subcategory_id"`
	TargetHours   float64  `json:"target_hours"`
}

// GoalProgress is the computed standing of one goal against one day.
type GoalProgress struct {
	GoalID      string  `json:"goal_id"`
	Date        string  `json:"date"`
	LoggedHours float64 `json:"logged_hours"`
	TargetHours float64 `json:"target_hours"`
	Percent     float64 `json:"percent"`
	Achieved    bool    `json:"achieved"`
}

// Progress measures the goal against a day's populated slots. Matching
// counts slots with the same category and subcategory, one hour per slot.
// Percent is capped at 100.
func (g *Goal) Progress(d *DayRecord) GoalProgress {
	logged := 0.0
	if d != nil {
		for _, entry := range d.Hours {
			if entry == nil {
				continue
			}
			if entry.Category == g.Category && entry.SubcategoryID == g.SubcategoryID {
				logged += entry.Duration
			}
		}
	}

	p := GoalProgress{
		GoalID:      g.ID,
		LoggedHours: logged,
		TargetHours: g.TargetHours,
	}
	if d != nil {
		p.Date = d.Date
	}
	if g.TargetHours > 0 {
		p.Percent = logged / g.TargetHours * 100
		if p.Percent > 100 {
			p.Percent = 100
		}
		p.Achieved = logged >= g.TargetHours
	}
	return p
}

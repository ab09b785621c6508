package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/daygridapp/daygrid-server/internal/domain"
)

// AnalyticsService aggregates recorded days into summaries, trend series,
// and the well-being wheel. Everything derives from the range query; nothing
// here writes.
type AnalyticsService struct {
	tracking *TrackingService
	logger   *slog.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(tracking *TrackingService, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{tracking: tracking, logger: logger}
}

// SubcategoryHours is one slice of the summary breakdown.
type SubcategoryHours struct {
	SubcategoryID string          `json:"subcategory_id"`
	Name          string          `json:"name"`
	Color         string          `json:"color"`
	Category      domain.Category `json:"category"`
	Hours         float64         `json:"hours"`
}

// RangeSummary is the hour breakdown for a date range.
type RangeSummary struct {
	StartDate     string                      `json:"start_date"`
	EndDate       string                      `json:"end_date"`
	DaysRecorded  int                         `json:"days_recorded"`
	TotalHours    float64                     `json:"total_hours"`
	CategoryHours map[domain.Category]float64 `json:"category_hours"`
	Subcategories []SubcategoryHours          `json:"subcategories"`
}

// DailyTrendPoint is one day in a trend series.
type DailyTrendPoint struct {
	Date          string                      `json:"date"`
	CategoryHours map[domain.Category]float64 `json:"category_hours"`
	TotalHours    float64                     `json:"total_hours"`
}

// WellBeingCount is one spoke of the well-being wheel.
type WellBeingCount struct {
	Tag  domain.WellBeingTag `json:"tag"`
	Days int                 `json:"days"`
}

// Summary aggregates slot hours over an inclusive date range, broken down by
// category and by subcategory. Entries referencing a subcategory without a
// stored snapshot fall back to "Unknown".
func (s *AnalyticsService) Summary(ctx context.Context, userID, startDate, endDate string) (*RangeSummary, error) {
	records, err := s.tracking.GetRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary := &RangeSummary{
		StartDate:     startDate,
		EndDate:       endDate,
		DaysRecorded:  len(records),
		CategoryHours: make(map[domain.Category]float64),
	}

	bySubcategory := make(map[string]*SubcategoryHours)
	for _, rec := range records {
		for _, entry := range rec.Hours {
			if entry == nil {
				continue
			}
			summary.TotalHours += entry.Duration
			summary.CategoryHours[entry.Category] += entry.Duration

			slice := bySubcategory[entry.SubcategoryID]
			if slice == nil {
				slice = &SubcategoryHours{
					SubcategoryID: entry.SubcategoryID,
					Name:          domain.UnknownSubcategoryName,
					Color:         entry.Category.Color(),
					Category:      entry.Category,
				}
				if entry.Subcategory != nil {
					slice.Name = entry.Subcategory.Name
					slice.Color = entry.Subcategory.Color
				}
				bySubcategory[entry.SubcategoryID] = slice
			}
			slice.Hours += entry.Duration
		}
	}

	summary.Subcategories = make([]SubcategoryHours, 0, len(bySubcategory))
	for _, slice := range bySubcategory {
		summary.Subcategories = append(summary.Subcategories, *slice)
	}
	// Largest slices first, name as tiebreaker for stable output.
	slices.SortFunc(summary.Subcategories, func(a, b SubcategoryHours) int {
		if a.Hours != b.Hours {
			if a.Hours > b.Hours {
				return -1
			}
			return 1
		}
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})

	return summary, nil
}

// Trends returns a per-day category hour series over an inclusive date
// range, ordered by date ascending. Days without a record are omitted.
func (s *AnalyticsService) Trends(ctx context.Context, userID, startDate, endDate string) ([]DailyTrendPoint, error) {
	records, err := s.tracking.GetRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	points := make([]DailyTrendPoint, 0, len(records))
	for _, rec := range records {
		point := DailyTrendPoint{
			Date:          rec.Date,
			CategoryHours: make(map[domain.Category]float64),
		}
		for _, entry := range rec.Hours {
			if entry == nil {
				continue
			}
			point.CategoryHours[entry.Category] += entry.Duration
			point.TotalHours += entry.Duration
		}
		points = append(points, point)
	}
	return points, nil
}

// WellBeing returns the well-being wheel for a date range: for each tag, the
// number of recorded days carrying it. Every tag appears in the result, in
// wheel order, so clients can render empty spokes.
func (s *AnalyticsService) WellBeing(ctx context.Context, userID, startDate, endDate string) ([]WellBeingCount, error) {
	records, err := s.tracking.GetRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	days := make(map[domain.WellBeingTag]int)
	for _, rec := range records {
		for _, tag := range rec.WellBeingTags {
			days[tag]++
		}
	}

	counts := make([]WellBeingCount, 0, len(domain.WellBeingTags()))
	for _, tag := range domain.WellBeingTags() {
		counts = append(counts, WellBeingCount{Tag: tag, Days: days[tag]})
	}
	return counts, nil
}

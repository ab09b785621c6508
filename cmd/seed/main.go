// Package main provides a tool to seed the database with demo tracking data.
//
// It creates (or reuses) a demo user, seeds the default subcategories, and
// fills the last month of day records with a deterministic activity pattern so
// the grid, goals, and analytics views have something to show.
//
// Usage:
//
//	DATA_PATH=~/DayGrid/data go run ./cmd/seed
//	DATA_PATH=~/DayGrid/data go run ./cmd/seed --days 14
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/daygridapp/daygrid-server/internal/auth"
	"github.com/daygridapp/daygrid-server/internal/domain"
	"github.com/daygridapp/daygrid-server/internal/id"
	"github.com/daygridapp/daygrid-server/internal/store"
	"github.com/daygridapp/daygrid-server/internal/store/sqlite"
)

var (
	email    = flag.String("email", "demo@daygrid.local", "Demo user email")
	password = flag.String("password", "demo-password", "Demo user password")
	days     = flag.Int("days", 30, "Number of past days to fill")
)

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/DayGrid/data")
	}
	dbPath := filepath.Join(dataPath, "daygrid.db")

	if err := os.MkdirAll(dataPath, 0o750); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := sqlite.Open(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	user, err := ensureDemoUser(ctx, s)
	if err != nil {
		log.Fatalf("Failed to ensure demo user: %v", err)
	}
	fmt.Printf("Seeding data for user: %s (%s)\n", user.DisplayName, user.ID)

	subs, err := ensureSubcategories(ctx, s, user.ID)
	if err != nil {
		log.Fatalf("Failed to seed subcategories: %v", err)
	}
	fmt.Printf("User has %d subcategories\n", len(subs))

	bySubName := make(map[string]*domain.Subcategory, len(subs))
	for _, sub := range subs {
		bySubName[sub.Name] = sub
	}

	created := 0
	now := time.Now()
	for back := *days - 1; back >= 0; back-- {
		date := now.AddDate(0, 0, -back).Format("2006-01-02")
		rec := buildDemoDay(user.ID, date, back, bySubName)
		if _, err := s.UpsertDayRecord(ctx, rec); err != nil {
			log.Fatalf("Failed to write day %s: %v", date, err)
		}
		created++
	}

	fmt.Printf("Done. Wrote %d day records.\n", created)
}

// ensureDemoUser finds or creates the demo account.
func ensureDemoUser(ctx context.Context, s store.Store) (*domain.User, error) {
	user, err := s.GetUserByEmail(ctx, *email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		return nil, err
	}

	userID, err := id.Generate("user")
	if err != nil {
		return nil, err
	}

	user = &domain.User{
		Syncable:     domain.Syncable{ID: userID},
		Email:        *email,
		PasswordHash: hash,
		DisplayName:  "Demo User",
		Onboarded:    true,
		Occupation:   "Engineer",
		Age:          30,
		Focus:        "Balance",
	}
	user.InitTimestamps()

	if err := s.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	fmt.Printf("Created demo user %s\n", *email)
	return user, nil
}

// ensureSubcategories seeds the default sets when the user has none.
func ensureSubcategories(ctx context.Context, s store.Store, userID string) ([]*domain.Subcategory, error) {
	existing, err := s.ListSubcategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	for _, sub := range domain.DefaultSubcategories() {
		subID, err := id.Generate("sub")
		if err != nil {
			return nil, err
		}
		sub.ID = subID
		sub.UserID = userID
		sub.InitTimestamps()
		if err := s.CreateSubcategory(ctx, &sub); err != nil {
			return nil, err
		}
	}
	return s.ListSubcategories(ctx, userID)
}

// buildDemoDay fills one date with a plausible daily rhythm. The pattern is a
// hash of (day, hour) so repeated runs produce the same month.
func buildDemoDay(userID, date string, dayIndex int, subs map[string]*domain.Subcategory) *domain.DayRecord {
	rec := domain.NewDayRecord(userID, date)

	for hour := 0; hour < 24; hour++ {
		roll := (dayIndex*37 + hour*13) % 100

		var (
			sub      *domain.Subcategory
			taskName string
		)
		switch {
		case hour < 7 || hour >= 23:
			sub = subs["Sleep"]
		case hour >= 9 && hour < 12:
			sub = subs["Coding"]
			taskName = "Morning focus block"
		case hour >= 13 && hour < 17:
			if roll < 30 {
				sub = subs["Meetings"]
			} else {
				sub = subs["Coding"]
			}
			taskName = "Afternoon work"
		case hour >= 18 && hour < 20 && roll < 50:
			sub = subs["Exercise"]
		case hour >= 20 && hour < 22:
			sub = subs["Entertainment"]
		default:
			// Leave roughly a quarter of the remaining hours empty.
			if roll < 25 {
				continue
			}
			sub = subs["Others"]
		}
		if sub == nil {
			continue
		}

		rec.Hours[hour] = &domain.HourEntry{
			TaskName:      taskName,
			Category:      sub.Category,
			SubcategoryID: sub.ID,
			Duration:      1.0,
			Subcategory:   sub.Snapshot(),
		}
	}

	rec.WellBeingTags = demoTags(dayIndex)
	return rec
}

// demoTags varies the reflected tags across the month.
func demoTags(dayIndex int) []domain.WellBeingTag {
	all := domain.WellBeingTags()
	tags := []domain.WellBeingTag{domain.TagPhysical}
	tags = append(tags, all[dayIndex%len(all)])
	if dayIndex%3 == 0 {
		tags = append(tags, domain.TagGrowth)
	}
	return domain.MergeTags(nil, tags)
}

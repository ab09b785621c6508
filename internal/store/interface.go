// Package store defines the persistence interface for the DayGrid server.
package store

import (
	"context"

	"github.com/daygridapp/daygrid-server/internal/domain"
)

// Store defines the interface for all persistence operations.
type Store interface {
	// Lifecycle
	Close() error

	// Users
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	CountUsers(ctx context.Context) (int, error)

	// Auth Sessions
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	GetSessionByRefreshToken(ctx context.Context, tokenHash string) (*domain.Session, error)
	UpdateSession(ctx context.Context, session *domain.Session) error
	DeleteSession(ctx context.Context, id string) error
	ListUserSessions(ctx context.Context, userID string) ([]*domain.Session, error)
	DeleteAllUserSessions(ctx context.Context, userID string) error
	DeleteExpiredSessions(ctx context.Context) (int, error)

	// Day Records
	// GetDayRecord returns ErrNotFound for dates never written; callers
	// treat that as "create" via UpsertDayRecord.
	GetDayRecord(ctx context.Context, userID, date string) (*domain.DayRecord, error)
	// GetDayRecordRange returns records with startDate <= date <= endDate,
	// ordered by date ascending. Bounds are inclusive.
	GetDayRecordRange(ctx context.Context, userID, startDate, endDate string) ([]*domain.DayRecord, error)
	// UpsertDayRecord inserts or fully replaces the record for
	// (userID, record.Date). The stored row id is assigned on first insert
	// and preserved on update; the returned record carries it.
	UpsertDayRecord(ctx context.Context, record *domain.DayRecord) (*domain.DayRecord, error)
	DeleteDayRecord(ctx context.Context, userID, date string) error

	// Subcategories
	CreateSubcategory(ctx context.Context, sub *domain.Subcategory) error
	GetSubcategory(ctx context.Context, id string) (*domain.Subcategory, error)
	UpdateSubcategory(ctx context.Context, sub *domain.Subcategory) error
	DeleteSubcategory(ctx context.Context, id string) error
	ListSubcategories(ctx context.Context, userID string) ([]*domain.Subcategory, error)

	// Goals
	CreateGoal(ctx context.Context, goal *domain.Goal) error
	GetGoal(ctx context.Context, id string) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goal *domain.Goal) error
	DeleteGoal(ctx context.Context, id string) error
	ListGoals(ctx context.Context, userID string) ([]*domain.Goal, error)
}

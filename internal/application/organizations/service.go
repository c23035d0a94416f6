package organizations

import (
	"context"
	"errors"
	"time"

	"orgboard-backend/internal/domain"
	"orgboard-backend/internal/grid"
	"orgboard-backend/internal/models"
	"orgboard-backend/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrDatabaseUnavailable is returned by SyncToDatabase when no DB was wired.
var ErrDatabaseUnavailable = errors.New("database not configured")

// Service encapsulates organization read and sync operations. The record
// sequence itself lives in the injected store; the service never mutates it.
type Service struct {
	Store   *store.Store
	DB      *gorm.DB
	Columns []grid.ColumnSpec
}

func NewService(st *store.Store, db *gorm.DB) *Service {
	return &Service{
		Store:   st,
		DB:      db,
		Columns: grid.OrganizationColumns(),
	}
}

// List returns a snapshot of the current records plus the load state.
func (s *Service) List() ([]domain.Organization, store.State) {
	return s.Store.Get(), s.Store.State()
}

// GridColumns returns the static column schema.
func (s *Service) GridColumns() []grid.ColumnSpec {
	return s.Columns
}

// GridRows formats the current records against the column schema.
func (s *Service) GridRows() ([]grid.Row, store.State) {
	return grid.RenderRows(s.Columns, s.Store.Get()), s.Store.State()
}

// CreateIntentInput is the optional payload of a creation intent.
type CreateIntentInput struct {
	CompanyName string `json:"company_name"`
}

// CreateIntent acknowledges a "new company" intent without acting on it.
// The current record sequence is never touched; the intent is logged with a
// generated id and dropped.
func (s *Service) CreateIntent(in CreateIntentInput) string {
	intentID := uuid.New().String()
	log.Info().Str("intent_id", intentID).Str("company_name", in.CompanyName).Msg("organization creation intent received (no-op)")
	return intentID
}

// SyncToDatabase replaces the persisted organizations table with the current
// in-memory sequence, mirroring the store's replace-wholesale semantics.
// Engagement dates are parsed into date columns here; unparseable values
// become the zero date rather than failing the sync.
func (s *Service) SyncToDatabase(ctx context.Context) (int, error) {
	if s.DB == nil {
		return 0, ErrDatabaseUnavailable
	}
	records := s.Store.Get()

	rows := make([]models.Organization, len(records))
	for i, org := range records {
		rows[i] = models.Organization{
			CompanyName:            org.CompanyName,
			Industry:               org.Industry,
			Size:                   org.Size,
			Status:                 org.Status,
			FirstEngagement:        toDate(org.FirstEngagement),
			LastEngagement:         toDate(org.LastEngagement),
			FinalEngagementSummary: org.FinalEngagementSummary,
			IconColor:              org.IconColor,
		}
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Organization{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
	if err != nil {
		return 0, err
	}
	log.Info().Int("rows", len(rows)).Msg("organizations synced to database")
	return len(rows), nil
}

func toDate(iso string) datatypes.Date {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return datatypes.Date{}
	}
	return datatypes.Date(t)
}

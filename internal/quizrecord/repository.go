package quizrecord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists quiz records by name. Get returns (nil, nil) when the
// record does not exist.
type Store interface {
	Get(ctx context.Context, name string) (*Record, error)
	Put(ctx context.Context, rec *Record) error
	List(ctx context.Context) ([]*Record, error)
}

type recordRow struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name           string         `gorm:"type:text;uniqueIndex;not null"`
	GeneratedAt    time.Time      `gorm:"not null"`
	TotalQuestions int            `gorm:"not null;default:0"`
	Questions      datatypes.JSON `gorm:"type:jsonb;not null"`
}

func (recordRow) TableName() string { return "quiz_records" }

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&recordRow{}); err != nil {
		return nil, fmt.Errorf("migrate quiz_records: %w", err)
	}
	return &gormStore{db: db}, nil
}

func (s *gormStore) Get(ctx context.Context, name string) (*Record, error) {
	var row recordRow
	if err := s.db.WithContext(ctx).First(&row, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rowToRecord(&row)
}

func (s *gormStore) Put(ctx context.Context, rec *Record) error {
	questions, err := json.Marshal(rec.Questions)
	if err != nil {
		return err
	}

	row := recordRow{
		ID:             uuid.New(),
		Name:           rec.Name,
		GeneratedAt:    rec.GeneratedAt,
		TotalQuestions: rec.TotalQuestions,
		Questions:      datatypes.JSON(questions),
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"generated_at", "total_questions", "questions"}),
		}).
		Create(&row).Error
}

func (s *gormStore) List(ctx context.Context) ([]*Record, error) {
	var rows []recordRow
	if err := s.db.WithContext(ctx).
		Order("generated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(rows))
	for i := range rows {
		rec, err := rowToRecord(&rows[i])
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func rowToRecord(row *recordRow) (*Record, error) {
	var questions []StoredQuestion
	if err := json.Unmarshal(row.Questions, &questions); err != nil {
		return nil, fmt.Errorf("decode questions for %s: %w", row.Name, err)
	}
	return &Record{
		Name:           row.Name,
		GeneratedAt:    row.GeneratedAt,
		TotalQuestions: row.TotalQuestions,
		Questions:      questions,
	}, nil
}

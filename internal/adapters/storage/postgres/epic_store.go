package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/eventplanr/task-service/internal/domain"
	"github.com/eventplanr/task-service/internal/domain/epic"
	"github.com/eventplanr/task-service/internal/ports"
)

// Compile-time interface check.
var _ ports.EpicStore = (*EpicStore)(nil)

// EpicStore implements ports.EpicStore on PostgreSQL.
type EpicStore struct {
	db *DB
}

// NewEpicStore creates an EpicStore on the shared database handle.
func NewEpicStore(db *DB) *EpicStore {
	return &EpicStore{db: db}
}

// Save upserts an epic. A zero ID inserts a new row and returns the entity
// with its assigned primary key. The derived Tasks field is not persisted.
func (s *EpicStore) Save(ctx context.Context, e *epic.Epic) (*epic.Epic, error) {
	rec := toEpicRecord(e)

	if err := s.db.gorm.WithContext(ctx).Save(&rec).Error; err != nil {
		return nil, fmt.Errorf("saving epic: %w", err)
	}

	stored := rec.toDomain()
	return &stored, nil
}

// FindByID returns an epic (without its tasks) or domain.ErrNotFound.
func (s *EpicStore) FindByID(ctx context.Context, id int64) (*epic.Epic, error) {
	var rec epicRecord
	err := s.db.gorm.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding epic: %w", err)
	}

	e := rec.toDomain()
	return &e, nil
}

// Delete removes an epic or returns domain.ErrNotFound.
func (s *EpicStore) Delete(ctx context.Context, id int64) error {
	res := s.db.gorm.WithContext(ctx).Delete(&epicRecord{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting epic: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

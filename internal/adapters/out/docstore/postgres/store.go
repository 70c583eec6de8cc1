// Package postgres implements the document store port on top of a single
// PostgreSQL table. Every record is one row holding its kind, its
// store-assigned identifier and the document body as jsonb, so the store
// stays schemaless and attribute filters go through the jsonb operators.
package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	"harbor/internal/adapters/out/docstore"
	"harbor/internal/core/ports"
	"harbor/internal/pkg/errs"

	"gorm.io/gorm"
)

// jsonb carries a raw JSON document to and from a jsonb column.
type jsonb []byte

// Value implements driver.Valuer.
func (j jsonb) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

// Scan implements sql.Scanner.
func (j *jsonb) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
	return nil
}

// DocumentDTO represents one stored document row.
type DocumentDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Kind string `gorm:"type:varchar(64);not null;index:idx_documents_kind"`
	Data jsonb  `gorm:"type:jsonb;not null"`
}

// TableName overrides GORM's default naming to use "documents".
func (DocumentDTO) TableName() string {
	return "documents"
}

// GormDocumentStore implements the DocumentStore port using GORM.
type GormDocumentStore struct {
	db *gorm.DB
}

// NewGormDocumentStore creates a new GORM backed document store.
func NewGormDocumentStore(db *gorm.DB) (*GormDocumentStore, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}
	return &GormDocumentStore{db: db}, nil
}

// Get loads one document. Absence is not an error: a missing record comes
// back as a nil document with a nil error.
func (s *GormDocumentStore) Get(ctx context.Context, kind string, id int64) (*ports.Document, error) {
	var dto DocumentDTO
	err := s.db.WithContext(ctx).First(&dto, "kind = ? AND id = ?", kind, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &ports.Document{ID: dto.ID, Data: []byte(dto.Data)}, nil
}

// Save inserts a new document and returns the identifier the store assigned.
func (s *GormDocumentStore) Save(ctx context.Context, kind string, data []byte) (int64, error) {
	dto := DocumentDTO{Kind: kind, Data: jsonb(data)}
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}
	return dto.ID, nil
}

// Update replaces the body of an existing document.
func (s *GormDocumentStore) Update(ctx context.Context, kind string, id int64, data []byte) error {
	result := s.db.WithContext(ctx).
		Model(&DocumentDTO{}).
		Where("kind = ? AND id = ?", kind, id).
		Update("data", jsonb(data))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(kind, id)
	}
	return nil
}

// Delete removes a document.
func (s *GormDocumentStore) Delete(ctx context.Context, kind string, id int64) error {
	result := s.db.WithContext(ctx).Where("kind = ? AND id = ?", kind, id).Delete(&DocumentDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(kind, id)
	}
	return nil
}

// Query returns up to limit documents of the given kind in ascending id
// order, resuming strictly after the document named by the cursor. The scan
// fetches one extra row to decide whether more results remain.
func (s *GormDocumentStore) Query(ctx context.Context, kind string, filter *ports.Filter, limit int, cursor string) (ports.QueryResult, error) {
	if limit <= 0 {
		return ports.QueryResult{}, errs.NewValueIsInvalidError("limit")
	}

	lastID, err := docstore.DecodeCursor(cursor)
	if err != nil {
		return ports.QueryResult{}, err
	}

	tx := s.db.WithContext(ctx).Where("kind = ?", kind)
	if filter != nil {
		tx = tx.Where("data->>? = ?", filter.Attribute, filter.Value)
	}
	if lastID > 0 {
		tx = tx.Where("id > ?", lastID)
	}

	var dtos []DocumentDTO
	if err := tx.Order("id ASC").Limit(limit + 1).Find(&dtos).Error; err != nil {
		return ports.QueryResult{}, err
	}

	result := ports.QueryResult{}
	if len(dtos) > limit {
		result.HasMore = true
		dtos = dtos[:limit]
	}

	result.Documents = make([]ports.Document, 0, len(dtos))
	for _, dto := range dtos {
		result.Documents = append(result.Documents, ports.Document{ID: dto.ID, Data: []byte(dto.Data)})
	}
	if result.HasMore {
		result.NextCursor = docstore.EncodeCursor(dtos[len(dtos)-1].ID)
	}

	return result, nil
}

// Count returns the number of documents of the given kind matching the
// filter.
func (s *GormDocumentStore) Count(ctx context.Context, kind string, filter *ports.Filter) (int, error) {
	tx := s.db.WithContext(ctx).Model(&DocumentDTO{}).Where("kind = ?", kind)
	if filter != nil {
		tx = tx.Where("data->>? = ?", filter.Attribute, filter.Value)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

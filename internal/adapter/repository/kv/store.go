// Package kv persists each collection as a single JSON document in one
// gorm table, preserving the store's whole-value replace semantics. An
// implementation backed by indexed per-row storage can be swapped in
// behind the same domain repository interfaces without touching call
// sites.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection names double as primary keys in the documents table.
const (
	colUsers      = "users"
	colLoans      = "loans"
	colPortfolios = "portfolios"
)

type document struct {
	Name      string    `gorm:"primaryKey;size:64;column:name"`
	Body      []byte    `gorm:"column:body"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (document) TableName() string { return "collections" }

// AutoMigrate creates the documents table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&document{})
}

// load unmarshals the named collection into out. A missing document is an
// empty collection, not an error.
func load(ctx context.Context, db *gorm.DB, name string, out any) error {
	var doc document
	res := db.WithContext(ctx).Where("name = ?", name).First(&doc)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil
		}
		return res.Error
	}
	if len(doc.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(doc.Body, out); err != nil {
		return fmt.Errorf("decode collection %s: %w", name, err)
	}
	return nil
}

// save marshals v and upserts it as the named collection's document.
func save(ctx context.Context, db *gorm.DB, name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	doc := document{Name: name, Body: body}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, UpdateAll: true}).
		Create(&doc).Error
}

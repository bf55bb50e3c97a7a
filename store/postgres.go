package store

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// sheetRow is one table row persisted relationally. Field names and values
// are kept as aligned JSON arrays so the worksheet's column order survives
// the round trip.
type sheetRow struct {
	ID       uint   `gorm:"primaryKey"`
	Sheet    string `gorm:"index:idx_sheet_position;size:64;not null"`
	Position int    `gorm:"index:idx_sheet_position;not null"`
	Keys     string `gorm:"type:text;not null"`
	Vals     string `gorm:"type:text;not null"`
}

// PostgresStore is the row-addressable alternative backend. Unlike the
// sheet backend, ReplaceTable runs in a single transaction, so a failed
// replace never leaves the table empty.
type PostgresStore struct {
	db *gorm.DB
}

func OpenPostgres(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return NewPostgresStore(db)
}

func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&sheetRow{}); err != nil {
		return nil, fmt.Errorf("migrate sheet_rows: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) FetchTable(ctx context.Context, table string) ([]*Record, error) {
	var rows []sheetRow
	err := p.db.WithContext(ctx).
		Where("sheet = ?", table).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}
	out := make([]*Record, 0, len(rows))
	for _, row := range rows {
		rec, err := decodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", table, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (p *PostgresStore) AppendRecord(ctx context.Context, table string, rec *Record) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var max int
		if err := tx.Model(&sheetRow{}).
			Where("sheet = ?", table).
			Select("COALESCE(MAX(position), 0)").
			Scan(&max).Error; err != nil {
			return err
		}
		row, err := encodeRow(table, max+1, rec)
		if err != nil {
			return err
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return &WriteError{Table: table, Op: "append", Err: err}
	}
	return nil
}

func (p *PostgresStore) ReplaceTable(ctx context.Context, table string, recs []*Record) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sheet = ?", table).Delete(&sheetRow{}).Error; err != nil {
			return err
		}
		for i, rec := range recs {
			row, err := encodeRow(table, i+1, rec)
			if err != nil {
				return err
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &WriteError{Table: table, Op: "replace", Err: err}
	}
	return nil
}

func encodeRow(table string, position int, rec *Record) (*sheetRow, error) {
	keys, err := json.Marshal(rec.Keys())
	if err != nil {
		return nil, err
	}
	vals, err := json.Marshal(rec.Values())
	if err != nil {
		return nil, err
	}
	return &sheetRow{
		Sheet:    table,
		Position: position,
		Keys:     string(keys),
		Vals:     string(vals),
	}, nil
}

func decodeRow(row sheetRow) (*Record, error) {
	var keys, vals []string
	if err := json.Unmarshal([]byte(row.Keys), &keys); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(row.Vals), &vals); err != nil {
		return nil, err
	}
	rec := NewRecord()
	for i, k := range keys {
		val := ""
		if i < len(vals) {
			val = vals[i]
		}
		rec.Set(k, val)
	}
	return rec, nil
}

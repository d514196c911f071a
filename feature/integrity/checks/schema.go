package checks

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// TableReport describes the state of one table.
type TableReport struct {
	Exists         bool     `json:"exists"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"`
}

// SchemaReport describes how the database compares to the models.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors,omitempty"`
}

// CheckSchema verifies that every model has its table and columns in db.
// The models are the source of truth.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, errors.New("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport, len(models)),
	}
	migrator := db.Migrator()

	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		tbl := TableReport{MissingColumns: []string{}, Status: "ok"}
		if !migrator.HasTable(model) {
			tbl.Status = "missing"
			report.Tables[table] = tbl
			report.Matched = false
			continue
		}
		tbl.Exists = true

		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" {
				continue
			}
			if !migrator.HasColumn(model, field.DBName) {
				tbl.MissingColumns = append(tbl.MissingColumns, field.DBName)
				tbl.Status = "error"
				report.Matched = false
			}
		}
		report.Tables[table] = tbl
	}

	return report, nil
}

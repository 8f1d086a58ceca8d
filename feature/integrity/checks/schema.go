package checks

import (
	"context"
	"fmt"

	"backoffice/core/database"
	"backoffice/core/staging"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a schema check.
type SchemaReport struct {
	Matched  bool            `json:"matched"`
	Datasets []DatasetReport `json:"datasets"`
}

// DatasetReport covers the two tables of one dataset.
type DatasetReport struct {
	Dataset string        `json:"dataset"`
	Matched bool          `json:"matched"`
	Tables  []TableReport `json:"tables"`
}

type TableReport struct {
	Table          string   `json:"table"`
	Role           string   `json:"role"` // "target", "staging"
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
	Error          string   `json:"error,omitempty"`
}

// CheckSchema inspects the target and staging table of every dataset.
// A table that cannot be inspected is reported, not returned as an error.
func CheckSchema(ctx context.Context, db *gorm.DB, datasets []staging.Dataset) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{Matched: true, Datasets: make([]DatasetReport, 0, len(datasets))}
	for _, ds := range datasets {
		dr := DatasetReport{Dataset: ds.Name, Matched: true}
		for _, t := range []struct{ role, name string }{{"target", ds.Target}, {"staging", ds.Staging}} {
			tr := checkTable(ctx, db, t.name, ds.Columns())
			tr.Role = t.role
			if tr.Status != "ok" {
				dr.Matched = false
			}
			dr.Tables = append(dr.Tables, tr)
		}
		if !dr.Matched {
			report.Matched = false
		}
		report.Datasets = append(report.Datasets, dr)
	}
	return report, nil
}

func checkTable(ctx context.Context, db *gorm.DB, table string, cols []string) TableReport {
	tr := TableReport{Table: table, MissingColumns: []string{}, Status: "ok"}
	missing, err := database.MissingColumns(ctx, db, table, cols)
	if err != nil {
		tr.Status = "error"
		tr.Error = err.Error()
		return tr
	}
	if len(missing) > 0 {
		tr.MissingColumns = missing
		tr.Status = "error"
	}
	return tr
}

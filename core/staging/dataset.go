package staging

import (
	"errors"
	"fmt"

	"backoffice/core/rowcodec"
)

// Promote describes how staged rows are moved into the target table.
// At most one of Procedure and Statements may be set.
type Promote struct {
	// Procedure is a stored procedure taking no arguments.
	Procedure string
	// Statements run in order inside one transaction.
	Statements []string
}

// ProcedurePrefix names the promote procedure of a target table.
const ProcedurePrefix = "usp_promote_"

// Dataset binds a record shape to its staging and target tables.
type Dataset struct {
	Name    string
	Target  string
	Staging string
	// Fields is the declared column order of both tables.
	Fields  []rowcodec.FieldSpec
	Promote Promote
}

// Columns returns the field names in declared order.
func (d Dataset) Columns() []string {
	cols := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		cols[i] = f.Name
	}
	return cols
}

// WithProcedure returns a copy of d promoted by its conventional stored
// procedure, usp_promote_<target>.
func (d Dataset) WithProcedure() Dataset {
	d.Promote = Promote{Procedure: ProcedurePrefix + d.Target}
	return d
}

// Validate checks that the dataset is usable by a Loader.
func (d Dataset) Validate() error {
	var errs []error
	if d.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if d.Target == "" {
		errs = append(errs, errors.New("target table is required"))
	}
	if d.Staging == "" {
		errs = append(errs, errors.New("staging table is required"))
	}
	if d.Staging != "" && d.Staging == d.Target {
		errs = append(errs, errors.New("staging and target must be different tables"))
	}
	if len(d.Fields) == 0 {
		errs = append(errs, errors.New("at least one field is required"))
	}
	seen := make(map[string]struct{}, len(d.Fields))
	for _, f := range d.Fields {
		if _, dup := seen[f.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate field %q", f.Name))
		}
		seen[f.Name] = struct{}{}
	}
	if d.Promote.Procedure != "" && len(d.Promote.Statements) > 0 {
		errs = append(errs, errors.New("promote procedure and statements are mutually exclusive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("dataset %q: %w", d.Name, errors.Join(errs...))
	}
	return nil
}

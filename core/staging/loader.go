package staging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"backoffice/core/database"
	"backoffice/core/rowcodec"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrInvalidState is returned when StageAll or Promote is called outside a
// cycle started by ClearStaging.
var ErrInvalidState = errors.New("loader not in staging state")

// State is the position of a Loader in its load cycle.
type State int

const (
	StateIdle State = iota
	StateStaging
	StatePromoted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStaging:
		return "staging"
	case StatePromoted:
		return "promoted"
	default:
		return "unknown"
	}
}

// Loader replaces the full contents of one dataset through its staging table.
type Loader struct {
	db      *gorm.DB
	ds      Dataset
	dialect rowcodec.Dialect
	logger  *zap.Logger

	state   State
	cycleID string
	staged  int
	started time.Time
}

// NewLoader creates a Loader for ds on the given store handle.
// The literal dialect follows the handle's driver. A nil logger disables logging.
func NewLoader(db *gorm.DB, ds Dataset, logger *zap.Logger) (*Loader, error) {
	if db == nil {
		return nil, errors.New("staging: database handle is required")
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		db:      db,
		ds:      ds,
		dialect: rowcodec.DialectFor(db.Dialector.Name()),
		logger:  logger.With(zap.String("dataset", ds.Name)),
	}, nil
}

// Dataset returns the dataset this loader writes.
func (l *Loader) Dataset() Dataset { return l.ds }

// State returns the current cycle state.
func (l *Loader) State() State { return l.state }

// ClearStaging removes every row from the staging table and starts a new cycle.
// Clearing an already empty staging table is not an error.
func (l *Loader) ClearStaging(ctx context.Context) error {
	l.cycleID = uuid.NewString()
	l.staged = 0
	l.started = time.Now()

	stmt := "DELETE FROM " + l.quote(l.ds.Staging)
	if err := database.Exec(ctx, l.db, "clear staging", l.ds.Staging, stmt); err != nil {
		l.abort("clear staging", err)
		return err
	}

	l.state = StateStaging
	l.logger.Debug("Staging cleared", zap.String("cycle_id", l.cycleID))
	return nil
}

// StageAll inserts records into the staging table with a single multi-row
// INSERT in the dataset's declared column order. The statement succeeds or
// fails as a whole. An empty slice executes nothing.
func (l *Loader) StageAll(ctx context.Context, records []rowcodec.Record) error {
	if l.state != StateStaging {
		return fmt.Errorf("%w: stage %s while %s", ErrInvalidState, l.ds.Name, l.state)
	}
	if len(records) == 0 {
		l.logger.Debug("Nothing to stage", zap.String("cycle_id", l.cycleID))
		return nil
	}

	stmt := l.InsertStatement(records)
	if err := database.Exec(ctx, l.db, "stage", l.ds.Staging, stmt); err != nil {
		l.abort("stage", err, zap.Int("rows", len(records)), zap.Int("statement_bytes", len(stmt)))
		return err
	}

	l.staged += len(records)
	l.logger.Debug("Rows staged",
		zap.String("cycle_id", l.cycleID),
		zap.Int("rows", len(records)),
		zap.Int("statement_bytes", len(stmt)),
	)
	return nil
}

// Promote triggers the move of staged rows into the target table.
// The move itself is executed by the store; a failure here leaves the target
// in whatever state the store's promote left it.
func (l *Loader) Promote(ctx context.Context) error {
	if l.state != StateStaging {
		return fmt.Errorf("%w: promote %s while %s", ErrInvalidState, l.ds.Name, l.state)
	}

	var err error
	if l.ds.Promote.Procedure != "" {
		stmt := "CALL " + l.quote(l.ds.Promote.Procedure) + "()"
		err = database.Exec(ctx, l.db, "promote", l.ds.Target, stmt)
	} else {
		err = l.promoteStatements(ctx, l.PromoteStatements())
	}
	if err != nil {
		l.abort("promote", err)
		return err
	}

	l.state = StatePromoted
	l.logger.Info("Dataset promoted",
		zap.String("cycle_id", l.cycleID),
		zap.Int("rows", l.staged),
		zap.Duration("elapsed", time.Since(l.started)),
	)
	return nil
}

// ReplaceAll clears staging, stages records (skipped when empty) and promotes.
// Promote does not run if clearing or staging fails.
func (l *Loader) ReplaceAll(ctx context.Context, records []rowcodec.Record) error {
	if err := l.ClearStaging(ctx); err != nil {
		return err
	}
	if len(records) > 0 {
		if err := l.StageAll(ctx, records); err != nil {
			return err
		}
	}
	return l.Promote(ctx)
}

// InsertStatement renders the multi-row INSERT used by StageAll.
func (l *Loader) InsertStatement(records []rowcodec.Record) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(l.quote(l.ds.Staging))
	b.WriteString(" (")
	b.WriteString(l.columnList())
	b.WriteString(") VALUES ")
	b.WriteString(l.dialect.EncodeValues(records, l.ds.Fields))
	return b.String()
}

// PromoteStatements returns the statements a non-procedure promote runs.
func (l *Loader) PromoteStatements() []string {
	if len(l.ds.Promote.Statements) > 0 {
		return l.ds.Promote.Statements
	}
	cols := l.columnList()
	return []string{
		"DELETE FROM " + l.quote(l.ds.Target),
		"INSERT INTO " + l.quote(l.ds.Target) + " (" + cols + ") SELECT " + cols + " FROM " + l.quote(l.ds.Staging),
	}
}

// VerifyShape checks that both tables carry every declared field.
func (l *Loader) VerifyShape(ctx context.Context) error {
	for _, table := range []string{l.ds.Staging, l.ds.Target} {
		missing, err := database.MissingColumns(ctx, l.db, table, l.ds.Columns())
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("dataset %s: table %s is missing columns %v", l.ds.Name, table, missing)
		}
	}
	return nil
}

func (l *Loader) promoteStatements(ctx context.Context, stmts []string) error {
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range stmts {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &database.StorageError{Op: "promote", Table: l.ds.Target, Err: err}
	}
	return nil
}

func (l *Loader) abort(step string, err error, fields ...zap.Field) {
	l.state = StateIdle
	fields = append(fields, zap.String("cycle_id", l.cycleID), zap.String("step", step), zap.Error(err))
	l.logger.Error("Load cycle aborted", fields...)
}

func (l *Loader) columnList() string {
	cols := make([]string, len(l.ds.Fields))
	for i, f := range l.ds.Fields {
		cols[i] = l.quote(f.Name)
	}
	return strings.Join(cols, ",")
}

func (l *Loader) quote(ident string) string {
	return database.Quote(l.db, ident)
}

// Package database is the store boundary of the back office.
//
// It opens the GORM handle (MySQL in production, SQLite for local runs and
// tests) and offers the few primitives the loaders and readers need on top of
// it: QueryRows for named-column result sets, Exec for statements, Quote for
// dialect-correct identifiers, and a schema inspector used to check that a
// staging table has the shape of its target.
//
// Every failure crossing this boundary is reported as a *StorageError so that
// callers can tell store problems apart from decode or classification errors.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	rows, err := database.QueryRows(ctx, db, "SELECT * FROM security_alert")
package database

// Package store implements the persistence layer over PostgreSQL.
// Each repository owns the SQL for one aggregate and translates driver
// errors into the package's sentinel errors.
package store

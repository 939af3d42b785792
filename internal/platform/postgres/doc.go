// Package postgres implements the store interfaces on PostgreSQL through
// database/sql with the pgx driver. It owns the SQL for the items table
// and the prompt_config row, and translates driver errors into the store
// package's sentinel errors.
package postgres

// Package store defines the persistence interfaces for the content
// pipeline: the item catalog and the prompt configuration row. The
// interfaces keep the services independent of the backing database; the
// Postgres implementations live in internal/platform/postgres.
package store

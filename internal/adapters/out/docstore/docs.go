// Package docstore implements the document store port and the repositories
// built on top of it.
//
// The store keeps every record as a schemaless JSON document addressed by a
// (kind, id) pair. Two interchangeable drivers exist: a PostgreSQL driver
// backed by a single jsonb table (subpackage postgres) and an in-memory
// driver used by tests (subpackage memory). Repositories (subpackages
// vesselrepo and cargorepo) map domain aggregates onto documents and are
// driver-agnostic.
//
// Pagination across the package is keyset based. A cursor is the base64url
// encoding of the last identifier already returned, so a page scan resumes
// strictly after that record regardless of inserts and deletes between
// requests.
package docstore

// Package mongostore persists submissions in MongoDB.
//
// Each kind goes to the collection named after its table. Documents use a
// UUID string as _id so identifiers look the same as with the Postgres
// store.
package mongostore

package submission

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/intake/pkg/sanitizer"
)

// ErrFailedToInsert wraps any error returned by a Store.
var ErrFailedToInsert = errors.New("failed to insert submission")

// Metadata is request information stored next to a submission.
type Metadata struct {
	ClientIP  string
	UserAgent string
	RequestID string
}

const maxUserAgent = 512

// Column is one stored field. Value is a string, []string or int.
type Column struct {
	Name  string
	Value any
}

// Record is what a Store persists. Column names come from descriptors
// only, never from client input.
type Record struct {
	Kind      Kind
	Table     string
	Status    string
	Fields    []Column
	Metadata  Metadata
	CreatedAt time.Time
}

// Store persists records. Implementations must be safe for concurrent use.
type Store interface {
	// Insert stores rec and returns the identifier assigned by the store.
	Insert(ctx context.Context, rec Record) (string, error)
}

// NewRecord builds the record for a sanitized submission.
func NewRecord(d Descriptor, s Sanitized, derived Derived, meta Metadata) Record {
	rec := Record{
		Kind:   d.Kind,
		Table:  d.Table,
		Status: d.DefaultStatus,
		Metadata: Metadata{
			ClientIP:  meta.ClientIP,
			UserAgent: sanitizer.MaxLength(sanitizer.RemoveControlChars(meta.UserAgent), maxUserAgent),
			RequestID: meta.RequestID,
		},
		CreatedAt: time.Now().UTC(),
	}
	for _, f := range d.Fields {
		if !s.Has(f.Name) {
			continue
		}
		if f.List {
			rec.Fields = append(rec.Fields, Column{Name: f.Column, Value: s.List(f.Name)})
			continue
		}
		rec.Fields = append(rec.Fields, Column{Name: f.Column, Value: s.String(f.Name)})
	}
	if derived.EstimatedCost != nil {
		rec.Fields = append(rec.Fields, Column{Name: "estimated_cost", Value: *derived.EstimatedCost})
	}
	return rec
}

package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/intake/svc/submission"
)

var (
	ErrNilDatabase = errors.New("mongo database is nil")
	ErrEmptyRecord = errors.New("record has no collection or fields")
)

// DefaultTimeout bounds a single insert.
const DefaultTimeout = 5 * time.Second

// Store writes each kind's submissions into its own collection, named
// after the descriptor table.
type Store struct {
	db      *mongo.Database
	timeout time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTimeout overrides DefaultTimeout. Non-positive values disable it.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) { s.timeout = d }
}

// New returns a Store backed by db.
func New(db *mongo.Database, opts ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}
	s := &Store{db: db, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

var _ submission.Store = (*Store)(nil)

// Insert stores rec as one document and returns its _id.
func (s *Store) Insert(ctx context.Context, rec submission.Record) (string, error) {
	id, doc, err := document(rec)
	if err != nil {
		return "", errors.Join(submission.ErrFailedToInsert, err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if _, err := s.db.Collection(rec.Table).InsertOne(ctx, doc); err != nil {
		return "", errors.Join(submission.ErrFailedToInsert, fmt.Errorf("insert into %s: %w", rec.Table, err))
	}
	return id, nil
}

// document maps rec to BSON with a UUID string _id. Metadata fields that
// are empty are left out.
func document(rec submission.Record) (string, bson.D, error) {
	if rec.Table == "" || len(rec.Fields) == 0 {
		return "", nil, ErrEmptyRecord
	}

	id := uuid.NewString()
	doc := make(bson.D, 0, len(rec.Fields)+6)
	doc = append(doc, bson.E{Key: "_id", Value: id})
	for _, f := range rec.Fields {
		doc = append(doc, bson.E{Key: f.Name, Value: f.Value})
	}
	doc = append(doc, bson.E{Key: "status", Value: rec.Status})
	if rec.Metadata.ClientIP != "" {
		doc = append(doc, bson.E{Key: "ip_address", Value: rec.Metadata.ClientIP})
	}
	if rec.Metadata.UserAgent != "" {
		doc = append(doc, bson.E{Key: "user_agent", Value: rec.Metadata.UserAgent})
	}
	if rec.Metadata.RequestID != "" {
		doc = append(doc, bson.E{Key: "request_id", Value: rec.Metadata.RequestID})
	}
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	doc = append(doc, bson.E{Key: "created_at", Value: created})
	return id, doc, nil
}

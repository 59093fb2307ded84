package pgstore

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/intake/pkg/pg"
	"github.com/dmitrymomot/intake/svc/submission"
)

var (
	// ErrEmptyRecord is returned for a record without a table or fields.
	ErrEmptyRecord = errors.New("record has no table or fields")
	// ErrTableMissing means the kind's table does not exist; migrations were not applied.
	ErrTableMissing = errors.New("submission table does not exist")
	// ErrValueTooLong means a value exceeded a column limit.
	ErrValueTooLong = errors.New("value exceeds column limit")
)

// DefaultTimeout bounds a single insert.
const DefaultTimeout = 5 * time.Second

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store writes submissions into one table per kind.
type Store struct {
	db      Querier
	timeout time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTimeout overrides DefaultTimeout. Non-positive values disable it.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) { s.timeout = d }
}

// New returns a Store backed by db.
func New(db Querier, opts ...Option) *Store {
	s := &Store{db: db, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ submission.Store = (*Store)(nil)

// Insert stores rec and returns the generated uuid.
func (s *Store) Insert(ctx context.Context, rec submission.Record) (string, error) {
	query, args, err := buildInsert(rec)
	if err != nil {
		return "", errors.Join(submission.ErrFailedToInsert, err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var id string
	if err := s.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return "", errors.Join(submission.ErrFailedToInsert, classify(err), fmt.Errorf("insert into %s: %w", rec.Table, err))
	}
	return id, nil
}

// classify maps known postgres failures to package errors, or nil.
func classify(err error) error {
	switch {
	case pg.IsUndefinedTableError(err):
		return ErrTableMissing
	case pg.IsStringTooLongError(err):
		return ErrValueTooLong
	default:
		return nil
	}
}

// buildInsert renders a parameterized INSERT. Identifiers come from the
// record, which takes them from descriptors; every value is a bind parameter.
func buildInsert(rec submission.Record) (string, []any, error) {
	if rec.Table == "" || len(rec.Fields) == 0 {
		return "", nil, ErrEmptyRecord
	}

	cols := make([]string, 0, len(rec.Fields)+5)
	args := make([]any, 0, len(rec.Fields)+5)
	for _, f := range rec.Fields {
		cols = append(cols, f.Name)
		args = append(args, f.Value)
	}
	cols = append(cols, "status", "ip_address", "user_agent", "request_id", "created_at")
	args = append(args,
		rec.Status,
		ipOrNil(rec.Metadata.ClientIP),
		textOrNil(rec.Metadata.UserAgent),
		textOrNil(rec.Metadata.RequestID),
		createdAt(rec.CreatedAt),
	)

	quoted := make([]string, len(cols))
	params := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = pgx.Identifier{c}.Sanitize()
		params[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id::text",
		pgx.Identifier{rec.Table}.Sanitize(),
		strings.Join(quoted, ", "),
		strings.Join(params, ", "),
	)
	return query, args, nil
}

func ipOrNil(ip string) any {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return nil
	}
	return addr.String()
}

func textOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func createdAt(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	Load(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, s *State) error
	Delete(ctx context.Context, id string) error
}

// SQLStore keeps sessions in the session table of the SQLite3 DB.
type SQLStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

func (st *SQLStore) Load(ctx context.Context, id string) (*State, error) {
	row := st.db.QueryRowContext(ctx, `
		SELECT id, user_email, payment_nonce, previous_page, entered_email_address, created_at, updated_at
		FROM session
		WHERE id = ?`, id)

	var s State
	err := row.Scan(&s.ID, &s.UserEmail, &s.PaymentNonce, &s.PreviousPage, &s.EnteredEmailAddress, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "session.load.scan")
	}
	return &s, nil
}

// Save inserts or replaces s, stamping its timestamps.
func (st *SQLStore) Save(ctx context.Context, s *State) error {
	now := st.now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	_, err := st.db.ExecContext(ctx, `
		INSERT INTO session (id, user_email, payment_nonce, previous_page, entered_email_address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_email = excluded.user_email,
			payment_nonce = excluded.payment_nonce,
			previous_page = excluded.previous_page,
			entered_email_address = excluded.entered_email_address,
			updated_at = excluded.updated_at`,
		s.ID, s.UserEmail, s.PaymentNonce, s.PreviousPage, s.EnteredEmailAddress, s.CreatedAt, s.UpdatedAt)
	return errors.Wrap(err, "session.save.exec")
}

func (st *SQLStore) Delete(ctx context.Context, id string) error {
	_, err := st.db.ExecContext(ctx, "DELETE FROM session WHERE id = ?", id)
	return errors.Wrap(err, "session.delete.exec")
}

// Purge deletes sessions not updated since before.
func (st *SQLStore) Purge(ctx context.Context, before time.Time) (int64, error) {
	res, err := st.db.ExecContext(ctx, "DELETE FROM session WHERE updated_at < ?", before.UTC())
	if err != nil {
		return 0, errors.Wrap(err, "session.purge.exec")
	}
	return res.RowsAffected()
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/rl1809/volunteer-checkin/internal/core/domain"
)

// SQLAdapter is the registry on MySQL or SQLite. Queries use "?" placeholders
// and portable SQL only.
type SQLAdapter struct {
	db *sql.DB
	// forUpdate is appended to row reads that must take the row lock first.
	forUpdate string
}

func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	a := &SQLAdapter{db: db}
	// SQLite has no row locks; its single writer serializes transactions.
	if _, ok := db.Driver().(*mysql.MySQLDriver); ok {
		a.forUpdate = " FOR UPDATE"
	}
	return a
}

// lockPosition reads the position counter inside tx. Counter transactions
// lock the position row before any registration row.
func (m *SQLAdapter) lockPosition(ctx context.Context, tx *sql.Tx, positionID string) (int64, error) {
	var value int64
	err := tx.QueryRowContext(ctx, `SELECT volunteers_checked_in FROM positions WHERE id = ?`+m.forUpdate, positionID).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrPositionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lock position: %w", err)
	}
	return value, nil
}

const registrationColumns = `
	r.id, r.slot_id, s.position_id, r.volunteer_id, v.email, v.name, r.state, r.check_in_time
	FROM registrations r
	JOIN volunteers v ON v.id = r.volunteer_id
	JOIN slots s ON s.id = r.slot_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (domain.Registration, error) {
	var (
		reg         domain.Registration
		state       string
		checkInTime sql.NullTime
	)
	err := row.Scan(&reg.ID, &reg.SlotID, &reg.PositionID, &reg.VolunteerID,
		&reg.Email, &reg.Name, &state, &checkInTime)
	if err != nil {
		return reg, err
	}
	reg.State = domain.RegistrationState(state)
	if checkInTime.Valid {
		t := checkInTime.Time
		reg.CheckInTime = &t
	}
	return reg, nil
}

func (m *SQLAdapter) FindRegistration(ctx context.Context, slotID, email string) (*domain.Registration, error) {
	row := m.db.QueryRowContext(ctx, `SELECT`+registrationColumns+`
		WHERE r.slot_id = ? AND LOWER(v.email) = ?`, slotID, email)

	reg, err := scanRegistration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query registration: %w", err)
	}
	return &reg, nil
}

func (m *SQLAdapter) TransitionIfRegistered(ctx context.Context, registrationID string, at time.Time) (bool, error) {
	result, err := m.db.ExecContext(ctx, `
		UPDATE registrations
		SET state = ?, check_in_time = ?
		WHERE id = ? AND state = ?`,
		string(domain.RegistrationStateCheckedIn), at.UTC(), registrationID, string(domain.RegistrationStateRegistered),
	)
	if err != nil {
		return false, fmt.Errorf("transition registration: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("transition registration: %w", err)
	}
	return rows == 1, nil
}

func (m *SQLAdapter) SetDisplayName(ctx context.Context, volunteerID, name string) error {
	result, err := m.db.ExecContext(ctx, `UPDATE volunteers SET name = ? WHERE id = ?`, name, volunteerID)
	if err != nil {
		return fmt.Errorf("update volunteer name: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		// MySQL reports 0 for an unchanged value, so confirm the row exists.
		var exists int
		err := m.db.QueryRowContext(ctx, `SELECT 1 FROM volunteers WHERE id = ?`, volunteerID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("volunteer %s not found", volunteerID)
		}
		if err != nil {
			return fmt.Errorf("query volunteer: %w", err)
		}
	}
	return nil
}

func (m *SQLAdapter) ListSlotRegistrations(ctx context.Context, slotID string, state domain.RegistrationState) ([]domain.Registration, error) {
	query := `SELECT` + registrationColumns + ` WHERE r.slot_id = ?`
	args := []any{slotID}
	if state != "" {
		query += ` AND r.state = ?`
		args = append(args, string(state))
	}
	query += ` ORDER BY v.email`

	return m.queryRegistrations(ctx, query, args...)
}

func (m *SQLAdapter) queryRegistrations(ctx context.Context, query string, args ...any) ([]domain.Registration, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query registrations: %w", err)
	}
	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registrations: %w", err)
	}
	return regs, nil
}

func (m *SQLAdapter) GetPosition(ctx context.Context, positionID string) (*domain.Position, error) {
	var p domain.Position
	err := m.db.QueryRowContext(ctx, `
		SELECT id, event_id, name, start_time, end_time, capacity, volunteers_checked_in
		FROM positions WHERE id = ?`, positionID,
	).Scan(&p.ID, &p.EventID, &p.Name, &p.StartTime, &p.EndTime, &p.Capacity, &p.VolunteersCheckedIn)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query position: %w", err)
	}
	return &p, nil
}

func (m *SQLAdapter) ListPositionIDs(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT id FROM positions ORDER BY start_time, id`)
	if err != nil {
		return nil, fmt.Errorf("query positions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate positions: %w", err)
	}
	return ids, nil
}

// IncrementCounter flips the registration's counted flag and bumps the
// position counter in one transaction.
func (m *SQLAdapter) IncrementCounter(ctx context.Context, positionID, registrationID string, delta int64) (int64, bool, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	value, err := m.lockPosition(ctx, tx, positionID)
	if err != nil {
		return 0, false, err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE registrations SET counted = 1
		WHERE id = ? AND state = ? AND counted = 0`,
		registrationID, string(domain.RegistrationStateCheckedIn),
	)
	if err != nil {
		return 0, false, fmt.Errorf("mark registration counted: %w", err)
	}
	marked, err := result.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("mark registration counted: %w", err)
	}

	applied := marked == 1
	if applied {
		_, err = tx.ExecContext(ctx, `
			UPDATE positions
			SET volunteers_checked_in = volunteers_checked_in + ?
			WHERE id = ?`,
			delta, positionID,
		)
		if err != nil {
			return 0, false, fmt.Errorf("increment counter: %w", err)
		}
		value += delta
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit: %w", err)
	}
	return value, applied, nil
}

func (m *SQLAdapter) ListUncounted(ctx context.Context, positionID string) ([]domain.Registration, error) {
	return m.queryRegistrations(ctx, `SELECT`+registrationColumns+`
		WHERE s.position_id = ? AND r.state = ? AND r.counted = 0
		ORDER BY r.id`, positionID, string(domain.RegistrationStateCheckedIn))
}

func (m *SQLAdapter) RecomputeCounter(ctx context.Context, positionID string) (int64, int64, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	previous, err := m.lockPosition(ctx, tx, positionID)
	if err != nil {
		return 0, 0, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE positions
		SET volunteers_checked_in = (
			SELECT COUNT(*) FROM registrations r
			JOIN slots s ON s.id = r.slot_id
			WHERE s.position_id = ? AND r.state = ? AND r.counted = 1
		)
		WHERE id = ?`,
		positionID, string(domain.RegistrationStateCheckedIn), positionID,
	)
	if err != nil {
		return 0, 0, fmt.Errorf("recompute counter: %w", err)
	}

	var current int64
	if err := tx.QueryRowContext(ctx, `SELECT volunteers_checked_in FROM positions WHERE id = ?`, positionID).Scan(&current); err != nil {
		return 0, 0, fmt.Errorf("read counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit: %w", err)
	}
	return previous, current, nil
}

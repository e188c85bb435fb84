package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shiftboard-app/shiftboard/internal/db"
	"github.com/shiftboard-app/shiftboard/internal/domain"
)

// SQLiteStoreRepo implements StoreRepo using a SQLite database.
// Calendar, settings, and tier documents are stored as JSON text in
// the stores row; staffing documents get one row per department.
type SQLiteStoreRepo struct {
	db db.DBTX
}

// NewSQLiteStoreRepo creates a new SQLiteStoreRepo.
func NewSQLiteStoreRepo(database db.DBTX) *SQLiteStoreRepo {
	return &SQLiteStoreRepo{db: database}
}

func (r *SQLiteStoreRepo) Create(ctx context.Context, s *domain.Store) error {
	query := `INSERT INTO stores (id, name, management_key, calendar, employee_tiers, created_at, last_updated)
		VALUES (?, ?, ?, '{}', '{}', ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.ManagementKey,
		s.CreatedAt.Format(time.RFC3339),
		s.LastUpdated.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting store: %w", err)
	}
	return nil
}

func (r *SQLiteStoreRepo) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	query := `SELECT id, name, management_key, created_at, last_updated FROM stores WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.Store
	var createdAtStr, lastUpdatedStr string
	err := row.Scan(&s.ID, &s.Name, &s.ManagementKey, &createdAtStr, &lastUpdatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("store %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning store: %w", err)
	}

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.LastUpdated, parseErr = time.Parse(time.RFC3339, lastUpdatedStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing last_updated: %w", parseErr)
	}
	return &s, nil
}

func (r *SQLiteStoreRepo) List(ctx context.Context) ([]*domain.Store, error) {
	query := `SELECT id, name, management_key, created_at, last_updated FROM stores ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing stores: %w", err)
	}
	defer rows.Close()

	var stores []*domain.Store
	for rows.Next() {
		var s domain.Store
		var createdAtStr, lastUpdatedStr string
		if err := rows.Scan(&s.ID, &s.Name, &s.ManagementKey, &createdAtStr, &lastUpdatedStr); err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		s.LastUpdated, _ = time.Parse(time.RFC3339, lastUpdatedStr)
		stores = append(stores, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stores: %w", err)
	}
	return stores, nil
}

func (r *SQLiteStoreRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting store: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("store %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteStoreRepo) GetCalendar(ctx context.Context, storeID string) (domain.CalendarDoc, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT calendar FROM stores WHERE id = ?`, storeID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("store %q: %w", storeID, ErrNotFound)
		}
		return nil, fmt.Errorf("reading calendar: %w", err)
	}
	doc := domain.CalendarDoc{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("decoding calendar: %w", err)
		}
	}
	return doc, nil
}

func (r *SQLiteStoreRepo) SaveCalendar(ctx context.Context, storeID string, doc domain.CalendarDoc) error {
	return r.saveColumn(ctx, storeID, "calendar", doc)
}

func (r *SQLiteStoreRepo) GetSettings(ctx context.Context, storeID string) (domain.Settings, error) {
	var raw sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT settings FROM stores WHERE id = ?`, storeID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Settings{}, fmt.Errorf("store %q: %w", storeID, ErrNotFound)
		}
		return domain.Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	if !raw.Valid || raw.String == "" {
		return domain.DefaultSettings(), nil
	}
	var settings domain.Settings
	if err := json.Unmarshal([]byte(raw.String), &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return settings, nil
}

func (r *SQLiteStoreRepo) SaveSettings(ctx context.Context, storeID string, settings domain.Settings) error {
	return r.saveColumn(ctx, storeID, "settings", settings)
}

func (r *SQLiteStoreRepo) GetTiers(ctx context.Context, storeID string) (domain.EmployeeTiers, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT employee_tiers FROM stores WHERE id = ?`, storeID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("store %q: %w", storeID, ErrNotFound)
		}
		return nil, fmt.Errorf("reading employee tiers: %w", err)
	}
	tiers := domain.EmployeeTiers{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &tiers); err != nil {
			return nil, fmt.Errorf("decoding employee tiers: %w", err)
		}
	}
	return tiers, nil
}

func (r *SQLiteStoreRepo) SaveTiers(ctx context.Context, storeID string, tiers domain.EmployeeTiers) error {
	return r.saveColumn(ctx, storeID, "employee_tiers", tiers)
}

func (r *SQLiteStoreRepo) GetStaffing(ctx context.Context, storeID string, dept domain.Department) (*domain.StaffingDoc, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT doc FROM staffing_docs WHERE store_id = ? AND department = ?`,
		storeID, string(dept),
	).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("staffing for store %q dept %q: %w", storeID, dept, ErrNotFound)
		}
		return nil, fmt.Errorf("reading staffing: %w", err)
	}
	var doc domain.StaffingDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decoding staffing: %w", err)
	}
	return &doc, nil
}

func (r *SQLiteStoreRepo) SaveStaffing(ctx context.Context, storeID string, dept domain.Department, doc *domain.StaffingDoc) error {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding staffing: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO staffing_docs (store_id, department, doc, last_updated)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(store_id, department) DO UPDATE SET doc = excluded.doc, last_updated = excluded.last_updated`
	if _, err := r.db.ExecContext(ctx, query, storeID, string(dept), string(encoded), now); err != nil {
		return fmt.Errorf("saving staffing: %w", err)
	}
	return r.touch(ctx, storeID, now)
}

// saveColumn JSON-encodes a document into one stores column and bumps
// last_updated.
func (r *SQLiteStoreRepo) saveColumn(ctx context.Context, storeID, column string, doc any) error {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", column, err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	query := fmt.Sprintf(`UPDATE stores SET %s = ?, last_updated = ? WHERE id = ?`, column)
	res, err := r.db.ExecContext(ctx, query, string(encoded), now, storeID)
	if err != nil {
		return fmt.Errorf("saving %s: %w", column, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking %s update: %w", column, err)
	}
	if affected == 0 {
		return fmt.Errorf("store %q: %w", storeID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteStoreRepo) touch(ctx context.Context, storeID, now string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE stores SET last_updated = ? WHERE id = ?`, now, storeID); err != nil {
		return fmt.Errorf("touching store: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"solarquote/internal/models"
)

type ApplianceSQLite struct {
	db *sql.DB
}

func NewApplianceSQLite(db *sql.DB) *ApplianceSQLite {
	return &ApplianceSQLite{db: db}
}

var _ ApplianceRepo = (*ApplianceSQLite)(nil)

const (
	selectAppliancesSQL = `
		SELECT id, name, wattage, hours_per_day, quantity, created_at
		FROM appliances WHERE user_id = ?
		ORDER BY created_at ASC, id ASC
	`

	insertApplianceSQL = `
		INSERT INTO appliances (id, user_id, name, wattage, hours_per_day, quantity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	updateApplianceSQL = `
		UPDATE appliances SET name = ?, wattage = ?, hours_per_day = ?, quantity = ?
		WHERE user_id = ? AND id = ?
	`

	deleteApplianceSQL = `DELETE FROM appliances WHERE user_id = ? AND id = ?`

	countAppliancesSQL = `SELECT COUNT(*) FROM appliances WHERE user_id = ?`
)

// ListByUser returns the user's rows in insertion order.
func (r *ApplianceSQLite) ListByUser(ctx context.Context, userID int) ([]models.Appliance, error) {
	rows, err := r.db.QueryContext(ctx, selectAppliancesSQL, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.Appliance
	for rows.Next() {
		var a models.Appliance
		if err := rows.Scan(&a.ID, &a.Name, &a.Wattage, &a.HoursPerDay, &a.Quantity, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.CreatedAt = a.CreatedAt.UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}

// Insert stores a new row. CreatedAt is set if zero so ordering stays stable.
func (r *ApplianceSQLite) Insert(ctx context.Context, userID int, a models.Appliance) error {
	created := a.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	} else {
		created = created.UTC()
	}
	_, err := r.db.ExecContext(ctx, insertApplianceSQL,
		a.ID, userID, a.Name, a.Wattage, a.HoursPerDay, a.Quantity, created)
	return err
}

// Update rewrites the editable fields. Returns false if the row does not
// exist for this user.
func (r *ApplianceSQLite) Update(ctx context.Context, userID int, a models.Appliance) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateApplianceSQL,
		a.Name, a.Wattage, a.HoursPerDay, a.Quantity, userID, a.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes one row. Returns false if nothing matched.
func (r *ApplianceSQLite) Delete(ctx context.Context, userID int, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteApplianceSQL, userID, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ApplianceSQLite) CountByUser(ctx context.Context, userID int) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countAppliancesSQL, userID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

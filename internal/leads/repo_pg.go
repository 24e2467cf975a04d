package leads

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new lead.
func (r *PGRepo) Create(ctx context.Context, lead Lead) error {
	const query = `
INSERT INTO leads (
    id,
    name,
    email,
    company,
    phone,
    company_size,
    employee_count,
    industry,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var phone sql.NullString
	if lead.Phone != "" {
		phone = sql.NullString{String: lead.Phone, Valid: true}
	}
	var industry sql.NullString
	if lead.Industry != "" {
		industry = sql.NullString{String: lead.Industry, Valid: true}
	}
	var employees sql.NullInt64
	if lead.EmployeeCount != nil {
		employees = sql.NullInt64{Int64: int64(*lead.EmployeeCount), Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Company,
		phone,
		lead.CompanySize,
		employees,
		industry,
		lead.CreatedAt,
	)
	return err
}

// GetByID returns a lead by id.
func (r *PGRepo) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	const query = `
SELECT id, name, email, company, phone, company_size, employee_count, industry, created_at
FROM leads
WHERE id = $1`
	var lead Lead
	var phone sql.NullString
	var industry sql.NullString
	var employees sql.NullInt64
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Company,
		&phone,
		&lead.CompanySize,
		&employees,
		&industry,
		&lead.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		return Lead{}, err
	}
	if phone.Valid {
		lead.Phone = phone.String
	}
	if industry.Valid {
		lead.Industry = industry.String
	}
	if employees.Valid {
		n := int(employees.Int64)
		lead.EmployeeCount = &n
	}
	return lead, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/repository"
)

var _ repository.SubmissionRepository = (*SubmissionRepo)(nil)

// SubmissionRepo implements the SubmissionRepository port over PostgreSQL.
type SubmissionRepo struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository builds the persistence adapter for submissions.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepo {
	return &SubmissionRepo{pool: pool}
}

// Optional text columns come back through COALESCE so rows written before a
// column existed still scan into plain strings.
const submissionColumns = `
	id,
	customer_first_name, customer_last_name, COALESCE(customer_email, ''), customer_phone,
	customer_address, customer_city, customer_state, customer_zip,
	equipment_type, COALESCE(tonnage, ''), COALESCE(equipment_notes, ''),
	division, lead_source, sale_amount, COALESCE(financing_bank, ''),
	down_payment, monthly_payment,
	installation_date, COALESCE(installation_notes, ''),
	submitted_by, submitted_by_name, submitted_at, status, synced_at`

// Create persists a new submission. ID, SubmittedAt and Status must already
// be assigned by the use case.
func (r *SubmissionRepo) Create(ctx context.Context, s *entity.Submission) error {
	query := `
		INSERT INTO sales_submissions (
			id,
			customer_first_name, customer_last_name, customer_email, customer_phone,
			customer_address, customer_city, customer_state, customer_zip,
			equipment_type, tonnage, equipment_notes,
			division, lead_source, sale_amount, financing_bank,
			down_payment, monthly_payment,
			installation_date, installation_notes,
			submitted_by, submitted_by_name, submitted_at, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		)`
	_, err := r.pool.Exec(ctx, query,
		s.ID,
		s.CustomerFirstName, s.CustomerLastName, s.CustomerEmail, s.CustomerPhone,
		s.CustomerAddress, s.CustomerCity, s.CustomerState, s.CustomerZip,
		s.EquipmentType, s.Tonnage, s.EquipmentNotes,
		s.Division, s.LeadSource, s.SaleAmount, s.FinancingBank,
		s.DownPayment, s.MonthlyPayment,
		s.InstallationDate, s.InstallationNotes,
		s.SubmittedBy, s.SubmittedByName, s.SubmittedAt, s.Status,
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// GetByID fetches a submission by id.
func (r *SubmissionRepo) GetByID(ctx context.Context, id string) (*entity.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM sales_submissions WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)
	s, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get submission by id: %w", err)
	}
	return s, nil
}

// List returns submissions matching the filters, newest first. An empty
// Division means no division filter; date bounds are inclusive.
func (r *SubmissionRepo) List(ctx context.Context, filters repository.SubmissionFilters) ([]*entity.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM sales_submissions`
	var (
		conds []string
		args  []any
	)
	if filters.Division != "" {
		args = append(args, filters.Division)
		conds = append(conds, fmt.Sprintf("division = $%d", len(args)))
	}
	if filters.StartDate != nil {
		args = append(args, *filters.StartDate)
		conds = append(conds, fmt.Sprintf("submitted_at >= $%d", len(args)))
	}
	if filters.EndDate != nil {
		args = append(args, *filters.EndDate)
		conds = append(conds, fmt.Sprintf("submitted_at <= $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY submitted_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update persists an edited submission. Status and synced_at are deliberately
// excluded; they belong to UpdateStatus.
func (r *SubmissionRepo) Update(ctx context.Context, s *entity.Submission) error {
	query := `
		UPDATE sales_submissions SET
			customer_first_name = $2, customer_last_name = $3, customer_email = $4,
			customer_phone = $5, customer_address = $6, customer_city = $7,
			customer_state = $8, customer_zip = $9,
			equipment_type = $10, tonnage = $11, equipment_notes = $12,
			division = $13, lead_source = $14, sale_amount = $15, financing_bank = $16,
			down_payment = $17, monthly_payment = $18,
			installation_date = $19, installation_notes = $20
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		s.ID,
		s.CustomerFirstName, s.CustomerLastName, s.CustomerEmail,
		s.CustomerPhone, s.CustomerAddress, s.CustomerCity,
		s.CustomerState, s.CustomerZip,
		s.EquipmentType, s.Tonnage, s.EquipmentNotes,
		s.Division, s.LeadSource, s.SaleAmount, s.FinancingBank,
		s.DownPayment, s.MonthlyPayment,
		s.InstallationDate, s.InstallationNotes,
	)
	if err != nil {
		return fmt.Errorf("update submission: %w", err)
	}
	return nil
}

// UpdateStatus advances the sync status after the fan-out attempt.
func (r *SubmissionRepo) UpdateStatus(ctx context.Context, id, status string, syncedAt *time.Time) error {
	var err error
	if syncedAt != nil {
		_, err = r.pool.Exec(ctx,
			`UPDATE sales_submissions SET status = $2, synced_at = $3 WHERE id = $1`,
			id, status, *syncedAt)
	} else {
		_, err = r.pool.Exec(ctx,
			`UPDATE sales_submissions SET status = $2 WHERE id = $1`,
			id, status)
	}
	if err != nil {
		return fmt.Errorf("update submission status: %w", err)
	}
	return nil
}

// scanSubmission reads one row in submissionColumns order.
func scanSubmission(row pgx.Row) (*entity.Submission, error) {
	var s entity.Submission
	err := row.Scan(
		&s.ID,
		&s.CustomerFirstName, &s.CustomerLastName, &s.CustomerEmail, &s.CustomerPhone,
		&s.CustomerAddress, &s.CustomerCity, &s.CustomerState, &s.CustomerZip,
		&s.EquipmentType, &s.Tonnage, &s.EquipmentNotes,
		&s.Division, &s.LeadSource, &s.SaleAmount, &s.FinancingBank,
		&s.DownPayment, &s.MonthlyPayment,
		&s.InstallationDate, &s.InstallationNotes,
		&s.SubmittedBy, &s.SubmittedByName, &s.SubmittedAt, &s.Status, &s.SyncedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

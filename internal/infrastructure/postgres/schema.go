package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap DDL, applied at startup in one transaction. Statements are
// idempotent so restarts and parallel test setups are safe. The unique index
// on sales_reps.user_id also makes the lazy first-admin bootstrap idempotent
// when two first logins race.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS sales_reps (
		id         uuid PRIMARY KEY,
		user_id    text NOT NULL,
		name       text NOT NULL,
		role       text NOT NULL DEFAULT 'rep',
		division   text NOT NULL,
		is_active  boolean NOT NULL DEFAULT true,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_sales_reps_user_id ON sales_reps (user_id)`,

	`CREATE TABLE IF NOT EXISTS sales_submissions (
		id                  uuid PRIMARY KEY,
		customer_first_name text NOT NULL,
		customer_last_name  text NOT NULL,
		customer_email      text,
		customer_phone      text NOT NULL,
		customer_address    text NOT NULL,
		customer_city       text NOT NULL,
		customer_state      text NOT NULL,
		customer_zip        text NOT NULL,
		equipment_type      text NOT NULL,
		tonnage             text,
		equipment_notes     text,
		division            text NOT NULL,
		lead_source         text NOT NULL,
		sale_amount         numeric(10,2) NOT NULL,
		financing_bank      text,
		down_payment        numeric(10,2),
		monthly_payment     numeric(10,2),
		installation_date   timestamptz,
		installation_notes  text,
		submitted_by        text NOT NULL,
		submitted_by_name   text NOT NULL,
		submitted_at        timestamptz NOT NULL DEFAULT now(),
		status              text NOT NULL DEFAULT 'pending',
		synced_at           timestamptz
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_division ON sales_submissions (division)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_submitted_by ON sales_submissions (submitted_by)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_submitted_at ON sales_submissions (submitted_at)`,

	`CREATE TABLE IF NOT EXISTS app_settings (
		id                uuid PRIMARY KEY,
		webhook_url       text,
		google_sheet_id   text,
		google_sheet_tab  text DEFAULT 'Sales',
		lindy_webhook_url text,
		lindy_api_key     text,
		retell_api_key    text,
		retell_agent_id   text,
		resend_api_key    text,
		resend_from_email text,
		resend_to_email   text,
		claude_api_key    text,
		mcp_server_url    text,
		mcp_api_key       text,
		updated_at        timestamptz NOT NULL DEFAULT now(),
		updated_by        text
	)`,
}

// EnsureSchema applies the bootstrap DDL. SQL lives in the binary so
// deployments stay self-contained; there is no separate migration step.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply ddl: %w", err)
		}
	}
	return tx.Commit(ctx)
}

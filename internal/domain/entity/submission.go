package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sync status of a submission. It starts Pending and is advanced by the sync
// orchestrator only; readers never revert it.
const (
	StatusPending = "pending"
	StatusSynced  = "synced"
	StatusError   = "error"
)

// Submission is one logged sale: customer contact, equipment sold, money and
// the sync state of the outbound fan-out.
type Submission struct {
	ID string

	// Customer
	CustomerFirstName string
	CustomerLastName  string
	CustomerEmail     string
	CustomerPhone     string
	CustomerAddress   string
	CustomerCity      string
	CustomerState     string
	CustomerZip       string

	// Equipment
	EquipmentType  string
	Tonnage        string
	EquipmentNotes string

	// Sale
	Division       string
	LeadSource     string // lead (company) | self (self-generated)
	SaleAmount     decimal.Decimal
	FinancingBank  string
	DownPayment    decimal.NullDecimal
	MonthlyPayment decimal.NullDecimal

	// Installation
	InstallationDate  *time.Time
	InstallationNotes string

	// Metadata
	SubmittedBy     string // sales_reps.user_id of the creator
	SubmittedByName string
	SubmittedAt     time.Time // server-assigned
	Status          string    // pending | synced | error
	SyncedAt        *time.Time
}

// CustomerName is the customer's full display name.
func (s *Submission) CustomerName() string {
	return s.CustomerFirstName + " " + s.CustomerLastName
}

// FullAddress joins the address fields into one line, the way the
// spreadsheet and dispatch integrations expect it.
func (s *Submission) FullAddress() string {
	return s.CustomerAddress + ", " + s.CustomerCity + ", " + s.CustomerState + " " + s.CustomerZip
}

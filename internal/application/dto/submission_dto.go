package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSubmissionRequest body for POST /api/sales. Field names match the
// intake form. InstallationDate arrives as a date-like string and is coerced
// before validation of the rest of the payload.
type CreateSubmissionRequest struct {
	CustomerFirstName string `json:"customerFirstName" validate:"required"`
	CustomerLastName  string `json:"customerLastName" validate:"required"`
	CustomerEmail     string `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone     string `json:"customerPhone" validate:"required"`
	CustomerAddress   string `json:"customerAddress" validate:"required"`
	CustomerCity      string `json:"customerCity" validate:"required"`
	CustomerState     string `json:"customerState" validate:"required"`
	CustomerZip       string `json:"customerZip" validate:"required"`

	EquipmentType  string `json:"equipmentType" validate:"required"`
	Tonnage        string `json:"tonnage"`
	EquipmentNotes string `json:"equipmentNotes"`

	Division       string              `json:"division" validate:"required"`
	LeadSource     string              `json:"leadSource" validate:"required,oneof=lead self"`
	SaleAmount     decimal.Decimal     `json:"saleAmount" validate:"required"`
	FinancingBank  string              `json:"financingBank"`
	DownPayment    decimal.NullDecimal `json:"downPayment"`
	MonthlyPayment decimal.NullDecimal `json:"monthlyPayment"`

	InstallationDate  string `json:"installationDate"` // RFC 3339 or YYYY-MM-DD
	InstallationNotes string `json:"installationNotes"`
}

// UpdateSubmissionRequest body for PATCH /api/sales/:id (admin edit).
// Nil means "leave as is". Status and syncedAt are owned by the sync
// orchestrator and cannot be edited here.
type UpdateSubmissionRequest struct {
	CustomerFirstName *string `json:"customerFirstName"`
	CustomerLastName  *string `json:"customerLastName"`
	CustomerEmail     *string `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone     *string `json:"customerPhone"`
	CustomerAddress   *string `json:"customerAddress"`
	CustomerCity      *string `json:"customerCity"`
	CustomerState     *string `json:"customerState"`
	CustomerZip       *string `json:"customerZip"`

	EquipmentType  *string `json:"equipmentType"`
	Tonnage        *string `json:"tonnage"`
	EquipmentNotes *string `json:"equipmentNotes"`

	Division       *string              `json:"division"`
	LeadSource     *string              `json:"leadSource" validate:"omitempty,oneof=lead self"`
	SaleAmount     *decimal.Decimal     `json:"saleAmount"`
	FinancingBank  *string              `json:"financingBank"`
	DownPayment    *decimal.NullDecimal `json:"downPayment"`
	MonthlyPayment *decimal.NullDecimal `json:"monthlyPayment"`

	InstallationDate  *string `json:"installationDate"`
	InstallationNotes *string `json:"installationNotes"`
}

// SubmissionResponse wire shape of a persisted submission.
type SubmissionResponse struct {
	ID string `json:"id"`

	CustomerFirstName string `json:"customerFirstName"`
	CustomerLastName  string `json:"customerLastName"`
	CustomerEmail     string `json:"customerEmail,omitempty"`
	CustomerPhone     string `json:"customerPhone"`
	CustomerAddress   string `json:"customerAddress"`
	CustomerCity      string `json:"customerCity"`
	CustomerState     string `json:"customerState"`
	CustomerZip       string `json:"customerZip"`

	EquipmentType  string `json:"equipmentType"`
	Tonnage        string `json:"tonnage,omitempty"`
	EquipmentNotes string `json:"equipmentNotes,omitempty"`

	Division       string              `json:"division"`
	LeadSource     string              `json:"leadSource"`
	SaleAmount     decimal.Decimal     `json:"saleAmount"`
	FinancingBank  string              `json:"financingBank,omitempty"`
	DownPayment    decimal.NullDecimal `json:"downPayment,omitempty"`
	MonthlyPayment decimal.NullDecimal `json:"monthlyPayment,omitempty"`

	InstallationDate  *time.Time `json:"installationDate,omitempty"`
	InstallationNotes string     `json:"installationNotes,omitempty"`

	SubmittedBy     string     `json:"submittedBy"`
	SubmittedByName string     `json:"submittedByName"`
	SubmittedAt     time.Time  `json:"submittedAt"`
	Status          string     `json:"status"`
	SyncedAt        *time.Time `json:"syncedAt,omitempty"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records and configuration shared across paysplit.
package types

// Sentinel values written when a page does not yield a name or a date.
const (
	UnknownName = "Unknown"
	UnknownDate = "Unknown_Date"
)

// Individual is a person named on at least one pay statement. Name is the
// identity: unique, case-sensitive, stored exactly as extracted.
type Individual struct {
	ID      int64  `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
	Phone   string `json:"phone" yaml:"phone"`
	Email   string `json:"email" yaml:"email"`
}

// PayRecord is one extracted pay statement. The pair (IndividualID, Date)
// is unique in the store.
type PayRecord struct {
	ID           int64 `json:"id" yaml:"id"`
	IndividualID int64 `json:"individual_id" yaml:"individual_id"`

	// Date is ISO YYYY-MM-DD, or UnknownDate when the page had no parseable date.
	Date string `json:"date" yaml:"date"`

	// Filename is the artifact name inside the output folder.
	Filename string `json:"filename" yaml:"filename"`

	// ExtractedAt is the local extraction timestamp (YYYY-MM-DD HH:MM:SS).
	ExtractedAt string `json:"extraction_date" yaml:"extraction_date"`
}

// UpsertStatus tags the result of recording one pay statement.
type UpsertStatus string

const (
	UpsertInserted  UpsertStatus = "inserted"
	UpsertDuplicate UpsertStatus = "duplicate"
	UpsertFailed    UpsertStatus = "failed"
)

// UpsertOutcome reports what happened to a single upsert. Duplicate is an
// expected outcome, not an error; Failed carries the reason.
type UpsertOutcome struct {
	Status       UpsertStatus `json:"status" yaml:"status"`
	IndividualID int64        `json:"individual_id,omitempty" yaml:"individual_id,omitempty"`
	RecordID     int64        `json:"record_id,omitempty" yaml:"record_id,omitempty"`
	Reason       string       `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Inserted reports whether a new pay statement row was created.
func (o UpsertOutcome) Inserted() bool {
	return o.Status == UpsertInserted
}

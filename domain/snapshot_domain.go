package domain

import (
	"errors"
)

// SnapshotEnvelopeVersion is the only recipe export format this backend
// accepts. Anything else is rejected before touching the database.
const SnapshotEnvelopeVersion = "1.1"

// SnapshotSourceApp is the upstream recipe editor producing the envelopes.
const SnapshotSourceApp = "recipe-studio"

var (
	MessageSuccessSnapshotImport = "recipe snapshots imported successfully"

	MessageFailedSnapshotImport = "failed to import recipe snapshots"

	ErrUnsupportedEnvelope = errors.New("unsupported export_version, expected '1.1'")
	ErrUnsupportedSource   = errors.New("unsupported source_app")
)

type (
	// SnapshotEnvelopeRequest is a v1.1 recipe export. Each fiche is an open
	// object carrying recipe_id, title, category, portions, updated_at and the
	// content lists; items that are not objects count as invalid payloads
	// instead of failing the whole import.
	SnapshotEnvelopeRequest struct {
		ExportVersion string        `json:"export_version" validate:"required"`
		SourceApp     string        `json:"source_app"`
		Fiches        []interface{} `json:"fiches" validate:"required"`
	}

	SnapshotImportResult struct {
		TotalRead       int      `json:"total_read"`
		Created         int      `json:"created"`
		SkippedExisting int      `json:"skipped_existing"`
		InvalidIDs      int      `json:"invalid_ids"`
		InvalidPayloads int      `json:"invalid_payloads"`
		Examples        []string `json:"examples"`
	}
)

// Package migrate imports the redemption table of the legacy contract,
// which recorded one row per redeemed asset without a review step.
package migrate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"RedeemVault/internal/assets"
	"RedeemVault/internal/custody"
	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/storage"
)

// LegacySeed is the first redemption id handed out by the legacy contract.
const LegacySeed uint64 = 1 << 40

// Row is one record of the legacy redemption table.
type Row struct {
	AssetID      uint64     // AssetID is the redeemed asset
	RedemptionID uint64     // RedemptionID is the legacy sequence number
	Method       string     // Method is mark, transfer or burn
	Requester    names.Name // Requester redeemed the asset
}

// rawRow mirrors the JSON emitted by `cleos get table`. uint64 columns may
// be numbers or strings; the owner column was renamed across versions.
type rawRow struct {
	AssetID      json.Number `json:"asset_id"`
	RedemptionID json.Number `json:"redemption_id"`
	Method       string      `json:"method"`
	Requester    string      `json:"requester"`
	Redeemer     string      `json:"redeemer"`
}

// tableDump is the top-level `cleos get table` document.
type tableDump struct {
	Rows []rawRow `json:"rows"`
	More bool     `json:"more"`
}

// Parse reads a legacy table dump.
func Parse(r io.Reader) ([]Row, error) {
	var dump tableDump

	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := dec.Decode(&dump); err != nil {
		return nil, fmt.Errorf("decode table dump:\n%w", err)
	}

	if dump.More {
		return nil, fmt.Errorf("table dump is truncated (more=true); re-export with a higher limit")
	}

	rows := make([]Row, 0, len(dump.Rows))
	for i, raw := range dump.Rows {
		row, err := raw.parse()
		if err != nil {
			return nil, fmt.Errorf("row %d:\n%w", i, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// parse validates one raw row.
func (r rawRow) parse() (Row, error) {
	assetID, err := strconv.ParseUint(r.AssetID.String(), 10, 64)
	if err != nil {
		return Row{}, fault.Newf(fault.ErrMalformedInput, "asset_id %q", r.AssetID)
	}

	redemptionID := uint64(0)
	if r.RedemptionID != "" {
		if redemptionID, err = strconv.ParseUint(r.RedemptionID.String(), 10, 64); err != nil {
			return Row{}, fault.Newf(fault.ErrMalformedInput, "redemption_id %q", r.RedemptionID)
		}
	}

	owner := r.Requester
	if owner == "" {
		owner = r.Redeemer
	}

	requester, err := names.Parse(owner)
	if err != nil {
		return Row{}, fault.Newf(fault.ErrMalformedInput, "requester %q: %v", owner, err)
	}

	return Row{AssetID: assetID, RedemptionID: redemptionID, Method: r.Method, Requester: requester}, nil
}

// Skip explains why a row was not imported.
type Skip struct {
	AssetID uint64 // AssetID is the skipped asset
	Reason  string // Reason is a human readable cause
}

// Report summarizes an import.
type Report struct {
	Imported []uint64 // Imported lists asset ids that became redemptions
	Skipped  []Skip   // Skipped lists rows left out
	Counter  uint64   // Counter is the redemption counter after the import
}

// Apply imports rows inside tx. Rows whose asset is still held by self become
// Redeemed records owned by the requester; the rest are reported as skipped.
// The redemption counter is raised past every imported legacy id.
func Apply(tx *storage.Tx, ledger *assets.Ledger, self names.Name, rows []Row, now time.Time) (Report, error) {
	cfg, err := custody.MustConfig(tx)
	if err != nil {
		return Report{}, err
	}

	var report Report
	next := cfg.RedemptionCounter

	for _, row := range rows {
		reason, err := importRow(tx, ledger, self, row, now)
		if err != nil {
			return Report{}, fmt.Errorf("asset %d:\n%w", row.AssetID, err)
		}

		if reason != "" {
			report.Skipped = append(report.Skipped, Skip{AssetID: row.AssetID, Reason: reason})
			continue
		}

		report.Imported = append(report.Imported, row.AssetID)

		if row.RedemptionID >= next {
			next = row.RedemptionID + 1
		}
	}

	cfg.RedemptionCounter = next
	report.Counter = next

	if err := custody.PutConfig(tx, cfg); err != nil {
		return Report{}, err
	}

	return report, nil
}

// importRow inserts one row, returning a skip reason instead when it does not apply.
func importRow(tx *storage.Tx, ledger *assets.Ledger, self names.Name, row Row, now time.Time) (string, error) {
	a, err := ledger.Asset(tx, row.AssetID)
	if errors.Is(err, fault.ErrNotFound) {
		return "asset no longer exists (method " + row.Method + ")", nil
	}
	if err != nil {
		return "", err
	}

	if a.Owner != self {
		return "asset is held by " + a.Owner.String(), nil
	}

	if _, found, err := custody.GetPending(tx, row.AssetID); err != nil {
		return "", err
	} else if found {
		return "asset is already pending", nil
	}

	if _, found, err := custody.FindRedemption(tx, row.AssetID); err != nil {
		return "", err
	} else if found {
		return "asset already has a redemption", nil
	}

	err = custody.InsertRedemption(tx, custody.Redemption{
		AssetID:    row.AssetID,
		Collection: a.Collection,
		Owner:      row.Requester,
		Status:     custody.StatusRedeemed,
		RedeemedAt: now,
	})

	return "", err
}

package custody

import (
	"encoding/binary"
	"fmt"

	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/storage"
)

// Key prefixes of the custody tables.
var (
	configKey        = []byte("c:config")
	pendingPrefix    = []byte("p:")
	redemptionPrefix = []byte("x:")
	indexPrefix      = []byte("i:")
)

// pendingKey returns p:<id>.
func pendingKey(id uint64) []byte {
	return binary.BigEndian.AppendUint64(append([]byte{}, pendingPrefix...), id)
}

// redemptionKey returns x:<collection><id>.
func redemptionKey(collection names.Name, id uint64) []byte {
	k := append(append([]byte{}, redemptionPrefix...), collection.Bytes()...)
	return binary.BigEndian.AppendUint64(k, id)
}

// indexKey returns i:<id>.
func indexKey(id uint64) []byte {
	return binary.BigEndian.AppendUint64(append([]byte{}, indexPrefix...), id)
}

// --- config ---

// GetConfig returns the singleton and whether init has run.
func GetConfig(tx *storage.Tx) (Config, bool, error) {
	raw, err := tx.Get(configKey)
	if err != nil {
		return Config{}, false, fmt.Errorf("read config:\n%w", err)
	}

	if raw == nil {
		return Config{}, false, nil
	}

	return decodeConfig(raw), true, nil
}

// MustConfig returns the singleton or NotFound when init has not run.
func MustConfig(tx *storage.Tx) (Config, error) {
	cfg, found, err := GetConfig(tx)
	if err != nil {
		return Config{}, err
	}

	if !found {
		return Config{}, fault.Newf(fault.ErrNotFound, "config not initialized")
	}

	return cfg, nil
}

// PutConfig writes the singleton.
func PutConfig(tx *storage.Tx, cfg Config) error {
	if err := tx.Set(configKey, encodeConfig(cfg)); err != nil {
		return fmt.Errorf("write config:\n%w", err)
	}

	return nil
}

// --- pending ---

// GetPending returns the pending row for id.
func GetPending(tx *storage.Tx, id uint64) (Pending, bool, error) {
	raw, err := tx.Get(pendingKey(id))
	if err != nil {
		return Pending{}, false, fmt.Errorf("read pending %d:\n%w", id, err)
	}

	if raw == nil {
		return Pending{}, false, nil
	}

	return decodePending(raw), true, nil
}

// InsertPending creates a pending row. The id must not be pending or in redemption.
func InsertPending(tx *storage.Tx, p Pending) error {
	if err := ensureFree(tx, p.AssetID); err != nil {
		return err
	}

	if err := tx.Set(pendingKey(p.AssetID), encodePending(p)); err != nil {
		return fmt.Errorf("write pending %d:\n%w", p.AssetID, err)
	}

	return nil
}

// DeletePending erases a pending row.
func DeletePending(tx *storage.Tx, id uint64) error {
	if err := tx.Delete(pendingKey(id)); err != nil {
		return fmt.Errorf("delete pending %d:\n%w", id, err)
	}

	return nil
}

// ListPending returns every pending row in asset id order.
func ListPending(tx *storage.Tx) ([]Pending, error) {
	var out []Pending

	err := tx.IteratePrefix(pendingPrefix, func(_, v []byte) error {
		out = append(out, decodePending(v))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan pending:\n%w", err)
	}

	return out, nil
}

// --- redemptions ---

// FindRedemption returns the redemption for id under whichever collection holds it.
func FindRedemption(tx *storage.Tx, id uint64) (Redemption, bool, error) {
	raw, err := tx.Get(indexKey(id))
	if err != nil {
		return Redemption{}, false, fmt.Errorf("read redemption index %d:\n%w", id, err)
	}

	if raw == nil {
		return Redemption{}, false, nil
	}

	return GetRedemption(tx, names.FromBytes(raw), id)
}

// GetRedemption returns the redemption for id scoped to collection.
func GetRedemption(tx *storage.Tx, collection names.Name, id uint64) (Redemption, bool, error) {
	raw, err := tx.Get(redemptionKey(collection, id))
	if err != nil {
		return Redemption{}, false, fmt.Errorf("read redemption %d:\n%w", id, err)
	}

	if raw == nil {
		return Redemption{}, false, nil
	}

	return decodeRedemption(raw), true, nil
}

// InsertRedemption creates a record. The id must not be pending or in redemption.
func InsertRedemption(tx *storage.Tx, r Redemption) error {
	if err := ensureFree(tx, r.AssetID); err != nil {
		return err
	}

	if err := tx.Set(indexKey(r.AssetID), r.Collection.Bytes()); err != nil {
		return fmt.Errorf("write redemption index %d:\n%w", r.AssetID, err)
	}

	return writeRedemption(tx, r)
}

// UpdateRedemption rewrites an existing record in place.
func UpdateRedemption(tx *storage.Tx, r Redemption) error {
	_, found, err := GetRedemption(tx, r.Collection, r.AssetID)
	if err != nil {
		return err
	}

	if !found {
		return fault.Newf(fault.ErrNotFound, "redemption %d not found in %s", r.AssetID, r.Collection)
	}

	return writeRedemption(tx, r)
}

// DeleteRedemption erases the record and its index entry.
func DeleteRedemption(tx *storage.Tx, collection names.Name, id uint64) error {
	if err := tx.Delete(redemptionKey(collection, id)); err != nil {
		return fmt.Errorf("delete redemption %d:\n%w", id, err)
	}

	if err := tx.Delete(indexKey(id)); err != nil {
		return fmt.Errorf("delete redemption index %d:\n%w", id, err)
	}

	return nil
}

// ListRedemptions returns the records scoped to collection in asset id order.
func ListRedemptions(tx *storage.Tx, collection names.Name) ([]Redemption, error) {
	scope := append(append([]byte{}, redemptionPrefix...), collection.Bytes()...)

	var out []Redemption
	err := tx.IteratePrefix(scope, func(_, v []byte) error {
		out = append(out, decodeRedemption(v))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan redemptions of %s:\n%w", collection, err)
	}

	return out, nil
}

// writeRedemption stores the record body.
func writeRedemption(tx *storage.Tx, r Redemption) error {
	if err := tx.Set(redemptionKey(r.Collection, r.AssetID), encodeRedemption(r)); err != nil {
		return fmt.Errorf("write redemption %d:\n%w", r.AssetID, err)
	}

	return nil
}

// ensureFree rejects an id already present in either table.
func ensureFree(tx *storage.Tx, id uint64) error {
	pending, err := tx.Has(pendingKey(id))
	if err != nil {
		return fmt.Errorf("read pending %d:\n%w", id, err)
	}

	if pending {
		return fault.Newf(fault.ErrStateConflict, "asset %d is already pending", id)
	}

	redeemed, err := tx.Has(indexKey(id))
	if err != nil {
		return fmt.Errorf("read redemption index %d:\n%w", id, err)
	}

	if redeemed {
		return fault.Newf(fault.ErrStateConflict, "asset %d already has a redemption in flight", id)
	}

	return nil
}

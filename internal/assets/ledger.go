// Package assets is the local mirror of the asset system: collections,
// schemas, templates and per-owner asset scopes, plus the transfer, burn,
// mint and data-update calls that mutate them.
package assets

import (
	"encoding/binary"
	"fmt"

	"RedeemVault/internal/atomicdata"
	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/storage"
)

// FirstAssetID is the id assigned to the first minted asset.
const FirstAssetID uint64 = 1 << 40

// Key prefixes of the mirror tables.
var (
	assetPrefix      = []byte("aa:a:")
	ownerPrefix      = []byte("aa:o:")
	templatePrefix   = []byte("aa:t:")
	schemaPrefix     = []byte("aa:s:")
	collectionPrefix = []byte("aa:c:")
	nextIDKey        = []byte("aa:m:next")
)

// Ledger reads and mutates the mirror through a unit of work.
// It holds no state of its own; every call goes through the given Tx.
type Ledger struct{}

// New creates a Ledger.
func New() *Ledger {
	return &Ledger{}
}

// --- keys ---

// makeKey joins a prefix and big-endian parts.
func makeKey(prefix []byte, parts ...uint64) []byte {
	key := make([]byte, len(prefix), len(prefix)+8*len(parts))
	copy(key, prefix)

	for _, p := range parts {
		key = binary.BigEndian.AppendUint64(key, p)
	}

	return key
}

// templateKey returns aa:t:<collection><id>.
func templateKey(collection names.Name, id int32) []byte {
	return makeKey(templatePrefix, uint64(collection), uint64(uint32(id)))
}

// --- reads ---

// Collection returns a collection or NotFound.
func (l *Ledger) Collection(tx *storage.Tx, name names.Name) (Collection, error) {
	raw, err := tx.Get(makeKey(collectionPrefix, uint64(name)))
	if err != nil {
		return Collection{}, fmt.Errorf("read collection:\n%w", err)
	}

	if raw == nil {
		return Collection{}, fault.Newf(fault.ErrNotFound, "collection %s not found", name)
	}

	return decodeCollection(raw), nil
}

// Schema returns a schema or NotFound.
func (l *Ledger) Schema(tx *storage.Tx, collection, name names.Name) (Schema, error) {
	raw, err := tx.Get(makeKey(schemaPrefix, uint64(collection), uint64(name)))
	if err != nil {
		return Schema{}, fmt.Errorf("read schema:\n%w", err)
	}

	if raw == nil {
		return Schema{}, fault.Newf(fault.ErrNotFound, "schema %s not found in %s", name, collection)
	}

	return decodeSchema(raw), nil
}

// Template returns a template or NotFound.
func (l *Ledger) Template(tx *storage.Tx, collection names.Name, id int32) (Template, error) {
	if id < 0 {
		return Template{}, fault.Newf(fault.ErrNotFound, "template %d not found in %s", id, collection)
	}

	raw, err := tx.Get(templateKey(collection, id))
	if err != nil {
		return Template{}, fmt.Errorf("read template:\n%w", err)
	}

	if raw == nil {
		return Template{}, fault.Newf(fault.ErrNotFound, "template %d not found in %s", id, collection)
	}

	return decodeTemplate(raw), nil
}

// Asset returns an asset or NotFound.
func (l *Ledger) Asset(tx *storage.Tx, id uint64) (Asset, error) {
	raw, err := tx.Get(makeKey(assetPrefix, id))
	if err != nil {
		return Asset{}, fmt.Errorf("read asset:\n%w", err)
	}

	if raw == nil {
		return Asset{}, fault.Newf(fault.ErrNotFound, "asset %d not found", id)
	}

	return decodeAsset(raw), nil
}

// OwnedAsset returns an asset that must be held by owner.
func (l *Ledger) OwnedAsset(tx *storage.Tx, owner names.Name, id uint64) (Asset, error) {
	a, err := l.Asset(tx, id)
	if err != nil {
		return Asset{}, err
	}

	if a.Owner != owner {
		return Asset{}, fault.Newf(fault.ErrNotFound, "asset %d not found in scope of %s", id, owner)
	}

	return a, nil
}

// HasAssets reports whether owner's asset scope is non-empty.
func (l *Ledger) HasAssets(tx *storage.Tx, owner names.Name) (bool, error) {
	found, err := tx.HasPrefix(makeKey(ownerPrefix, uint64(owner)))
	if err != nil {
		return false, fmt.Errorf("scan scope of %s:\n%w", owner, err)
	}

	return found, nil
}

// AssetsOf returns the ids held by owner in ascending order.
func (l *Ledger) AssetsOf(tx *storage.Tx, owner names.Name) ([]uint64, error) {
	scope := makeKey(ownerPrefix, uint64(owner))

	var ids []uint64
	err := tx.IteratePrefix(scope, func(k, _ []byte) error {
		ids = append(ids, binary.BigEndian.Uint64(k[len(scope):]))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan scope of %s:\n%w", owner, err)
	}

	return ids, nil
}

// --- seeding ---

// PutCollection creates or replaces a collection.
func (l *Ledger) PutCollection(tx *storage.Tx, c Collection) error {
	return tx.Set(makeKey(collectionPrefix, uint64(c.Name)), encodeCollection(c))
}

// PutSchema creates or replaces a schema after validating its types.
func (l *Ledger) PutSchema(tx *storage.Tx, s Schema) error {
	for _, f := range s.Format {
		if _, err := atomicdata.ParseType(f.Type); err != nil {
			return fmt.Errorf("schema %s field %s:\n%w", s.Name, f.Name, err)
		}
	}

	return tx.Set(makeKey(schemaPrefix, uint64(s.Collection), uint64(s.Name)), encodeSchema(s))
}

// PutTemplate creates or replaces a template.
func (l *Ledger) PutTemplate(tx *storage.Tx, t Template) error {
	if t.ID < 0 {
		return fault.Newf(fault.ErrMalformedInput, "template id %d is negative", t.ID)
	}

	return tx.Set(templateKey(t.Collection, t.ID), encodeTemplate(t))
}

// PutAsset creates or replaces an asset, moving its scope entry if the owner changed.
func (l *Ledger) PutAsset(tx *storage.Tx, a Asset) error {
	prev, err := tx.Get(makeKey(assetPrefix, a.ID))
	if err != nil {
		return fmt.Errorf("read asset:\n%w", err)
	}

	if prev != nil {
		old := decodeAsset(prev)
		if err := tx.Delete(makeKey(ownerPrefix, uint64(old.Owner), old.ID)); err != nil {
			return fmt.Errorf("delete scope entry:\n%w", err)
		}
	}

	if err := tx.Set(makeKey(assetPrefix, a.ID), encodeAsset(a)); err != nil {
		return fmt.Errorf("write asset:\n%w", err)
	}

	if err := tx.Set(makeKey(ownerPrefix, uint64(a.Owner), a.ID), nil); err != nil {
		return fmt.Errorf("write scope entry:\n%w", err)
	}

	return l.bumpNextID(tx, a.ID+1)
}

// --- mutations ---

// Transfer moves ids from one scope to another.
func (l *Ledger) Transfer(tx *storage.Tx, from, to names.Name, ids []uint64) error {
	if from == to {
		return fault.Newf(fault.ErrMalformedInput, "can't transfer assets to yourself")
	}

	if len(ids) == 0 {
		return fault.Newf(fault.ErrMalformedInput, "asset_ids needs to contain at least one id")
	}

	for _, id := range ids {
		a, err := l.OwnedAsset(tx, from, id)
		if err != nil {
			return err
		}

		if a.HasTemplate() {
			t, err := l.Template(tx, a.Collection, a.TemplateID)
			if err != nil {
				return err
			}
			if !t.Transferable {
				return fault.Newf(fault.ErrStateConflict, "asset %d is not transferable", id)
			}
		}

		a.Owner = to
		if err := l.PutAsset(tx, a); err != nil {
			return err
		}
	}

	return nil
}

// Burn destroys an asset held by owner.
func (l *Ledger) Burn(tx *storage.Tx, owner names.Name, id uint64) error {
	a, err := l.OwnedAsset(tx, owner, id)
	if err != nil {
		return err
	}

	if a.HasTemplate() {
		t, err := l.Template(tx, a.Collection, a.TemplateID)
		if err != nil {
			return err
		}
		if !t.Burnable {
			return fault.Newf(fault.ErrStateConflict, "asset %d is not burnable", id)
		}
	}

	if err := tx.Delete(makeKey(assetPrefix, id)); err != nil {
		return fmt.Errorf("delete asset:\n%w", err)
	}

	if err := tx.Delete(makeKey(ownerPrefix, uint64(owner), id)); err != nil {
		return fmt.Errorf("delete scope entry:\n%w", err)
	}

	return nil
}

// MintRequest describes one mint call.
type MintRequest struct {
	Minter     names.Name // Minter must be authorized in the collection
	Collection names.Name // Collection to mint into
	Schema     names.Name // Schema of the new asset
	TemplateID int32      // TemplateID is NoTemplate or an existing template
	NewOwner   names.Name // NewOwner receives the asset
	Immutable  []byte     // Immutable is serialized attribute data
	Mutable    []byte     // Mutable is serialized attribute data
}

// Mint issues a new asset and returns its id.
func (l *Ledger) Mint(tx *storage.Tx, req MintRequest) (uint64, error) {
	c, err := l.Collection(tx, req.Collection)
	if err != nil {
		return 0, err
	}

	if !c.IsAuthorized(req.Minter) {
		return 0, fault.Newf(fault.ErrAuthorization, "%s is not authorized within collection %s", req.Minter, req.Collection)
	}

	s, err := l.Schema(tx, req.Collection, req.Schema)
	if err != nil {
		return 0, err
	}

	for _, data := range [][]byte{req.Immutable, req.Mutable} {
		if _, err := atomicdata.Deserialize(data, s.Format); err != nil {
			return 0, fmt.Errorf("mint data:\n%w", err)
		}
	}

	if req.TemplateID != NoTemplate {
		t, err := l.Template(tx, req.Collection, req.TemplateID)
		if err != nil {
			return 0, err
		}

		if t.Schema != req.Schema {
			return 0, fault.Newf(fault.ErrMalformedInput, "template %d belongs to schema %s", t.ID, t.Schema)
		}

		if !t.HasSupply() {
			return 0, fault.Newf(fault.ErrSupplyExceeded, "template %d has reached its max supply of %d", t.ID, t.MaxSupply)
		}

		t.IssuedSupply++
		if err := l.PutTemplate(tx, t); err != nil {
			return 0, err
		}
	}

	id, err := l.nextID(tx)
	if err != nil {
		return 0, err
	}

	a := Asset{
		ID:            id,
		Owner:         req.NewOwner,
		Collection:    req.Collection,
		Schema:        req.Schema,
		TemplateID:    req.TemplateID,
		ImmutableData: req.Immutable,
		MutableData:   req.Mutable,
	}

	if err := l.PutAsset(tx, a); err != nil {
		return 0, err
	}

	return id, nil
}

// SetAssetData replaces the mutable data of an asset held by owner.
// The editor must be authorized in the asset's collection.
func (l *Ledger) SetAssetData(tx *storage.Tx, editor, owner names.Name, id uint64, mutable []byte) error {
	a, err := l.OwnedAsset(tx, owner, id)
	if err != nil {
		return err
	}

	c, err := l.Collection(tx, a.Collection)
	if err != nil {
		return err
	}

	if !c.IsAuthorized(editor) {
		return fault.Newf(fault.ErrAuthorization, "%s is not authorized within collection %s", editor, a.Collection)
	}

	s, err := l.Schema(tx, a.Collection, a.Schema)
	if err != nil {
		return err
	}

	if _, err := atomicdata.Deserialize(mutable, s.Format); err != nil {
		return fmt.Errorf("mutable data:\n%w", err)
	}

	a.MutableData = mutable

	return l.PutAsset(tx, a)
}

// --- id counter ---

// nextID allocates the next asset id.
func (l *Ledger) nextID(tx *storage.Tx) (uint64, error) {
	raw, err := tx.Get(nextIDKey)
	if err != nil {
		return 0, fmt.Errorf("read next asset id:\n%w", err)
	}

	id := FirstAssetID
	if len(raw) == 8 {
		id = binary.BigEndian.Uint64(raw)
	}

	return id, nil
}

// bumpNextID raises the id counter to at least min.
func (l *Ledger) bumpNextID(tx *storage.Tx, min uint64) error {
	cur, err := l.nextID(tx)
	if err != nil {
		return err
	}

	if min <= cur {
		return nil
	}

	return tx.Set(nextIDKey, binary.BigEndian.AppendUint64(nil, min))
}

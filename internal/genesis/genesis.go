// Package genesis loads the YAML file that bootstraps a vault: the contract
// account, the keys allowed to sign actions, and the asset-system state the
// contract starts from.
package genesis

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"RedeemVault/internal/assets"
	"RedeemVault/internal/atomicdata"
	"RedeemVault/internal/names"
	"RedeemVault/internal/storage"
)

// File is the genesis document.
type File struct {
	Contract    names.Name   `yaml:"contract"`    // Contract is the custody account
	Accounts    []Account    `yaml:"accounts"`    // Accounts lists signing keys
	Collections []Collection `yaml:"collections"` // Collections seed the asset system
}

// Account binds an account name to an ed25519 public key.
type Account struct {
	Name   names.Name `yaml:"name"`
	Pubkey string     `yaml:"pubkey"` // Pubkey is hex encoded
}

// Collection declares one collection with its schemas, templates and assets.
type Collection struct {
	Name       names.Name   `yaml:"name"`
	Author     names.Name   `yaml:"author"`
	Authorized []names.Name `yaml:"authorized"`
	Notify     []names.Name `yaml:"notify"`
	Schemas    []Schema     `yaml:"schemas"`
	Templates  []Template   `yaml:"templates"`
	Assets     []Asset      `yaml:"assets"`
}

// Schema declares an attribute format.
type Schema struct {
	Name   names.Name          `yaml:"name"`
	Format []atomicdata.Format `yaml:"format"`
}

// Template declares a template. MaxSupply 0 means unlimited.
type Template struct {
	ID           int32          `yaml:"id"`
	Schema       names.Name     `yaml:"schema"`
	Transferable *bool          `yaml:"transferable"` // Transferable defaults to true
	Burnable     *bool          `yaml:"burnable"`     // Burnable defaults to true
	MaxSupply    uint32         `yaml:"max_supply"`
	Issued       uint32         `yaml:"issued"`
	Immutable    map[string]any `yaml:"immutable"`
}

// Asset declares an asset. Template omitted means no template.
type Asset struct {
	ID        uint64         `yaml:"id"`
	Owner     names.Name     `yaml:"owner"`
	Schema    names.Name     `yaml:"schema"`
	Template  *int32         `yaml:"template"`
	Immutable map[string]any `yaml:"immutable"`
	Mutable   map[string]any `yaml:"mutable"`
}

// Load reads and validates a genesis file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read genesis:\n%w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a genesis document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode genesis:\n%w", err)
	}

	if f.Contract == names.Empty {
		return nil, fmt.Errorf("genesis: contract account is required")
	}

	if _, err := f.Keys(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Keys returns the registered public key of each account.
func (f *File) Keys() (map[names.Name]ed25519.PublicKey, error) {
	keys := make(map[names.Name]ed25519.PublicKey, len(f.Accounts))

	for _, a := range f.Accounts {
		raw, err := hex.DecodeString(a.Pubkey)
		if err != nil || len(raw) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("genesis: account %s has an invalid pubkey", a.Name)
		}

		if _, dup := keys[a.Name]; dup {
			return nil, fmt.Errorf("genesis: account %s listed twice", a.Name)
		}

		keys[a.Name] = ed25519.PublicKey(raw)
	}

	return keys, nil
}

// Apply writes the declared asset-system state into tx.
func (f *File) Apply(tx *storage.Tx, l *assets.Ledger) error {
	for _, c := range f.Collections {
		if err := applyCollection(tx, l, c); err != nil {
			return fmt.Errorf("collection %s:\n%w", c.Name, err)
		}
	}

	return nil
}

// applyCollection writes one collection and everything it declares.
func applyCollection(tx *storage.Tx, l *assets.Ledger, c Collection) error {
	err := l.PutCollection(tx, assets.Collection{
		Name:               c.Name,
		Author:             c.Author,
		AuthorizedAccounts: c.Authorized,
		NotifyAccounts:     c.Notify,
	})
	if err != nil {
		return err
	}

	formats := make(map[names.Name][]atomicdata.Format, len(c.Schemas))

	for _, s := range c.Schemas {
		if err := l.PutSchema(tx, assets.Schema{Collection: c.Name, Name: s.Name, Format: s.Format}); err != nil {
			return fmt.Errorf("schema %s:\n%w", s.Name, err)
		}
		formats[s.Name] = s.Format
	}

	for _, t := range c.Templates {
		format, ok := formats[t.Schema]
		if !ok {
			return fmt.Errorf("template %d: unknown schema %s", t.ID, t.Schema)
		}

		immutable, err := encode(t.Immutable, format)
		if err != nil {
			return fmt.Errorf("template %d:\n%w", t.ID, err)
		}

		err = l.PutTemplate(tx, assets.Template{
			ID:            t.ID,
			Collection:    c.Name,
			Schema:        t.Schema,
			Transferable:  orTrue(t.Transferable),
			Burnable:      orTrue(t.Burnable),
			MaxSupply:     t.MaxSupply,
			IssuedSupply:  t.Issued,
			ImmutableData: immutable,
		})
		if err != nil {
			return fmt.Errorf("template %d:\n%w", t.ID, err)
		}
	}

	for _, a := range c.Assets {
		if err := applyAsset(tx, l, c.Name, formats, a); err != nil {
			return fmt.Errorf("asset %d:\n%w", a.ID, err)
		}
	}

	return nil
}

// applyAsset writes one asset.
func applyAsset(tx *storage.Tx, l *assets.Ledger, collection names.Name, formats map[names.Name][]atomicdata.Format, a Asset) error {
	format, ok := formats[a.Schema]
	if !ok {
		return fmt.Errorf("unknown schema %s", a.Schema)
	}

	templateID := assets.NoTemplate
	if a.Template != nil {
		templateID = *a.Template

		if _, err := l.Template(tx, collection, templateID); err != nil {
			return err
		}
	}

	immutable, err := encode(a.Immutable, format)
	if err != nil {
		return err
	}

	mutable, err := encode(a.Mutable, format)
	if err != nil {
		return err
	}

	return l.PutAsset(tx, assets.Asset{
		ID:            a.ID,
		Owner:         a.Owner,
		Collection:    collection,
		Schema:        a.Schema,
		TemplateID:    templateID,
		ImmutableData: immutable,
		MutableData:   mutable,
	})
}

// encode coerces a loose attribute map and serializes it.
func encode(raw map[string]any, format []atomicdata.Format) ([]byte, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	m, err := atomicdata.CoerceMap(raw, format)
	if err != nil {
		return nil, err
	}

	return atomicdata.Serialize(m, format)
}

// orTrue dereferences b, defaulting to true.
func orTrue(b *bool) bool {
	return b == nil || *b
}

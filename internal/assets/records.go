package assets

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"RedeemVault/internal/atomicdata"
	"RedeemVault/internal/names"
	"RedeemVault/internal/types"
)

// NoTemplate is the template id of an asset minted without a template.
const NoTemplate int32 = -1

// Collection is a named group of assets sharing authorization.
type Collection struct {
	Name               names.Name   `json:"name"`                // Name is the collection name
	Author             names.Name   `json:"author"`              // Author created the collection
	AuthorizedAccounts []names.Name `json:"authorized_accounts"` // AuthorizedAccounts may mint and edit
	NotifyAccounts     []names.Name `json:"notify_accounts"`     // NotifyAccounts receive collection notifications
}

// IsAuthorized reports whether account is in the authorized set.
func (c Collection) IsAuthorized(account names.Name) bool {
	return names.Contains(c.AuthorizedAccounts, account)
}

// Schema is the attribute format shared by a collection's assets.
type Schema struct {
	Collection names.Name          `json:"collection"` // Collection owning the schema
	Name       names.Name          `json:"name"`       // Name is the schema name
	Format     []atomicdata.Format `json:"format"`     // Format lists the typed fields
}

// Template is a reusable immutable attribute set with supply counters.
type Template struct {
	ID            int32      `json:"template_id"`    // ID is unique within the collection
	Collection    names.Name `json:"collection"`     // Collection owning the template
	Schema        names.Name `json:"schema"`         // Schema of the immutable data
	Transferable  bool       `json:"transferable"`   // Transferable gates transfers of its assets
	Burnable      bool       `json:"burnable"`       // Burnable gates burns of its assets
	MaxSupply     uint32     `json:"max_supply"`     // MaxSupply of zero means unlimited
	IssuedSupply  uint32     `json:"issued_supply"`  // IssuedSupply counts minted assets
	ImmutableData []byte     `json:"immutable_data"` // ImmutableData is serialized attributes
}

// HasSupply reports whether one more asset may be issued.
func (t Template) HasSupply() bool {
	return t.MaxSupply == 0 || t.IssuedSupply < t.MaxSupply
}

// Asset is one collectible held in an owner scope.
type Asset struct {
	ID            uint64     `json:"asset_id"`       // ID is globally unique
	Owner         names.Name `json:"owner"`          // Owner holds the asset
	Collection    names.Name `json:"collection"`     // Collection of the asset
	Schema        names.Name `json:"schema"`         // Schema of its attribute data
	TemplateID    int32      `json:"template_id"`    // TemplateID is negative when absent
	ImmutableData []byte     `json:"immutable_data"` // ImmutableData is serialized attributes
	MutableData   []byte     `json:"mutable_data"`   // MutableData is serialized attributes
}

// HasTemplate reports whether the asset references a template.
func (a Asset) HasTemplate() bool {
	return a.TemplateID >= 0
}

// encodeNames builds a uint64 vector of names.
func encodeNames(builder *flatbuffers.Builder, list []names.Name, start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	start(builder, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		builder.PrependUint64(uint64(list[i]))
	}

	return builder.EndVector(len(list))
}

// encodeCollection serializes a Collection.
func encodeCollection(c Collection) []byte {
	builder := flatbuffers.NewBuilder(128)

	authVec := encodeNames(builder, c.AuthorizedAccounts, types.CollectionStartAuthorizedAccountsVector)
	notifyVec := encodeNames(builder, c.NotifyAccounts, types.CollectionStartNotifyAccountsVector)

	types.CollectionStart(builder)
	types.CollectionAddName(builder, uint64(c.Name))
	types.CollectionAddAuthor(builder, uint64(c.Author))
	types.CollectionAddAuthorizedAccounts(builder, authVec)
	types.CollectionAddNotifyAccounts(builder, notifyVec)
	builder.Finish(types.CollectionEnd(builder))

	return builder.FinishedBytes()
}

// decodeCollection parses a Collection.
func decodeCollection(data []byte) Collection {
	fb := types.GetRootAsCollection(data, 0)

	c := Collection{
		Name:               names.Name(fb.Name()),
		Author:             names.Name(fb.Author()),
		AuthorizedAccounts: make([]names.Name, fb.AuthorizedAccountsLength()),
		NotifyAccounts:     make([]names.Name, fb.NotifyAccountsLength()),
	}

	for i := range c.AuthorizedAccounts {
		c.AuthorizedAccounts[i] = names.Name(fb.AuthorizedAccounts(i))
	}

	for i := range c.NotifyAccounts {
		c.NotifyAccounts[i] = names.Name(fb.NotifyAccounts(i))
	}

	return c
}

// encodeSchema serializes a Schema.
func encodeSchema(s Schema) []byte {
	builder := flatbuffers.NewBuilder(256)

	fields := make([]flatbuffers.UOffsetT, len(s.Format))
	for i, f := range s.Format {
		nameOff := builder.CreateString(f.Name)
		typeOff := builder.CreateString(f.Type)

		types.FieldStart(builder)
		types.FieldAddName(builder, nameOff)
		types.FieldAddType(builder, typeOff)
		fields[i] = types.FieldEnd(builder)
	}

	types.SchemaStartFormatVector(builder, len(fields))
	for i := len(fields) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(fields[i])
	}
	formatVec := builder.EndVector(len(fields))

	types.SchemaStart(builder)
	types.SchemaAddCollection(builder, uint64(s.Collection))
	types.SchemaAddName(builder, uint64(s.Name))
	types.SchemaAddFormat(builder, formatVec)
	builder.Finish(types.SchemaEnd(builder))

	return builder.FinishedBytes()
}

// decodeSchema parses a Schema.
func decodeSchema(data []byte) Schema {
	fb := types.GetRootAsSchema(data, 0)

	s := Schema{
		Collection: names.Name(fb.Collection()),
		Name:       names.Name(fb.Name()),
		Format:     make([]atomicdata.Format, fb.FormatLength()),
	}

	var field types.Field
	for i := range s.Format {
		if fb.Format(&field, i) {
			s.Format[i] = atomicdata.Format{Name: string(field.Name()), Type: string(field.Type())}
		}
	}

	return s
}

// encodeTemplate serializes a Template.
func encodeTemplate(t Template) []byte {
	builder := flatbuffers.NewBuilder(128 + len(t.ImmutableData))

	dataVec := builder.CreateByteVector(t.ImmutableData)

	types.TemplateStart(builder)
	types.TemplateAddId(builder, t.ID)
	types.TemplateAddCollection(builder, uint64(t.Collection))
	types.TemplateAddSchema(builder, uint64(t.Schema))
	types.TemplateAddTransferable(builder, t.Transferable)
	types.TemplateAddBurnable(builder, t.Burnable)
	types.TemplateAddMaxSupply(builder, t.MaxSupply)
	types.TemplateAddIssuedSupply(builder, t.IssuedSupply)
	types.TemplateAddImmutableData(builder, dataVec)
	builder.Finish(types.TemplateEnd(builder))

	return builder.FinishedBytes()
}

// decodeTemplate parses a Template.
func decodeTemplate(data []byte) Template {
	fb := types.GetRootAsTemplate(data, 0)

	return Template{
		ID:            fb.Id(),
		Collection:    names.Name(fb.Collection()),
		Schema:        names.Name(fb.Schema()),
		Transferable:  fb.Transferable(),
		Burnable:      fb.Burnable(),
		MaxSupply:     fb.MaxSupply(),
		IssuedSupply:  fb.IssuedSupply(),
		ImmutableData: cloneBytes(fb.ImmutableDataBytes()),
	}
}

// encodeAsset serializes an Asset.
func encodeAsset(a Asset) []byte {
	builder := flatbuffers.NewBuilder(128 + len(a.ImmutableData) + len(a.MutableData))

	immVec := builder.CreateByteVector(a.ImmutableData)
	mutVec := builder.CreateByteVector(a.MutableData)

	types.AssetStart(builder)
	types.AssetAddId(builder, a.ID)
	types.AssetAddOwner(builder, uint64(a.Owner))
	types.AssetAddCollection(builder, uint64(a.Collection))
	types.AssetAddSchema(builder, uint64(a.Schema))
	types.AssetAddTemplateId(builder, a.TemplateID)
	types.AssetAddImmutableData(builder, immVec)
	types.AssetAddMutableData(builder, mutVec)
	builder.Finish(types.AssetEnd(builder))

	return builder.FinishedBytes()
}

// decodeAsset parses an Asset.
func decodeAsset(data []byte) Asset {
	fb := types.GetRootAsAsset(data, 0)

	return Asset{
		ID:            fb.Id(),
		Owner:         names.Name(fb.Owner()),
		Collection:    names.Name(fb.Collection()),
		Schema:        names.Name(fb.Schema()),
		TemplateID:    fb.TemplateId(),
		ImmutableData: cloneBytes(fb.ImmutableDataBytes()),
		MutableData:   cloneBytes(fb.MutableDataBytes()),
	}
}

// cloneBytes copies a slice out of a FlatBuffers buffer; empty stays nil.
func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}

	out := make([]byte, len(b))
	copy(out, b)

	return out
}

package engine

import (
	"math"

	"RedeemVault/internal/assets"
	"RedeemVault/internal/atomicdata"
	"RedeemVault/internal/fault"
)

// Policy is the disposition selected by an asset's redemption_type.
type Policy int64

// Dispositions.
const (
	PolicyBurn    Policy = 0 // PolicyBurn destroys the asset
	PolicyReissue Policy = 1 // PolicyReissue burns and mints a replacement
	PolicyMark    Policy = 2 // PolicyMark sets redemption_status and keeps custody
)

// Attribute names read by the resolver.
const (
	fieldType     = "redemption_type"
	fieldTemplate = "redemption_template"
	fieldStatus   = "redemption_status"
)

// statusRedeemed is written to redemption_status by PolicyMark.
const statusRedeemed = "redeemed"

// known reports whether p is a dispatchable disposition.
func (p Policy) known() bool {
	return p == PolicyBurn || p == PolicyReissue || p == PolicyMark
}

// resolution is the decoded attribute state of one asset.
type resolution struct {
	asset     assets.Asset
	format    []atomicdata.Format // format is the asset schema's format
	template  atomicdata.Map      // template is the template immutable map, nil without a template
	immutable atomicdata.Map      // immutable is the asset immutable map
	mutable   atomicdata.Map      // mutable is the asset mutable map
	policy    Policy              // policy is the resolved selector
}

// resolve decodes an asset's attributes and its redemption policy.
// The template immutable map is consulted before the asset's own.
func (u *unit) resolve(id uint64) (*resolution, error) {
	a, err := u.assets.Asset(u.tx, id)
	if err != nil {
		return nil, err
	}

	schema, err := u.assets.Schema(u.tx, a.Collection, a.Schema)
	if err != nil {
		return nil, err
	}

	r := &resolution{asset: a, format: schema.Format}

	if a.HasTemplate() {
		t, err := u.assets.Template(u.tx, a.Collection, a.TemplateID)
		if err != nil {
			return nil, err
		}

		if r.template, err = atomicdata.Deserialize(t.ImmutableData, schema.Format); err != nil {
			return nil, err
		}
	}

	if r.immutable, err = atomicdata.Deserialize(a.ImmutableData, schema.Format); err != nil {
		return nil, err
	}

	if r.mutable, err = atomicdata.Deserialize(a.MutableData, schema.Format); err != nil {
		return nil, err
	}

	policy, found, err := r.selector(fieldType)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, fault.Newf(fault.ErrMalformedInput, "Redemption Type not found in Asset Immutable Data %d", id)
	}

	r.policy = Policy(policy)

	return r, nil
}

// requireStatus checks that the asset's mutable map carries redemption_status.
func (r *resolution) requireStatus() error {
	if !r.mutable.Has(fieldStatus) {
		return fault.Newf(fault.ErrMalformedInput, "Redemption Status not found in Asset Mutable Data for Asset %d", r.asset.ID)
	}

	return nil
}

// selector reads field from the template map first, then from the asset's immutable map.
func (r *resolution) selector(field string) (int64, bool, error) {
	if r.template != nil {
		n, found, err := atomicdata.Selector(r.template, r.format, field)
		if err != nil || found {
			return n, found, err
		}
	}

	return atomicdata.Selector(r.immutable, r.format, field)
}

// replacementTemplate resolves redemption_template with the same precedence.
func (r *resolution) replacementTemplate() (int32, error) {
	n, found, err := r.selector(fieldTemplate)
	if err != nil {
		return 0, err
	}

	if !found {
		return 0, fault.Newf(fault.ErrMalformedInput, "Redemption Template not found in Asset Immutable Data %d", r.asset.ID)
	}

	if n < 0 || n > math.MaxInt32 {
		return 0, fault.Newf(fault.ErrMalformedInput, "%s %d is not a template id", fieldTemplate, n)
	}

	return int32(n), nil
}

// Package action defines the signed envelope carrying one operation call
// and the argument layouts of every operation.
package action

import (
	"crypto/ed25519"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/zeebo/blake3"

	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/types"
)

const (
	// hashSize is the size of an envelope hash.
	hashSize = 32

	// maxNameSize bounds the action name.
	maxNameSize = 32
)

// Action is an unsigned operation call.
type Action struct {
	Name   string     // Name selects the operation
	Signer names.Name // Signer is the authorizing account
	Args   []byte     // Args are the Borsh-encoded arguments
	Nonce  uint64     // Nonce makes otherwise identical calls distinct
}

// Signed is a verified envelope.
type Signed struct {
	Action
	Pubkey    ed25519.PublicKey // Pubkey verified the signature
	Signature []byte            // Signature is ed25519 over Hash
	Hash      [32]byte          // Hash is blake3 of the unsigned envelope
}

// Sign builds a signed envelope for a.
func Sign(priv ed25519.PrivateKey, a Action) []byte {
	pub := priv.Public().(ed25519.PublicKey)

	hash := blake3.Sum256(unsignedBytes(a, pub))
	sig := ed25519.Sign(priv, hash[:])

	builder := flatbuffers.NewBuilder(256)

	hashVec := builder.CreateByteVector(hash[:])
	sigVec := builder.CreateByteVector(sig)
	pubVec := builder.CreateByteVector(pub)
	argsVec := builder.CreateByteVector(a.Args)
	nameOff := builder.CreateString(a.Name)

	types.ActionStart(builder)
	types.ActionAddName(builder, nameOff)
	types.ActionAddSigner(builder, uint64(a.Signer))
	types.ActionAddArgs(builder, argsVec)
	types.ActionAddNonce(builder, a.Nonce)
	types.ActionAddPubkey(builder, pubVec)
	types.ActionAddSignature(builder, sigVec)
	types.ActionAddHash(builder, hashVec)
	builder.Finish(types.ActionEnd(builder))

	return builder.FinishedBytes()
}

// Open parses an envelope and checks its hash and signature.
// It does not check that Pubkey belongs to Signer.
func Open(data []byte) (s Signed, retErr error) {
	// FlatBuffers panics on malformed data
	defer func() {
		if r := recover(); r != nil {
			retErr = fault.Newf(fault.ErrMalformedInput, "malformed action envelope")
		}
	}()

	if len(data) < 8 {
		return Signed{}, fault.Newf(fault.ErrMalformedInput, "action envelope too short")
	}

	fb := types.GetRootAsAction(data, 0)

	if err := checkSizes(fb); err != nil {
		return Signed{}, err
	}

	s = Signed{
		Action: Action{
			Name:   string(fb.Name()),
			Signer: names.Name(fb.Signer()),
			Args:   append([]byte(nil), fb.ArgsBytes()...),
			Nonce:  fb.Nonce(),
		},
		Pubkey:    append(ed25519.PublicKey(nil), fb.PubkeyBytes()...),
		Signature: append([]byte(nil), fb.SignatureBytes()...),
	}
	copy(s.Hash[:], fb.HashBytes())

	if blake3.Sum256(unsignedBytes(s.Action, s.Pubkey)) != s.Hash {
		return Signed{}, fault.Newf(fault.ErrMalformedInput, "hash mismatch")
	}

	if !ed25519.Verify(s.Pubkey, s.Hash[:], s.Signature) {
		return Signed{}, fault.Newf(fault.ErrAuthorization, "invalid signature")
	}

	return s, nil
}

// checkSizes validates the fixed-size fields.
func checkSizes(fb *types.Action) error {
	if n := len(fb.Name()); n == 0 || n > maxNameSize {
		return fault.Newf(fault.ErrMalformedInput, "invalid action name length %d", n)
	}

	if n := len(fb.HashBytes()); n != hashSize {
		return fault.Newf(fault.ErrMalformedInput, "invalid hash size: got %d, want %d", n, hashSize)
	}

	if n := len(fb.PubkeyBytes()); n != ed25519.PublicKeySize {
		return fault.Newf(fault.ErrMalformedInput, "invalid pubkey size: got %d, want %d", n, ed25519.PublicKeySize)
	}

	if n := len(fb.SignatureBytes()); n != ed25519.SignatureSize {
		return fault.Newf(fault.ErrMalformedInput, "invalid signature size: got %d, want %d", n, ed25519.SignatureSize)
	}

	return nil
}

// unsignedBytes builds the envelope without hash and signature for hashing.
func unsignedBytes(a Action, pub ed25519.PublicKey) []byte {
	builder := flatbuffers.NewBuilder(256)

	pubVec := builder.CreateByteVector(pub)
	argsVec := builder.CreateByteVector(a.Args)
	nameOff := builder.CreateString(a.Name)

	types.ActionStart(builder)
	types.ActionAddName(builder, nameOff)
	types.ActionAddSigner(builder, uint64(a.Signer))
	types.ActionAddArgs(builder, argsVec)
	types.ActionAddNonce(builder, a.Nonce)
	types.ActionAddPubkey(builder, pubVec)
	builder.Finish(types.ActionEnd(builder))

	return builder.FinishedBytes()
}

// String renders the action for logs.
func (a Action) String() string {
	return fmt.Sprintf("%s@%s#%d", a.Name, a.Signer, a.Nonce)
}

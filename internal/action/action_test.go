package action

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"reflect"
	"testing"

	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/token"
)

// newKey generates a test keypair.
func newKey(t *testing.T) ed25519.PrivateKey {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}

	return priv
}

// --- envelope ---

func TestSignOpen(t *testing.T) {
	priv := newKey(t)
	alice := names.MustParse("alice")

	a := Action{Name: NameRedeem, Signer: alice, Args: Redeem{Owner: alice, AssetID: 7}.Encode(), Nonce: 3}

	s, err := Open(Sign(priv, a))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if s.Name != NameRedeem || s.Signer != alice || s.Nonce != 3 {
		t.Errorf("opened %s", s.Action)
	}

	if !s.Pubkey.Equal(priv.Public()) {
		t.Error("pubkey does not match signer key")
	}

	args, err := DecodeRedeem(s.Args)
	if err != nil || args.AssetID != 7 {
		t.Errorf("args = %+v (err=%v)", args, err)
	}
}

func TestDistinctNoncesHashDifferently(t *testing.T) {
	priv := newKey(t)
	a := Action{Name: NameInit, Signer: names.MustParse("vault")}

	s1, err := Open(Sign(priv, a))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	a.Nonce++
	s2, err := Open(Sign(priv, a))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if s1.Hash == s2.Hash {
		t.Error("nonce does not affect the hash")
	}
}

func TestOpenRejectsTampering(t *testing.T) {
	priv := newKey(t)
	a := Action{Name: NameSetTR, Signer: names.MustParse("vault"), Args: SetTR{Receiver: names.MustParse("bob")}.Encode()}

	data := Sign(priv, a)

	for i := range data {
		tampered := append([]byte(nil), data...)
		tampered[i] ^= 0x01

		if _, err := Open(tampered); err == nil {
			s, _ := Open(tampered)
			if reflect.DeepEqual(s.Action, a) {
				continue // flipped padding
			}
			t.Fatalf("byte %d: tampered envelope opened as %s", i, s.Action)
		}
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{nil, {1, 2, 3}, make([]byte, 64)} {
		_, err := Open(data)
		if !errors.Is(err, fault.ErrMalformedInput) {
			t.Errorf("Open(%v): expected MalformedInput, got %v", data, err)
		}
	}
}

// --- arguments ---

func TestArgsRoundTrip(t *testing.T) {
	alice, vault, coll := names.MustParse("alice"), names.MustParse("vault"), names.MustParse("kittycards")

	qty, err := token.ParseAsset("1.50000000 WAX")
	if err != nil {
		t.Fatalf("ParseAsset failed: %v", err)
	}

	transfer := Transfer{From: alice, To: vault, AssetIDs: []uint64{1, 2, 1 << 40}, Memo: "redeem"}
	if got, err := DecodeTransfer(transfer.Encode()); err != nil || !reflect.DeepEqual(got, transfer) {
		t.Errorf("transfer = %+v (err=%v)", got, err)
	}

	deposit := TokenTransfer{From: alice, To: vault, Quantity: qty, Memo: "deposit_collection_ram:kittycards"}
	if got, err := DecodeTokenTransfer(deposit.Encode()); err != nil || got != deposit {
		t.Errorf("token transfer = %+v (err=%v)", got, err)
	}

	reject := Reject{Operator: alice, Collection: coll, AssetID: 9, Memo: "no"}
	if got, err := DecodeReject(reject.Encode()); err != nil || got != reject {
		t.Errorf("reject = %+v (err=%v)", got, err)
	}

	withdraw := WithdrawRAM{Operator: alice, Collection: coll, Recipient: vault, Bytes: 512}
	if got, err := DecodeWithdrawRAM(withdraw.Encode()); err != nil || got != withdraw {
		t.Errorf("withdraw = %+v (err=%v)", got, err)
	}
}

func TestArgsLayout(t *testing.T) {
	got := Redeem{Owner: names.Name(1), AssetID: 2}.Encode()
	want := []byte{1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Encode = %v, want %v", got, want)
	}
}

func TestDecodeRejectsShortAndTrailing(t *testing.T) {
	full := Review{Operator: 1, Collection: 2, AssetID: 3}.Encode()

	if _, err := DecodeReview(full[:len(full)-1]); !errors.Is(err, fault.ErrMalformedInput) {
		t.Errorf("short: expected MalformedInput, got %v", err)
	}

	if _, err := DecodeReview(append(full, 0)); !errors.Is(err, fault.ErrMalformedInput) {
		t.Errorf("trailing: expected MalformedInput, got %v", err)
	}

	huge := new(Writer).Name(1).Name(2).U32(1 << 30).Bytes()
	if _, err := DecodeTransfer(huge); !errors.Is(err, fault.ErrMalformedInput) {
		t.Errorf("oversized vector: expected MalformedInput, got %v", err)
	}
}

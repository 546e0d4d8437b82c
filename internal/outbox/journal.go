package outbox

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/zeebo/blake3"

	"RedeemVault/internal/names"
	"RedeemVault/internal/storage"
	"RedeemVault/internal/token"
	"RedeemVault/internal/types"
)

var (
	// journalPrefix scopes journal entries: q:<seq>.
	journalPrefix = []byte("q:")

	// headKey stores the last sequence number and chain digest.
	headKey = []byte("m:outbox")
)

// Entry is one journaled effect.
type Entry struct {
	Seq    uint64   `json:"seq"`    // Seq starts at 1 and has no gaps
	Unit   [32]byte `json:"-"`      // Unit is the id of the issuing unit
	Digest [32]byte `json:"-"`      // Digest chains this entry to the previous one
	Effect Effect   `json:"effect"` // Effect is the executed call
}

// UnitHex returns the unit id as hex.
func (e Entry) UnitHex() string {
	return hex.EncodeToString(e.Unit[:])
}

// DigestHex returns the chain digest as hex.
func (e Entry) DigestHex() string {
	return hex.EncodeToString(e.Digest[:])
}

// Head returns the last sequence number and digest; zero values when empty.
func Head(tx *storage.Tx) (uint64, [32]byte, error) {
	var digest [32]byte

	raw, err := tx.Get(headKey)
	if err != nil {
		return 0, digest, fmt.Errorf("read journal head:\n%w", err)
	}

	if len(raw) != 40 {
		return 0, digest, nil
	}

	copy(digest[:], raw[8:])

	return binary.BigEndian.Uint64(raw[:8]), digest, nil
}

// Append journals e under unit and returns the new entry.
func Append(tx *storage.Tx, unit [32]byte, e Effect) (Entry, error) {
	seq, prev, err := Head(tx)
	if err != nil {
		return Entry{}, err
	}

	body := encodeEffect(unit, e)
	entry := Entry{Seq: seq + 1, Unit: unit, Digest: chain(prev, body), Effect: e}

	value := make([]byte, 0, 32+len(body))
	value = append(value, entry.Digest[:]...)
	value = append(value, body...)

	if err := tx.Set(entryKey(entry.Seq), value); err != nil {
		return Entry{}, fmt.Errorf("write journal entry:\n%w", err)
	}

	head := binary.BigEndian.AppendUint64(nil, entry.Seq)
	head = append(head, entry.Digest[:]...)

	if err := tx.Set(headKey, head); err != nil {
		return Entry{}, fmt.Errorf("write journal head:\n%w", err)
	}

	return entry, nil
}

// Read returns up to limit entries with Seq > after. A limit of 0 reads all.
func Read(tx *storage.Tx, after uint64, limit int) ([]Entry, error) {
	var out []Entry

	err := tx.IteratePrefix(journalPrefix, func(k, v []byte) error {
		seq := binary.BigEndian.Uint64(k[len(journalPrefix):])
		if seq <= after {
			return nil
		}

		if limit > 0 && len(out) >= limit {
			return errDone
		}

		entry, err := decodeEntry(seq, v)
		if err != nil {
			return err
		}

		out = append(out, entry)
		return nil
	})
	if err != nil && err != errDone {
		return nil, fmt.Errorf("scan journal:\n%w", err)
	}

	return out, nil
}

// Verify recomputes the digest chain and fails on the first mismatch.
func Verify(tx *storage.Tx) error {
	var prev [32]byte
	var expect uint64 = 1

	err := tx.IteratePrefix(journalPrefix, func(k, v []byte) error {
		seq := binary.BigEndian.Uint64(k[len(journalPrefix):])
		if seq != expect {
			return fmt.Errorf("journal gap: got seq %d, want %d", seq, expect)
		}

		if len(v) < 32 {
			return fmt.Errorf("journal entry %d truncated", seq)
		}

		want := chain(prev, v[32:])
		if want != [32]byte(v[:32]) {
			return fmt.Errorf("journal entry %d digest mismatch", seq)
		}

		prev = want
		expect++
		return nil
	})
	if err != nil {
		return fmt.Errorf("verify journal:\n%w", err)
	}

	return nil
}

// errDone ends a scan early.
var errDone = errors.New("done")

// entryKey returns q:<seq>.
func entryKey(seq uint64) []byte {
	return binary.BigEndian.AppendUint64(append([]byte{}, journalPrefix...), seq)
}

// chain computes blake3(prev || body).
func chain(prev [32]byte, body []byte) [32]byte {
	h := blake3.New()
	h.Write(prev[:])
	h.Write(body)

	var out [32]byte
	copy(out[:], h.Sum(nil))

	return out
}

// encodeEffect serializes an effect with its unit id.
func encodeEffect(unit [32]byte, e Effect) []byte {
	builder := flatbuffers.NewBuilder(256 + len(e.Data) + len(e.Memo))

	types.EffectStartAssetIdsVector(builder, len(e.AssetIDs))
	for i := len(e.AssetIDs) - 1; i >= 0; i-- {
		builder.PrependUint64(e.AssetIDs[i])
	}
	idsVec := builder.EndVector(len(e.AssetIDs))

	memoOff := builder.CreateString(e.Memo)
	dataVec := builder.CreateByteVector(e.Data)
	unitVec := builder.CreateByteVector(unit[:])

	types.EffectStart(builder)
	types.EffectAddKind(builder, byte(e.Kind))
	types.EffectAddContract(builder, uint64(e.Contract))
	types.EffectAddActor(builder, uint64(e.Actor))
	types.EffectAddFrom(builder, uint64(e.From))
	types.EffectAddTo(builder, uint64(e.To))
	types.EffectAddAssetIds(builder, idsVec)
	types.EffectAddMemo(builder, memoOff)
	types.EffectAddCollection(builder, uint64(e.Collection))
	types.EffectAddSchema(builder, uint64(e.Schema))
	types.EffectAddTemplateId(builder, e.TemplateID)
	types.EffectAddBytes(builder, e.Bytes)
	types.EffectAddAmount(builder, e.Quantity.Amount)
	types.EffectAddSymbol(builder, e.Quantity.Symbol.Raw())
	types.EffectAddData(builder, dataVec)
	types.EffectAddUnit(builder, unitVec)
	builder.Finish(types.EffectEnd(builder))

	return builder.FinishedBytes()
}

// decodeEntry parses a stored journal value.
func decodeEntry(seq uint64, value []byte) (Entry, error) {
	if len(value) < 32 {
		return Entry{}, fmt.Errorf("journal entry %d truncated", seq)
	}

	fb := types.GetRootAsEffect(value[32:], 0)

	entry := Entry{Seq: seq}
	copy(entry.Digest[:], value[:32])
	copy(entry.Unit[:], fb.UnitBytes())

	e := Effect{
		Kind:       Kind(fb.Kind()),
		Contract:   names.Name(fb.Contract()),
		Actor:      names.Name(fb.Actor()),
		From:       names.Name(fb.From()),
		To:         names.Name(fb.To()),
		Memo:       string(fb.Memo()),
		Collection: names.Name(fb.Collection()),
		Schema:     names.Name(fb.Schema()),
		TemplateID: fb.TemplateId(),
		Bytes:      fb.Bytes(),
	}

	if n := fb.AssetIdsLength(); n > 0 {
		e.AssetIDs = make([]uint64, n)
		for i := range e.AssetIDs {
			e.AssetIDs[i] = fb.AssetIds(i)
		}
	}

	if data := fb.DataBytes(); len(data) > 0 {
		e.Data = append([]byte(nil), data...)
	}

	if raw := fb.Symbol(); raw != 0 {
		sym, err := token.SymbolFromRaw(raw)
		if err != nil {
			return Entry{}, fmt.Errorf("journal entry %d symbol:\n%w", seq, err)
		}
		e.Quantity = token.Asset{Amount: fb.Amount(), Symbol: sym}
	}

	entry.Effect = e

	return entry, nil
}

// Package snapshot exports and restores the contract tables as a single
// compressed, checksummed file.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"RedeemVault/internal/storage"
)

const (
	// version is the current snapshot format version.
	version = 1

	// headerSize is magic (4) + version (4) + checksum (32).
	headerSize = 40
)

// magic prefixes every snapshot file.
var magic = []byte("RVSN")

var (
	// ErrChecksum is returned when the snapshot body does not match its checksum.
	ErrChecksum = errors.New("snapshot checksum mismatch")

	// ErrNotEmpty is returned when restoring into a store that already holds data.
	ErrNotEmpty = errors.New("store is not empty")
)

// Info describes a snapshot.
type Info struct {
	Version  uint32   // Version is the format version
	Entries  int      // Entries is the number of key-value pairs
	Checksum [32]byte // Checksum is the blake3 digest of the body
}

// entry is one table row.
type entry struct {
	key   []byte
	value []byte
}

// Export serializes every committed key-value pair of db.
// Keys are written in lexicographic order, so equal states export equal bytes.
func Export(db *storage.Storage) ([]byte, Info, error) {
	var entries []entry

	err := db.View(func(tx *storage.Tx) error {
		return tx.IteratePrefix(nil, func(key, value []byte) error {
			entries = append(entries, entry{
				key:   append([]byte(nil), key...),
				value: append([]byte(nil), value...),
			})
			return nil
		})
	})
	if err != nil {
		return nil, Info{}, fmt.Errorf("collect entries:\n%w", err)
	}

	body := encodeBody(entries)
	checksum := computeChecksum(version, body)

	compressed, err := compress(body)
	if err != nil {
		return nil, Info{}, err
	}

	out := make([]byte, 0, headerSize+len(compressed))
	out = append(out, magic...)
	out = binary.BigEndian.AppendUint32(out, version)
	out = append(out, checksum[:]...)
	out = append(out, compressed...)

	return out, Info{Version: version, Entries: len(entries), Checksum: checksum}, nil
}

// Inspect decodes and verifies a snapshot without writing it.
func Inspect(data []byte) (Info, error) {
	info, _, err := decode(data)
	return info, err
}

// Restore writes a snapshot into an empty store in one unit.
func Restore(db *storage.Storage, data []byte) (Info, error) {
	info, entries, err := decode(data)
	if err != nil {
		return Info{}, err
	}

	err = db.Update(func(tx *storage.Tx) error {
		used, err := tx.HasPrefix(nil)
		if err != nil {
			return err
		}

		if used {
			return ErrNotEmpty
		}

		for _, e := range entries {
			if err := tx.Set(e.key, e.value); err != nil {
				return fmt.Errorf("write %q:\n%w", e.key, err)
			}
		}

		return nil
	})
	if err != nil {
		return Info{}, fmt.Errorf("restore:\n%w", err)
	}

	return info, nil
}

// decode checks the header, decompresses and verifies the body.
func decode(data []byte) (Info, []entry, error) {
	if len(data) < headerSize || !bytes.Equal(data[:4], magic) {
		return Info{}, nil, fmt.Errorf("not a snapshot file")
	}

	v := binary.BigEndian.Uint32(data[4:8])
	if v != version {
		return Info{}, nil, fmt.Errorf("unsupported snapshot version %d", v)
	}

	var stored [32]byte
	copy(stored[:], data[8:headerSize])

	body, err := decompress(data[headerSize:])
	if err != nil {
		return Info{}, nil, fmt.Errorf("decompress:\n%w", err)
	}

	if computeChecksum(v, body) != stored {
		return Info{}, nil, ErrChecksum
	}

	entries, err := decodeBody(body)
	if err != nil {
		return Info{}, nil, err
	}

	return Info{Version: v, Entries: len(entries), Checksum: stored}, entries, nil
}

// encodeBody writes each entry as u32 key length, key, u32 value length, value.
func encodeBody(entries []entry) []byte {
	var buf []byte

	for _, e := range entries {
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(e.key)))
		buf = append(buf, e.key...)
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(e.value)))
		buf = append(buf, e.value...)
	}

	return buf
}

// decodeBody reverses encodeBody.
func decodeBody(body []byte) ([]entry, error) {
	var entries []entry

	for len(body) > 0 {
		key, rest, err := readChunk(body)
		if err != nil {
			return nil, fmt.Errorf("entry %d key:\n%w", len(entries), err)
		}

		value, rest, err := readChunk(rest)
		if err != nil {
			return nil, fmt.Errorf("entry %d value:\n%w", len(entries), err)
		}

		entries = append(entries, entry{key: key, value: value})
		body = rest
	}

	return entries, nil
}

// readChunk reads one length-prefixed chunk.
func readChunk(b []byte) ([]byte, []byte, error) {
	if len(b) < 4 {
		return nil, nil, fmt.Errorf("truncated length")
	}

	n := binary.BigEndian.Uint32(b[:4])
	b = b[4:]

	if uint64(n) > uint64(len(b)) {
		return nil, nil, fmt.Errorf("length %d exceeds input", n)
	}

	return b[:n], b[n:], nil
}

// computeChecksum hashes version and body.
func computeChecksum(v uint32, body []byte) [32]byte {
	hasher := blake3.New()

	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	hasher.Write(buf[:])
	hasher.Write(body)

	var checksum [32]byte
	hasher.Sum(checksum[:0])

	return checksum
}

// compress compresses data using zstd.
func compress(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithZeroFrames(true))
	if err != nil {
		return nil, fmt.Errorf("create encoder:\n%w", err)
	}
	defer encoder.Close()

	return encoder.EncodeAll(data, nil), nil
}

// decompress decompresses zstd data.
func decompress(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create decoder:\n%w", err)
	}
	defer decoder.Close()

	return decoder.DecodeAll(data, nil)
}

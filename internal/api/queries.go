package api

import (
	"encoding/hex"
	"net/http"
	"strconv"

	"RedeemVault/internal/atomicdata"
	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/outbox"
	"RedeemVault/internal/snapshot"
)

const (
	// defaultJournalLimit bounds /v1/journal pages.
	defaultJournalLimit = 100

	// maxJournalLimit caps the limit query parameter.
	maxJournalLimit = 1000
)

// handleConfig handles GET /v1/config requests.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.engine.Config()
	if err != nil {
		writeFault(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

// handlePendingList handles GET /v1/pending requests.
func (s *Server) handlePendingList(w http.ResponseWriter, r *http.Request) {
	list, err := s.engine.PendingAll()
	if err != nil {
		writeFault(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// handlePending handles GET /v1/pending/{id} requests.
func (s *Server) handlePending(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	p, err := s.engine.Pending(id)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// handleRedemption handles GET /v1/redemption/{id} requests.
func (s *Server) handleRedemption(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	rec, err := s.engine.Redemption(id)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// handleRedemptions handles GET /v1/redemptions/{collection} requests.
func (s *Server) handleRedemptions(w http.ResponseWriter, r *http.Request) {
	collection, err := pathName(r, "collection")
	if err != nil {
		writeFault(w, r, err)
		return
	}

	list, err := s.engine.Redemptions(collection)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// handleBalances handles GET /v1/balances requests.
func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	list, err := s.engine.Balances()
	if err != nil {
		writeFault(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// handleBalance handles GET /v1/balances/{collection} requests.
func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	collection, err := pathName(r, "collection")
	if err != nil {
		writeFault(w, r, err)
		return
	}

	bytes, err := s.engine.Balance(collection)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"collection": collection,
		"bytes":      bytes,
	})
}

// assetView is the JSON rendering of an asset with decoded attributes.
type assetView struct {
	ID         uint64         `json:"asset_id"`
	Owner      names.Name     `json:"owner"`
	Collection names.Name     `json:"collection"`
	Schema     names.Name     `json:"schema"`
	TemplateID int32          `json:"template_id"`
	Immutable  map[string]any `json:"immutable_data"`
	Mutable    map[string]any `json:"mutable_data"`
}

// handleAsset handles GET /v1/assets/{id} requests.
func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	a, err := s.engine.Asset(id)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	schema, err := s.engine.Schema(a.Collection, a.Schema)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	view := assetView{
		ID:         a.ID,
		Owner:      a.Owner,
		Collection: a.Collection,
		Schema:     a.Schema,
		TemplateID: a.TemplateID,
	}

	if view.Immutable, err = plain(a.ImmutableData, schema.Format); err != nil {
		writeFault(w, r, err)
		return
	}

	if view.Mutable, err = plain(a.MutableData, schema.Format); err != nil {
		writeFault(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// plain decodes attribute bytes into JSON-friendly values.
func plain(data []byte, format []atomicdata.Format) (map[string]any, error) {
	m, err := atomicdata.Deserialize(data, format)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v.Any()
	}

	return out, nil
}

// handleAccountAssets handles GET /v1/accounts/{owner}/assets requests.
func (s *Server) handleAccountAssets(w http.ResponseWriter, r *http.Request) {
	owner, err := pathName(r, "owner")
	if err != nil {
		writeFault(w, r, err)
		return
	}

	ids, err := s.engine.AssetsOf(owner)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	if ids == nil {
		ids = []uint64{}
	}

	writeJSON(w, http.StatusOK, ids)
}

// journalView is one journal entry rendered for JSON.
type journalView struct {
	Seq    uint64        `json:"seq"`
	Unit   string        `json:"unit"`
	Digest string        `json:"digest"`
	Name   string        `json:"name"`
	Effect outbox.Effect `json:"effect"`
}

// handleJournal handles GET /v1/journal?after=&limit= requests.
func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	after, err := queryUint(r, "after", 0)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	limit, err := queryUint(r, "limit", defaultJournalLimit)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	if limit == 0 || limit > maxJournalLimit {
		limit = maxJournalLimit
	}

	entries, err := s.engine.Journal(after, int(limit))
	if err != nil {
		writeFault(w, r, err)
		return
	}

	views := make([]journalView, len(entries))
	for i, e := range entries {
		views[i] = journalView{
			Seq:    e.Seq,
			Unit:   e.UnitHex(),
			Digest: e.DigestHex(),
			Name:   e.Effect.String(),
			Effect: e.Effect,
		}
	}

	writeJSON(w, http.StatusOK, views)
}

// handleSnapshot handles GET /v1/snapshot requests.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	data, info, err := snapshot.Export(s.db)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("X-Snapshot-Checksum", hex.EncodeToString(info.Checksum[:]))
	w.Header().Set("X-Snapshot-Entries", strconv.Itoa(info.Entries))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (uint64, error) {
	raw := r.PathValue("id")

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fault.Newf(fault.ErrMalformedInput, "invalid id %q", raw)
	}

	return id, nil
}

// pathName parses an account name path value.
func pathName(r *http.Request, key string) (names.Name, error) {
	raw := r.PathValue(key)

	n, err := names.Parse(raw)
	if err != nil {
		return names.Empty, fault.Newf(fault.ErrMalformedInput, "invalid %s: %v", key, err)
	}

	return n, nil
}

// queryUint parses an optional unsigned query parameter.
func queryUint(r *http.Request, key string, def uint64) (uint64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fault.Newf(fault.ErrMalformedInput, "invalid %s %q", key, raw)
	}

	return n, nil
}

// hexDigest renders a digest for JSON.
func hexDigest(d [32]byte) string {
	return hex.EncodeToString(d[:])
}

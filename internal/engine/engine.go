// Package engine runs the custody and redemption operations. Each call is
// one unit of work: a storage transaction plus the outbound effects it
// issued, committed together or discarded together.
package engine

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/zeebo/blake3"

	"RedeemVault/internal/assets"
	"RedeemVault/internal/fault"
	"RedeemVault/internal/logger"
	"RedeemVault/internal/names"
	"RedeemVault/internal/outbox"
	"RedeemVault/internal/ramledger"
	"RedeemVault/internal/storage"
)

// Well-known accounts of the host.
var (
	AtomicAssets  = names.MustParse("atomicassets") // AtomicAssets is the asset system contract
	TokenContract = names.MustParse("eosio.token")  // TokenContract issues the core token
	SystemAccount = names.MustParse("eosio")        // SystemAccount sells RAM
)

// unitPrefix scopes applied unit ids: h:<id>.
var unitPrefix = []byte("h:")

// Config configures an Engine.
type Config struct {
	Storage *storage.Storage // Storage holds every table
	Self    names.Name       // Self is the contract account
	Market  ramledger.Market // Market prices RAM purchases
	Clock   func() time.Time // Clock defaults to time.Now
}

// Engine executes operations against the contract tables.
type Engine struct {
	db     *storage.Storage
	self   names.Name
	assets *assets.Ledger
	market ramledger.Market
	clock  func() time.Time

	mu  sync.Mutex // mu serializes units
	seq uint64     // seq disambiguates locally derived unit ids
}

// New creates an Engine.
func New(cfg Config) (*Engine, error) {
	if cfg.Storage == nil {
		return nil, fmt.Errorf("storage is required")
	}

	if cfg.Self == names.Empty {
		return nil, fmt.Errorf("contract account is required")
	}

	if cfg.Market == nil {
		return nil, fmt.Errorf("ram market is required")
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Engine{
		db:     cfg.Storage,
		self:   cfg.Self,
		assets: assets.New(),
		market: cfg.Market,
		clock:  clock,
	}, nil
}

// Self returns the contract account.
func (e *Engine) Self() names.Name {
	return e.self
}

// Assets returns the asset system mirror.
func (e *Engine) Assets() *assets.Ledger {
	return e.assets
}

// Call carries the identity and authority of one inbound call.
type Call struct {
	ID   [32]byte     // ID is the signed envelope hash; zero for local calls
	Auth []names.Name // Auth lists the accounts that signed the call
}

// Authorize builds a local call signed by accounts.
func Authorize(accounts ...names.Name) Call {
	return Call{Auth: accounts}
}

// signedBy reports whether account authorized the call.
func (c Call) signedBy(account names.Name) bool {
	return names.Contains(c.Auth, account)
}

// unit is the state of one running call.
type unit struct {
	*Engine
	tx      *storage.Tx // tx is the unit's transaction
	call    Call        // call is the inbound call
	id      [32]byte    // id identifies the unit in the journal
	now     time.Time   // now is fixed for the whole unit
	effects outbox.Log  // effects are flushed after the body succeeds
}

// require fails with Authorization unless account signed the call.
func (u *unit) require(account names.Name) error {
	if !u.call.signedBy(account) {
		return fault.Newf(fault.ErrAuthorization, "missing authority of %s", account)
	}

	return nil
}

// queue appends an outbound effect.
func (u *unit) queue(e outbox.Effect) {
	u.effects.Queue(e)
}

// run executes fn as one unit of work named op.
func (e *Engine) run(op string, call Call, fn func(u *unit) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	u := &unit{Engine: e, call: call, id: e.unitID(op, call), now: e.clock().UTC()}

	err := e.db.Update(func(tx *storage.Tx) error {
		u.tx = tx

		if err := u.claim(); err != nil {
			return err
		}

		if err := fn(u); err != nil {
			return err
		}

		return u.effects.Flush(tx, u.id, executor{u})
	})

	short := hex.EncodeToString(u.id[:4])

	if err != nil {
		logger.Warn("unit aborted",
			"op", op,
			"unit", short,
			"code", fault.Code(err),
			"error", err,
		)
		return err
	}

	logger.Info("unit committed",
		"op", op,
		"unit", short,
		"effects", len(u.effects.Effects()),
		logger.Timed(start),
	)

	return nil
}

// unitID returns the call id, deriving one for local calls.
func (e *Engine) unitID(op string, call Call) [32]byte {
	if call.ID != ([32]byte{}) {
		return call.ID
	}

	e.seq++

	h := blake3.New()
	h.Write([]byte(op))
	h.Write(binary.BigEndian.AppendUint64(nil, uint64(e.clock().UnixNano())))
	h.Write(binary.BigEndian.AppendUint64(nil, e.seq))

	var id [32]byte
	copy(id[:], h.Sum(nil))

	return id
}

// claim records a signed call id, refusing replays.
func (u *unit) claim() error {
	if u.call.ID == ([32]byte{}) {
		return nil
	}

	key := append(append([]byte{}, unitPrefix...), u.call.ID[:]...)

	seen, err := u.tx.Has(key)
	if err != nil {
		return fmt.Errorf("read unit id:\n%w", err)
	}

	if seen {
		return fault.Newf(fault.ErrStateConflict, "call %x already applied", u.call.ID[:8])
	}

	if err := u.tx.Set(key, nil); err != nil {
		return fmt.Errorf("write unit id:\n%w", err)
	}

	return nil
}

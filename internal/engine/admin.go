package engine

import (
	"RedeemVault/internal/custody"
	"RedeemVault/internal/names"
)

// Init creates the Config singleton with defaults. Calling it again is a no-op.
func (e *Engine) Init(call Call) error {
	return e.run("init", call, func(u *unit) error {
		if err := u.require(u.self); err != nil {
			return err
		}

		_, found, err := custody.GetConfig(u.tx)
		if err != nil || found {
			return err
		}

		return custody.PutConfig(u.tx, custody.Config{TokenReceiver: custody.DefaultTokenReceiver})
	})
}

// SetTokenReceiver updates the default token receiver.
func (e *Engine) SetTokenReceiver(call Call, receiver names.Name) error {
	return e.run("settr", call, func(u *unit) error {
		if err := u.require(u.self); err != nil {
			return err
		}

		cfg, err := custody.MustConfig(u.tx)
		if err != nil {
			return err
		}

		cfg.TokenReceiver = receiver

		return custody.PutConfig(u.tx, cfg)
	})
}

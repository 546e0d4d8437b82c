package api

import (
	"encoding/hex"
	"io"
	"net/http"

	"RedeemVault/internal/action"
	"RedeemVault/internal/engine"
	"RedeemVault/internal/fault"
	"RedeemVault/internal/logger"
	"RedeemVault/internal/names"
)

// handleAction handles POST /v1/actions requests.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxActionSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "empty action")
		return
	}

	signed, err := action.Open(body)
	if err != nil {
		writeFault(w, r, err)
		return
	}

	if err := s.checkKey(signed); err != nil {
		writeFault(w, r, err)
		return
	}

	if err := s.apply(signed); err != nil {
		logger.Debug("action rejected",
			"action", signed.Action.String(),
			"request", w.Header().Get(requestIDHeader),
			"error", err,
		)
		writeFault(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"hash": hex.EncodeToString(signed.Hash[:]),
	})
}

// checkKey verifies that the envelope key is registered to its signer.
func (s *Server) checkKey(signed action.Signed) error {
	key, ok := s.keys[signed.Signer]
	if !ok {
		return fault.Newf(fault.ErrAuthorization, "no key registered for %s", signed.Signer)
	}

	if !key.Equal(signed.Pubkey) {
		return fault.Newf(fault.ErrAuthorization, "key does not belong to %s", signed.Signer)
	}

	return nil
}

// apply decodes the arguments and runs the operation as the signer.
func (s *Server) apply(signed action.Signed) error {
	call := engine.Call{ID: signed.Hash, Auth: []names.Name{signed.Signer}}
	e := s.engine

	switch signed.Name {
	case action.NameInit:
		if len(signed.Args) != 0 {
			return fault.Newf(fault.ErrMalformedInput, "init takes no arguments")
		}
		return e.Init(call)

	case action.NameSetTR:
		a, err := action.DecodeSetTR(signed.Args)
		if err != nil {
			return err
		}
		return e.SetTokenReceiver(call, a.Receiver)

	case action.NameRedeem:
		a, err := action.DecodeRedeem(signed.Args)
		if err != nil {
			return err
		}
		return e.Redeem(call, a.Owner, a.AssetID)

	case action.NameAccept:
		a, err := action.DecodeReview(signed.Args)
		if err != nil {
			return err
		}
		return e.Accept(call, a.Operator, a.Collection, a.AssetID)

	case action.NameRelease:
		a, err := action.DecodeReview(signed.Args)
		if err != nil {
			return err
		}
		return e.Release(call, a.Operator, a.Collection, a.AssetID)

	case action.NameReject:
		a, err := action.DecodeReject(signed.Args)
		if err != nil {
			return err
		}
		return e.Reject(call, a.Operator, a.Collection, a.AssetID, a.Memo)

	case action.NameTransfer:
		a, err := action.DecodeTransfer(signed.Args)
		if err != nil {
			return err
		}
		return e.TransferAssets(call, a.From, a.To, a.AssetIDs, a.Memo)

	case action.NameAssetNotify:
		a, err := action.DecodeTransfer(signed.Args)
		if err != nil {
			return err
		}
		return e.ReceiveAssetTransfer(call, a.From, a.To, a.AssetIDs, a.Memo)

	case action.NameTokenNotify:
		a, err := action.DecodeTokenTransfer(signed.Args)
		if err != nil {
			return err
		}
		return e.ReceiveTokenTransfer(call, signed.Signer, a.From, a.To, a.Quantity, a.Memo)

	case action.NameBuyRAMProxy:
		a, err := action.DecodeBuyRAMProxy(signed.Args)
		if err != nil {
			return err
		}
		return e.BuyRAMProxy(call, a.Collection, a.Quantity)

	case action.NameWithdrawRAM:
		a, err := action.DecodeWithdrawRAM(signed.Args)
		if err != nil {
			return err
		}
		return e.WithdrawRAM(call, a.Operator, a.Collection, a.Recipient, a.Bytes)

	default:
		return fault.Newf(fault.ErrMalformedInput, "unknown action %q", signed.Name)
	}
}

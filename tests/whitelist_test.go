package tests

import (
	"testing"

	"github.com/lockvault/lockvault-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestWhitelistAdmin(t *testing.T) {
	s := newLockerSetup(t)
	stranger := s.e.NewAccount(t)

	s.whitelist.Invoke(t, common.Version, "version")
	s.whitelist.Invoke(t, defaultWhitelistPrice, "price")
	s.whitelist.Invoke(t, false, "isAssetWhitelisted", s.tokenHash)

	h := s.whitelist.Invoke(t, stackitem.Null{}, "addAsset", s.tokenHash)
	ev := findEvent(t, s.e.CheckHalt(t, h), "AssetWhitelisted")
	require.Equal(t, s.tokenHash.BytesBE(), itemBytes(t, ev[0]))
	s.whitelist.Invoke(t, true, "isAssetWhitelisted", s.tokenHash)

	t.Run("listing", func(t *testing.T) {
		s.whitelist.Invoke(t, stackitem.Null{}, "addAsset", s.gasHash)
		res, err := s.whitelist.TestInvoke(t, "assets")
		require.NoError(t, err)
		items := res.Top().Item().Value().([]stackitem.Item)
		listed := make([][]byte, len(items))
		for i := range items {
			listed[i] = itemBytes(t, items[i])
		}
		require.ElementsMatch(t, [][]byte{s.tokenHash.BytesBE(), s.gasHash.BytesBE()}, listed)
	})

	t.Run("removal", func(t *testing.T) {
		s.whitelist.Invoke(t, stackitem.Null{}, "removeAsset", s.gasHash)
		s.whitelist.Invoke(t, false, "isAssetWhitelisted", s.gasHash)
		s.whitelist.InvokeFail(t, "validation: asset is not whitelisted", "removeAsset", s.gasHash)
	})

	t.Run("auth", func(t *testing.T) {
		cStranger := s.whitelist.WithSigners(stranger)
		cStranger.InvokeFail(t, common.ErrAdminWitnessFailed, "addAsset", s.gasHash)
		cStranger.InvokeFail(t, common.ErrAdminWitnessFailed, "removeAsset", s.tokenHash)
		cStranger.InvokeFail(t, common.ErrAdminWitnessFailed, "setPrice", 1)
	})

	t.Run("price update", func(t *testing.T) {
		s.whitelist.Invoke(t, stackitem.Null{}, "setPrice", 42)
		s.whitelist.Invoke(t, 42, "price")
		s.whitelist.InvokeFail(t, "validation: price must be positive", "setPrice", 0)
	})
}

func TestWhitelistPurchase(t *testing.T) {
	s := newLockerSetup(t)

	buyer := s.newFundedAccount(t, 2*defaultWhitelistPrice)
	cBuyer := s.whitelist.WithSigners(buyer)

	t.Run("buyer witness required", func(t *testing.T) {
		s.whitelist.InvokeFail(t, common.ErrOwnerWitnessFailed, "purchaseWhitelist",
			buyer.ScriptHash(), s.gasHash)
	})

	h := cBuyer.Invoke(t, stackitem.Null{}, "purchaseWhitelist", buyer.ScriptHash(), s.gasHash)
	findEvent(t, s.e.CheckHalt(t, h), "AssetWhitelisted")

	s.whitelist.Invoke(t, true, "isAssetWhitelisted", s.gasHash)
	// The price goes straight to the treasury in the reference token.
	require.EqualValues(t, defaultWhitelistPrice, s.tokenBalance(t, s.treasury.ScriptHash()))
	require.EqualValues(t, defaultWhitelistPrice, s.tokenBalance(t, buyer.ScriptHash()))

	t.Run("already whitelisted", func(t *testing.T) {
		cBuyer.InvokeFail(t, "validation: asset is already whitelisted", "purchaseWhitelist",
			buyer.ScriptHash(), s.gasHash)
	})

	t.Run("underfunded buyer", func(t *testing.T) {
		poor := s.e.NewAccount(t)
		s.whitelist.WithSigners(poor).InvokeFail(t, "insufficient funds: whitelist payment failed",
			"purchaseWhitelist", poor.ScriptHash(), s.tokenHash)
	})

	t.Run("purchased asset creates locks without fees", func(t *testing.T) {
		acc := s.e.NewAccount(t)
		owner := s.e.NewAccount(t)
		end := s.chainNow(t) + 100*unitSpan

		s.locker.WithSigners(acc).Invoke(t, stackitem.Null{}, "createLocks",
			acc.ScriptHash(), s.gasHash,
			[]any{owner.ScriptHash()}, []any{5_0000}, []any{end}, []any{end})
		s.locker.Invoke(t, 0, "collectedFees", s.gasHash)
	})
}

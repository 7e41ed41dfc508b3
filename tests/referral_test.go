package tests

import (
	"testing"

	"github.com/lockvault/lockvault-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestReferralCodes(t *testing.T) {
	s := newLockerSetup(t)

	promoter := s.e.NewAccount(t)
	cPromoter := s.referral.WithSigners(promoter)
	code := newReferralCode()

	s.referral.Invoke(t, false, "isCodeActive", code)

	h := cPromoter.Invoke(t, stackitem.Null{}, "createCode", promoter.ScriptHash(), code)
	ev := findEvent(t, s.e.CheckHalt(t, h), "CodeCreated")
	require.Equal(t, promoter.ScriptHash().BytesBE(), itemBytes(t, ev[0]))
	require.Equal(t, code, string(itemBytes(t, ev[1])))

	s.referral.Invoke(t, true, "isCodeActive", code)
	s.referral.Invoke(t, stackitem.NewByteArray(promoter.ScriptHash().BytesBE()), "codeOwner", code)

	t.Run("codes are unique forever", func(t *testing.T) {
		other := s.e.NewAccount(t)
		s.referral.WithSigners(other).InvokeFail(t, "validation: code already registered",
			"createCode", other.ScriptHash(), code)
	})
	t.Run("owner witness required", func(t *testing.T) {
		s.referral.InvokeFail(t, common.ErrOwnerWitnessFailed, "createCode",
			promoter.ScriptHash(), newReferralCode())
	})
	t.Run("malformed codes", func(t *testing.T) {
		cPromoter.InvokeFail(t, "validation: empty code", "createCode", promoter.ScriptHash(), "")
		cPromoter.InvokeFail(t, "validation: code too long", "createCode", promoter.ScriptHash(),
			"0123456789012345678901234567890123456789")
	})

	t.Run("listing", func(t *testing.T) {
		second := newReferralCode()
		cPromoter.Invoke(t, stackitem.Null{}, "createCode", promoter.ScriptHash(), second)

		res, err := s.referral.TestInvoke(t, "codes")
		require.NoError(t, err)
		items := res.Top().Item().Value().([]stackitem.Item)
		listed := make([]string, len(items))
		for i := range items {
			listed[i] = string(itemBytes(t, items[i]))
		}
		require.ElementsMatch(t, []string{code, second}, listed)
	})
}

func TestReferralRemoveCode(t *testing.T) {
	s := newLockerSetup(t)

	promoter := s.e.NewAccount(t)
	stranger := s.e.NewAccount(t)
	code := newReferralCode()

	s.referral.WithSigners(promoter).Invoke(t, stackitem.Null{}, "createCode",
		promoter.ScriptHash(), code)

	s.referral.WithSigners(stranger).InvokeFail(t, common.ErrAdminWitnessFailed,
		"removeCode", code)

	t.Run("by the code owner", func(t *testing.T) {
		s.referral.WithSigners(promoter).Invoke(t, stackitem.Null{}, "removeCode", code)
		s.referral.Invoke(t, false, "isCodeActive", code)
		s.referral.InvokeFail(t, "validation: unknown code", "codeOwner", code)
	})

	t.Run("by the contract owner", func(t *testing.T) {
		other := newReferralCode()
		s.referral.WithSigners(promoter).Invoke(t, stackitem.Null{}, "createCode",
			promoter.ScriptHash(), other)
		s.referral.Invoke(t, stackitem.Null{}, "removeCode", other)
		s.referral.Invoke(t, false, "isCodeActive", other)
	})

	s.referral.InvokeFail(t, "validation: unknown code", "removeCode", newReferralCode())
}

func TestReferralRecordReward(t *testing.T) {
	s := newLockerSetup(t)

	promoter := s.e.NewAccount(t)
	code := newReferralCode()
	s.referral.WithSigners(promoter).Invoke(t, stackitem.Null{}, "createCode",
		promoter.ScriptHash(), code)

	// Direct invocations are not registered callers, only deployed locker
	// contracts are.
	s.referral.InvokeFail(t, "witness: caller is not a registered locker contract",
		"recordReward", code, 100)
	s.referral.Invoke(t, 0, "rewardsEarned", code)

	t.Run("accumulates over batches", func(t *testing.T) {
		acc := s.newFundedAccount(t, 1_000_000)
		owner := s.e.NewAccount(t)
		cAcc := s.locker.WithSigners(acc)
		end := s.chainNow(t) + 100*unitSpan
		discounted := int64(defaultNativeFee) * (10000 - defaultDiscountBP) / 10000

		cAcc.Invoke(t, stackitem.Null{}, "createLocksWithCode", acc.ScriptHash(), s.tokenHash,
			[]any{owner.ScriptHash()}, []any{1000}, []any{end}, []any{end}, code)
		cAcc.Invoke(t, stackitem.Null{}, "createLocksWithCode", acc.ScriptHash(), s.tokenHash,
			[]any{owner.ScriptHash()}, []any{1000}, []any{end}, []any{end}, code)

		s.referral.Invoke(t, 2*discounted, "rewardsEarned", code)
	})

	t.Run("revoked caller", func(t *testing.T) {
		s.referral.Invoke(t, stackitem.Null{}, "removeCaller", s.lockerHash)

		acc := s.newFundedAccount(t, 1_000_000)
		owner := s.e.NewAccount(t)
		end := s.chainNow(t) + 100*unitSpan
		s.locker.WithSigners(acc).InvokeFail(t, "witness: caller is not a registered locker contract",
			"createLocksWithCode", acc.ScriptHash(), s.tokenHash,
			[]any{owner.ScriptHash()}, []any{1000}, []any{end}, []any{end}, code)
	})

	t.Run("caller registration auth", func(t *testing.T) {
		stranger := s.e.NewAccount(t)
		s.referral.WithSigners(stranger).InvokeFail(t, common.ErrAdminWitnessFailed,
			"addCaller", s.lockerHash)
		s.referral.WithSigners(stranger).InvokeFail(t, common.ErrAdminWitnessFailed,
			"removeCaller", s.lockerHash)
	})
}

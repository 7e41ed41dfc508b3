package tests

import (
	"testing"

	"github.com/lockvault/lockvault-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestTokenDeploy(t *testing.T) {
	s := newLockerSetup(t)

	s.token.Invoke(t, common.Version, "version")
	s.token.Invoke(t, stackitem.NewByteArray([]byte("LVT")), "symbol")
	s.token.Invoke(t, 8, "decimals")
	s.token.Invoke(t, defaultTokenSupply, "totalSupply")
	s.token.Invoke(t, defaultTokenSupply, "balanceOf", s.e.CommitteeHash)
}

func TestTokenTransfer(t *testing.T) {
	s := newLockerSetup(t)

	alice := s.e.NewAccount(t)
	bob := s.e.NewAccount(t)

	h := s.token.Invoke(t, true, "transfer", s.e.CommitteeHash, alice.ScriptHash(), 1000, nil)
	ev := findEvent(t, s.e.CheckHalt(t, h), "Transfer")
	require.EqualValues(t, 1000, itemInt(t, ev[2]))

	s.token.Invoke(t, 1000, "balanceOf", alice.ScriptHash())
	s.token.Invoke(t, defaultTokenSupply-1000, "balanceOf", s.e.CommitteeHash)

	t.Run("missing sender witness", func(t *testing.T) {
		s.token.WithSigners(bob).Invoke(t, false, "transfer",
			alice.ScriptHash(), bob.ScriptHash(), 100, nil)
	})
	t.Run("insufficient balance", func(t *testing.T) {
		s.token.WithSigners(alice).Invoke(t, false, "transfer",
			alice.ScriptHash(), bob.ScriptHash(), 5000, nil)
	})
	t.Run("negative amount", func(t *testing.T) {
		s.token.WithSigners(alice).Invoke(t, false, "transfer",
			alice.ScriptHash(), bob.ScriptHash(), -1, nil)
	})

	t.Run("exact balance clears the entry", func(t *testing.T) {
		s.token.WithSigners(alice).Invoke(t, true, "transfer",
			alice.ScriptHash(), bob.ScriptHash(), 1000, nil)
		s.token.Invoke(t, 0, "balanceOf", alice.ScriptHash())
		s.token.Invoke(t, 1000, "balanceOf", bob.ScriptHash())
	})
}

func TestTokenMint(t *testing.T) {
	s := newLockerSetup(t)

	alice := s.e.NewAccount(t)

	h := s.token.Invoke(t, stackitem.Null{}, "mint", alice.ScriptHash(), 500)
	ev := findEvent(t, s.e.CheckHalt(t, h), "Transfer")
	require.Equal(t, stackitem.Null{}, ev[0])
	require.EqualValues(t, 500, itemInt(t, ev[2]))

	s.token.Invoke(t, 500, "balanceOf", alice.ScriptHash())
	s.token.Invoke(t, defaultTokenSupply+500, "totalSupply")

	t.Run("auth", func(t *testing.T) {
		s.token.WithSigners(alice).InvokeFail(t, common.ErrAdminWitnessFailed,
			"mint", alice.ScriptHash(), 1)
	})
	t.Run("bad amount", func(t *testing.T) {
		s.token.InvokeFail(t, "validation: amount must be positive", "mint", alice.ScriptHash(), 0)
	})
}

package tests

import (
	"testing"

	"github.com/lockvault/lockvault-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

func TestOracleRates(t *testing.T) {
	s := newLockerSetup(t)

	s.oracle.Invoke(t, common.Version, "version")
	s.oracle.InvokeFail(t, "validation: no rate for asset", "quote", 100, s.tokenHash)

	s.oracle.Invoke(t, stackitem.Null{}, "setRate", s.tokenHash, 3, 2)
	s.oracle.Invoke(t, 150, "quote", 100, s.tokenHash)
	// Integer conversion truncates.
	s.oracle.Invoke(t, 1, "quote", 1, s.tokenHash)

	t.Run("republishing overwrites", func(t *testing.T) {
		s.oracle.Invoke(t, stackitem.Null{}, "setRate", s.tokenHash, 1, 4)
		s.oracle.Invoke(t, 25, "quote", 100, s.tokenHash)
	})

	t.Run("bad arguments", func(t *testing.T) {
		s.oracle.InvokeFail(t, "validation: rate must be positive", "setRate", s.tokenHash, 0, 1)
		s.oracle.InvokeFail(t, "validation: rate must be positive", "setRate", s.tokenHash, 1, 0)
		s.oracle.InvokeFail(t, "validation: invalid asset script hash", "setRate", []byte{1, 2}, 1, 1)
		s.oracle.InvokeFail(t, "validation: amount must be positive", "quote", 0, s.tokenHash)
	})

	t.Run("auth", func(t *testing.T) {
		stranger := s.e.NewAccount(t)
		s.oracle.WithSigners(stranger).InvokeFail(t, common.ErrAdminWitnessFailed,
			"setRate", util.Uint160{1}, 1, 1)
	})
}

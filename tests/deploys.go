package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const (
	lockerPath    = "../contracts/locker"
	referralPath  = "../contracts/referral"
	whitelistPath = "../contracts/whitelist"
	oraclePath    = "../contracts/oracle"
	tokenPath     = "../contracts/token"
)

// Default deployment parameters. The native fee is denominated in GAS
// fractions, the rates in basis points.
const (
	defaultNativeFee  = 1_0000
	defaultAssetFeeBP = 500
	defaultDiscountBP = 1000
	defaultMaxBatch   = 25

	defaultWhitelistPrice = 100_0000_0000
	defaultTokenSupply    = 1_000_000_0000_0000
)

// lockerSetup is a fully wired deployment: the locker with its three
// auxiliary contracts, the NEP-17 token used as the escrowed asset and as
// the whitelist reference token, and a dedicated treasury account. All
// invokers sign with the committee, which owns every contract.
type lockerSetup struct {
	e *neotest.Executor

	locker    *neotest.ContractInvoker
	referral  *neotest.ContractInvoker
	whitelist *neotest.ContractInvoker
	oracle    *neotest.ContractInvoker
	token     *neotest.ContractInvoker
	gasToken  *neotest.ContractInvoker

	lockerHash    util.Uint160
	referralHash  util.Uint160
	whitelistHash util.Uint160
	oracleHash    util.Uint160
	tokenHash     util.Uint160
	gasHash       util.Uint160

	treasury neotest.Signer
}

func deployTokenContract(t *testing.T, e *neotest.Executor, initialSupply int64) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, c, []any{e.CommitteeHash, initialSupply})
	return c.Hash
}

func deployOracleContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, oraclePath, path.Join(oraclePath, "config.yml"))
	e.DeployContract(t, c, []any{e.CommitteeHash})
	return c.Hash
}

func deployReferralContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, referralPath, path.Join(referralPath, "config.yml"))
	e.DeployContract(t, c, []any{e.CommitteeHash})
	return c.Hash
}

func deployWhitelistContract(t *testing.T, e *neotest.Executor, referenceToken, treasury util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, whitelistPath, path.Join(whitelistPath, "config.yml"))
	e.DeployContract(t, c, []any{e.CommitteeHash, referenceToken, treasury, defaultWhitelistPrice})
	return c.Hash
}

func deployLockerContract(t *testing.T, e *neotest.Executor, treasury, referral, whitelist, oracle util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, lockerPath, path.Join(lockerPath, "config.yml"))
	e.DeployContract(t, c, []any{
		e.CommitteeHash, treasury, referral, whitelist, oracle,
		defaultNativeFee, defaultAssetFeeBP, defaultDiscountBP, defaultMaxBatch,
	})
	return c.Hash
}

func newLockerSetup(t *testing.T) *lockerSetup {
	e := newExecutor(t)

	s := &lockerSetup{
		e:        e,
		treasury: e.NewAccount(t),
		gasHash:  e.NativeHash(t, nativenames.Gas),
	}

	s.tokenHash = deployTokenContract(t, e, defaultTokenSupply)
	s.oracleHash = deployOracleContract(t, e)
	s.referralHash = deployReferralContract(t, e)
	s.whitelistHash = deployWhitelistContract(t, e, s.tokenHash, s.treasury.ScriptHash())
	s.lockerHash = deployLockerContract(t, e, s.treasury.ScriptHash(),
		s.referralHash, s.whitelistHash, s.oracleHash)

	s.locker = e.CommitteeInvoker(s.lockerHash)
	s.referral = e.CommitteeInvoker(s.referralHash)
	s.whitelist = e.CommitteeInvoker(s.whitelistHash)
	s.oracle = e.CommitteeInvoker(s.oracleHash)
	s.token = e.CommitteeInvoker(s.tokenHash)
	s.gasToken = e.CommitteeInvoker(s.gasHash)

	// Reward attribution is gated on the caller, the locker has to be
	// registered explicitly.
	s.referral.Invoke(t, stackitem.Null{}, "addCaller", s.lockerHash)

	return s
}

// newFundedAccount creates an account holding both GAS and amount of the
// test token, ready to create locks on any fee path.
func (s *lockerSetup) newFundedAccount(t *testing.T, amount int64) neotest.Signer {
	acc := s.e.NewAccount(t)
	s.token.Invoke(t, true, "transfer", s.e.CommitteeHash, acc.ScriptHash(), amount, nil)
	return acc
}

func (s *lockerSetup) tokenBalance(t *testing.T, acc util.Uint160) int64 {
	return stackInt(t, s.token, "balanceOf", acc)
}

func (s *lockerSetup) gasBalance(t *testing.T, acc util.Uint160) int64 {
	return stackInt(t, s.gasToken, "balanceOf", acc)
}

// chainNow returns the timestamp of the latest block in milliseconds.
func (s *lockerSetup) chainNow(t *testing.T) int64 {
	return int64(s.e.TopBlock(t).Timestamp)
}

// Package deploy provides LockVault contract deployment procedure over the
// Neo RPC interface.
package deploy

import (
	"context"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services of a particular Neo blockchain network required
// for the LockVault deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. It returns an error with 'Unknown contract' substring if
	// the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of a smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// TokenContractPrm groups deployment parameters of the LockVault utility
// token contract.
type TokenContractPrm struct {
	Common CommonDeployPrm

	// Tokens minted to the contract owner on deployment.
	InitialSupply int64
}

// OracleContractPrm groups deployment parameters of the rate oracle contract.
type OracleContractPrm struct {
	Common CommonDeployPrm

	// Conversion rates published right after the deployment.
	Rates []AssetRate
}

// ReferralContractPrm groups deployment parameters of the referral registry
// contract.
type ReferralContractPrm struct {
	Common CommonDeployPrm
}

// WhitelistContractPrm groups deployment parameters of the asset whitelist
// contract.
type WhitelistContractPrm struct {
	Common CommonDeployPrm

	// Token the whitelist purchase is paid in. Zero address defaults to the
	// LockVault utility token deployed alongside.
	ReferenceToken util.Uint160

	// Whitelist purchase price in the reference token's smallest unit.
	Price int64
}

// LockerContractPrm groups deployment parameters of the locker contract.
type LockerContractPrm struct {
	Common CommonDeployPrm
	Config LockerConfiguration
}

// Prm groups all parameters of the LockVault deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance the contracts are deployed to.
	Blockchain Blockchain

	// Local account used for transaction signing (must be unlocked). It
	// becomes the administrative owner of every deployed contract.
	LocalAccount *wallet.Account

	TokenContract     TokenContractPrm
	OracleContract    OracleContractPrm
	ReferralContract  ReferralContractPrm
	WhitelistContract WhitelistContractPrm
	LockerContract    LockerContractPrm
}

// Addresses carries on-chain addresses of the deployed LockVault contracts.
type Addresses struct {
	Token     util.Uint160
	Oracle    util.Uint160
	Referral  util.Uint160
	Whitelist util.Uint160
	Locker    util.Uint160
}

// Deploy puts the LockVault contract family on the chain represented by
// given Prm.Blockchain and wires the contracts together: the locker is
// registered as a reward caller in the referral registry and the initial
// conversion rates are published to the oracle.
//
// Deploy is idempotent: contracts already present on the chain under their
// computed addresses are left as they are, so a previously interrupted
// procedure can simply be re-run. Deployment progress is logged in detail.
//
// Summary of stages:
//  1. utility token contract deployment
//  2. oracle contract deployment, initial rate publishing
//  3. referral registry deployment
//  4. whitelist contract deployment
//  5. locker contract deployment
//  6. locker registration as a referral reward caller
func Deploy(ctx context.Context, prm Prm) (Addresses, error) {
	var res Addresses

	err := prm.LockerContract.Config.Validate()
	if err != nil {
		return res, fmt.Errorf("invalid locker configuration: %w", err)
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	d := deployer{
		logger: prm.Logger,
		chain:  prm.Blockchain,
		act:    act,
		mgmt:   management.New(act),
		owner:  prm.LocalAccount.ScriptHash(),
	}

	prm.Logger.Info("synchronizing token contract with the chain...")

	res.Token, err = d.syncContract(ctx, prm.TokenContract.Common,
		[]any{d.owner, prm.TokenContract.InitialSupply})
	if err != nil {
		return res, fmt.Errorf("sync token contract with the chain: %w", err)
	}

	prm.Logger.Info("token contract successfully synchronized", zap.Stringer("address", res.Token))

	prm.Logger.Info("synchronizing oracle contract with the chain...")

	res.Oracle, err = d.syncContract(ctx, prm.OracleContract.Common, []any{d.owner})
	if err != nil {
		return res, fmt.Errorf("sync oracle contract with the chain: %w", err)
	}

	prm.Logger.Info("oracle contract successfully synchronized", zap.Stringer("address", res.Oracle))

	for _, rate := range prm.OracleContract.Rates {
		err = d.call(res.Oracle, "setRate", rate.Asset, rate.Num, rate.Denom)
		if err != nil {
			return res, fmt.Errorf("publish conversion rate for asset %s: %w", rate.Asset.StringLE(), err)
		}

		prm.Logger.Info("conversion rate published",
			zap.Stringer("asset", rate.Asset), zap.Int64("num", rate.Num), zap.Int64("denom", rate.Denom))
	}

	prm.Logger.Info("synchronizing referral contract with the chain...")

	res.Referral, err = d.syncContract(ctx, prm.ReferralContract.Common, []any{d.owner})
	if err != nil {
		return res, fmt.Errorf("sync referral contract with the chain: %w", err)
	}

	prm.Logger.Info("referral contract successfully synchronized", zap.Stringer("address", res.Referral))

	referenceToken := prm.WhitelistContract.ReferenceToken
	if referenceToken.Equals(util.Uint160{}) {
		referenceToken = res.Token
	}

	prm.Logger.Info("synchronizing whitelist contract with the chain...")

	res.Whitelist, err = d.syncContract(ctx, prm.WhitelistContract.Common, []any{
		d.owner, referenceToken, prm.LockerContract.Config.Treasury, prm.WhitelistContract.Price,
	})
	if err != nil {
		return res, fmt.Errorf("sync whitelist contract with the chain: %w", err)
	}

	prm.Logger.Info("whitelist contract successfully synchronized", zap.Stringer("address", res.Whitelist))

	cfg := prm.LockerContract.Config

	prm.Logger.Info("synchronizing locker contract with the chain...")

	res.Locker, err = d.syncContract(ctx, prm.LockerContract.Common, []any{
		d.owner, cfg.Treasury, res.Referral, res.Whitelist, res.Oracle,
		cfg.NativeFee, cfg.AssetFeeBasisPoints, cfg.DiscountBasisPoints, cfg.MaxBatch,
	})
	if err != nil {
		return res, fmt.Errorf("sync locker contract with the chain: %w", err)
	}

	prm.Logger.Info("locker contract successfully synchronized", zap.Stringer("address", res.Locker))

	prm.Logger.Info("registering the locker as a referral reward caller...")

	err = d.call(res.Referral, "addCaller", res.Locker)
	if err != nil {
		return res, fmt.Errorf("register locker in the referral contract: %w", err)
	}

	prm.Logger.Info("locker successfully registered as a referral reward caller")

	return res, nil
}

type deployer struct {
	logger *zap.Logger
	chain  Blockchain
	act    *actor.Actor
	mgmt   *management.Contract
	owner  util.Uint160
}

// syncContract deploys the contract unless it is already present on the
// chain under its computed address. The address is a function of the sender
// and the contract, so re-deployment of identical code is recognized.
func (d deployer) syncContract(ctx context.Context, prm CommonDeployPrm, deployArgs []any) (util.Uint160, error) {
	addr := state.CreateContractHash(d.act.Sender(), prm.NEF.Checksum, prm.Manifest.Name)

	st, err := d.chain.GetContractStateByHash(addr)
	if err == nil && st != nil {
		d.logger.Info("contract is already on the chain, skip deployment",
			zap.String("name", prm.Manifest.Name), zap.Stringer("address", addr))
		return addr, nil
	}

	select {
	case <-ctx.Done():
		return addr, ctx.Err()
	default:
	}

	aer, err := d.act.Wait(d.mgmt.Deploy(&prm.NEF, &prm.Manifest, deployArgs))
	if err != nil {
		return addr, fmt.Errorf("deploy transaction: %w", err)
	}
	if aer.VMState != vmstate.Halt {
		return addr, fmt.Errorf("deploy transaction resulted in %s state: %s", aer.VMState, aer.FaultException)
	}

	return addr, nil
}

func (d deployer) call(contract util.Uint160, method string, args ...any) error {
	aer, err := d.act.Wait(d.act.SendCall(contract, method, args...))
	if err != nil {
		return fmt.Errorf("'%s' transaction: %w", method, err)
	}
	if aer.VMState != vmstate.Halt {
		return fmt.Errorf("'%s' transaction resulted in %s state: %s", method, aer.VMState, aer.FaultException)
	}

	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/lockvault/lockvault-contract/contracts"
	"github.com/lockvault/lockvault-contract/deploy"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the NEP-6 wallet of the contract owner")
	walletPassword := flag.String("password", "", "Password of the wallet account")
	contractsDir := flag.String("contracts", "build", "Directory with the compiled contracts")
	treasury := flag.String("treasury", "", "Treasury account, LE script hash")

	nativeFee := flag.Int64("native-fee", 1000_0000, "Flat per-item lock creation fee in GAS fractions")
	assetFeeBP := flag.Int64("asset-fee-bp", 500, "Asset-denominated fee rate in basis points")
	discountBP := flag.Int64("discount-bp", 1000, "Referral discount in basis points")
	maxBatch := flag.Int64("max-batch", 25, "Maximum lock creation batch size")
	whitelistPrice := flag.Int64("whitelist-price", 100_0000_0000, "Whitelist purchase price in the reference token")
	initialSupply := flag.Int64("token-supply", 0, "Utility token amount minted to the owner on deployment")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing wallet path")
	case *treasury == "":
		log.Fatal("missing treasury account")
	}

	treasuryAcc, err := util.Uint160DecodeStringLE(*treasury)
	if err != nil {
		log.Fatal(fmt.Errorf("decode treasury account: %w", err))
	}

	err = run(*neoRPCEndpoint, *walletPath, *walletPassword, *contractsDir, deploy.LockerConfiguration{
		NativeFee:           *nativeFee,
		AssetFeeBasisPoints: *assetFeeBP,
		DiscountBasisPoints: *discountBP,
		MaxBatch:            *maxBatch,
		Treasury:            treasuryAcc,
	}, *whitelistPrice, *initialSupply)
	if err != nil {
		log.Fatal(err)
	}
}

func run(neoRPCEndpoint, walletPath, walletPassword, contractsDir string, cfg deploy.LockerConfiguration, whitelistPrice, initialSupply int64) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	defer func() { _ = logger.Sync() }()

	cs, err := contracts.GetLockVault(contractsDir)
	if err != nil {
		return fmt.Errorf("read compiled contracts from '%s': %w", contractsDir, err)
	}

	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return fmt.Errorf("open wallet: %w", err)
	}

	acc := w.GetAccount(w.GetChangeAddress())
	if acc == nil {
		return fmt.Errorf("wallet '%s' has no usable account", walletPath)
	}

	err = acc.Decrypt(walletPassword, w.Scrypt)
	if err != nil {
		return fmt.Errorf("unlock wallet account: %w", err)
	}

	c, err := rpcclient.New(context.Background(), neoRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("RPC client dial: %w", err)
	}

	defer c.Close()

	common := func(c contracts.Contract) deploy.CommonDeployPrm {
		return deploy.CommonDeployPrm{NEF: c.NEF, Manifest: c.Manifest}
	}

	// GetLockVault returns the contracts in deployment order: token,
	// oracle, referral, whitelist, locker.
	addrs, err := deploy.Deploy(context.Background(), deploy.Prm{
		Logger:            logger,
		Blockchain:        c,
		LocalAccount:      acc,
		TokenContract:     deploy.TokenContractPrm{Common: common(cs[0]), InitialSupply: initialSupply},
		OracleContract:    deploy.OracleContractPrm{Common: common(cs[1])},
		ReferralContract:  deploy.ReferralContractPrm{Common: common(cs[2])},
		WhitelistContract: deploy.WhitelistContractPrm{Common: common(cs[3]), Price: whitelistPrice},
		LockerContract:    deploy.LockerContractPrm{Common: common(cs[4]), Config: cfg},
	})
	if err != nil {
		return err
	}

	logger.Info("LockVault contracts are successfully deployed",
		zap.Stringer("token", addrs.Token),
		zap.Stringer("oracle", addrs.Oracle),
		zap.Stringer("referral", addrs.Referral),
		zap.Stringer("whitelist", addrs.Whitelist),
		zap.Stringer("locker", addrs.Locker))

	return nil
}

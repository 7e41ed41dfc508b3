package token

import (
	"github.com/lockvault/lockvault-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	CirculationKey string
}

const (
	symbol      = "LVT"
	decimals    = 8
	circulation = "TokenCirculation"

	balancePrefix = 'b'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner         interop.Hash160
		initialSupply int
	})

	if args.initialSupply < 0 {
		panic("validation: negative initial supply")
	}

	common.SetContractOwner(ctx, args.owner)
	if args.initialSupply > 0 {
		token.mint(ctx, args.owner, args.initialSupply)
	}

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Symbol is a NEP-17 standard method that returns the token ticker symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns the precision of token
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount of
// minted tokens.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the token balance of
// the specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers tokens from one
// account to another. It can be invoked by the account owner or by a
// contract moving funds out of its own account, which is how the locker
// contract pulls escrow in and pays it back out.
//
// Produces Transfer notification.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount)
}

// Mint creates new tokens on the given account. It can be invoked only by
// the contract owner.
//
// Produces Transfer notification with empty sender.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)

	if amount <= 0 {
		panic("validation: amount must be positive")
	}

	token.mint(ctx, to, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	return common.GetInt(ctx, t.CirculationKey)
}

func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	return common.GetInt(ctx, balanceKey(holder))
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int) bool {
	balanceFrom, ok := t.canTransfer(ctx, from, to, amount)
	if !ok {
		return false
	}

	if balanceFrom == amount {
		storage.Delete(ctx, balanceKey(from))
	} else {
		storage.Put(ctx, balanceKey(from), balanceFrom-amount)
	}

	balanceTo := t.balanceOf(ctx, to)
	storage.Put(ctx, balanceKey(to), balanceTo+amount)

	runtime.Notify("Transfer", from, to, amount)

	return true
}

// canTransfer returns the sender's balance if a transfer is authorized and
// funded.
func (t Token) canTransfer(ctx storage.Context, from, to interop.Hash160, amount int) (int, bool) {
	if amount < 0 || len(to) != interop.Hash160Len || !isUsableAddress(from) {
		runtime.Log("bad transfer arguments")
		return 0, false
	}

	balanceFrom := t.balanceOf(ctx, from)
	if balanceFrom < amount {
		runtime.Log("not enough tokens")
		return 0, false
	}

	return balanceFrom, true
}

func (t Token) mint(ctx storage.Context, to interop.Hash160, amount int) {
	if len(to) != interop.Hash160Len {
		panic("validation: invalid account script hash")
	}

	storage.Put(ctx, balanceKey(to), t.balanceOf(ctx, to)+amount)
	storage.Put(ctx, t.CirculationKey, t.getSupply(ctx)+amount)

	runtime.Notify("Transfer", interop.Hash160(nil), to, amount)
}

// isUsableAddress checks whether the sender either witnessed the transfer or
// is the calling contract moving its own funds.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		callingScriptHash := runtime.GetCallingScriptHash()
		if common.BytesEqual(callingScriptHash, addr) {
			return true
		}
	}

	return false
}

func balanceKey(holder interop.Hash160) []byte {
	return append([]byte{balancePrefix}, holder...)
}

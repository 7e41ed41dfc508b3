package deploy

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// basisPointsDenom is the denominator of all rate parameters.
const basisPointsDenom = 10000

// AssetRate is a conversion rate from the reference currency into a
// particular asset published to the oracle contract on deployment.
type AssetRate struct {
	// Asset contract address.
	Asset util.Uint160

	// Num/Denom asset units per one reference unit.
	Num   int64
	Denom int64
}

// LockerConfiguration represents the fee and batching policy the locker
// contract is initialized with.
type LockerConfiguration struct {
	// Flat per-item lock creation fee in GAS fractions.
	NativeFee int64

	// Asset-denominated fee rate in basis points, deducted from deposits
	// on the asset fee path.
	AssetFeeBasisPoints int64

	// Referral discount in basis points applied to the native fee.
	DiscountBasisPoints int64

	// Maximum number of items accepted in one creation batch.
	MaxBatch int64

	// Account collected fees are swept to.
	Treasury util.Uint160
}

// Validate checks the configuration against the constraints enforced by the
// locker contract at deployment.
func (x LockerConfiguration) Validate() error {
	if x.NativeFee < 0 {
		return errors.New("negative native fee")
	}
	if x.AssetFeeBasisPoints < 0 || x.AssetFeeBasisPoints >= basisPointsDenom {
		return fmt.Errorf("asset fee rate out of [0, %d) range", basisPointsDenom)
	}
	if x.DiscountBasisPoints < 0 || x.DiscountBasisPoints > basisPointsDenom {
		return fmt.Errorf("discount out of [0, %d] range", basisPointsDenom)
	}
	if x.MaxBatch <= 0 {
		return errors.New("non-positive max batch size")
	}
	if x.Treasury.Equals(util.Uint160{}) {
		return errors.New("zero treasury account")
	}

	return nil
}

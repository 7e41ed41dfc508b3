package deploy

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func validConfig() LockerConfiguration {
	return LockerConfiguration{
		NativeFee:           1_0000,
		AssetFeeBasisPoints: 500,
		DiscountBasisPoints: 1000,
		MaxBatch:            25,
		Treasury:            util.Uint160{1, 2, 3},
	}
}

func TestLockerConfigurationValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	for name, corrupt := range map[string]func(*LockerConfiguration){
		"negative native fee":   func(c *LockerConfiguration) { c.NativeFee = -1 },
		"asset fee rate at cap": func(c *LockerConfiguration) { c.AssetFeeBasisPoints = basisPointsDenom },
		"negative asset fee":    func(c *LockerConfiguration) { c.AssetFeeBasisPoints = -1 },
		"discount over cap":     func(c *LockerConfiguration) { c.DiscountBasisPoints = basisPointsDenom + 1 },
		"zero max batch":        func(c *LockerConfiguration) { c.MaxBatch = 0 },
		"zero treasury":         func(c *LockerConfiguration) { c.Treasury = util.Uint160{} },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			corrupt(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	t.Run("free of charge", func(t *testing.T) {
		cfg := validConfig()
		cfg.NativeFee = 0
		cfg.AssetFeeBasisPoints = 0
		cfg.DiscountBasisPoints = 0
		require.NoError(t, cfg.Validate())
	})
}

package cfg

import (
	"testing"

	"github.com/smartshop-tech/go-backend/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

func TestLoadCartCfgDefaultTaxRate(t *testing.T) {
	t.Setenv("TAX_RATE", "")

	cartCfg, err := loadCartCfg(nopLogger{})
	require.NoError(t, err)
	assert.True(t, cartCfg.TaxRate.Equal(money.DefaultTaxRate))
}

func TestLoadCartCfgTaxRateFromEnv(t *testing.T) {
	t.Setenv("TAX_RATE", "0.0825")

	cartCfg, err := loadCartCfg(nopLogger{})
	require.NoError(t, err)
	assert.Equal(t, "0.0825", cartCfg.TaxRate.String())
}

func TestLoadCartCfgRejectsNegativeTaxRate(t *testing.T) {
	t.Setenv("TAX_RATE", "-0.10")

	_, err := loadCartCfg(nopLogger{})
	require.Error(t, err)
}

package payments

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subscription-box/internal/engine"
)

func TestSimulatorApprovesCharge(t *testing.T) {
	sim := NewSimulator()
	amount := decimal.RequireFromString("19.99")

	out, err := sim.Charge(context.Background(), engine.ChargeRequest{Amount: amount, Method: "card"})
	require.NoError(t, err)

	assert.True(t, out.Approved)
	assert.True(t, out.Amount.Equal(amount))
	assert.Equal(t, "card", out.Method)
	assert.NotEmpty(t, out.TransactionID)
	assert.Empty(t, out.DeclineReason)
}

func TestSimulatorDefaultsMethod(t *testing.T) {
	sim := NewSimulator()
	out, err := sim.Charge(context.Background(), engine.ChargeRequest{Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.Equal(t, "card", out.Method)
}

func TestSimulatorTransactionIDsAreDistinct(t *testing.T) {
	sim := NewSimulator()
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		out, err := sim.Charge(context.Background(), engine.ChargeRequest{Amount: decimal.NewFromInt(5)})
		require.NoError(t, err)
		assert.False(t, seen[out.TransactionID], "duplicate transaction id %s", out.TransactionID)
		seen[out.TransactionID] = true
	}
}

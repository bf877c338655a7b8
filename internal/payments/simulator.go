package payments

import (
	"context"

	"github.com/google/uuid"

	"subscription-box/internal/engine"
)

// Simulator stands in for a card processor and approves every charge. The
// outcome carries the same fields a real processor would return, so callers
// still have to branch on Approved and a real integration can slot in behind
// the same interface.
type Simulator struct{}

func NewSimulator() *Simulator {
	return &Simulator{}
}

func (s *Simulator) Charge(_ context.Context, req engine.ChargeRequest) (engine.Outcome, error) {
	method := req.Method
	if method == "" {
		method = "card"
	}
	return engine.Outcome{
		Approved:      true,
		TransactionID: "mock_" + uuid.NewString(),
		Amount:        req.Amount,
		Method:        method,
	}, nil
}

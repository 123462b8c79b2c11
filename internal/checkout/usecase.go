package checkout

import (
	"context"

	"github.com/openretail/supermart-sim/internal/model"
)

type UseCase interface {
	// Checkout walks one customer through a full shopping session against
	// the live store. The returned purchase record is always non-nil; a
	// non-nil error means the interactive channel died mid-session, in
	// which case the record carries a zero cost so the sales report
	// treats it as aborted. Stock and funds mutations made before the
	// abort stand, matching the sequential in-memory model.
	Checkout(ctx context.Context, session SessionIO) (*model.CustomerPurchase, error)
}

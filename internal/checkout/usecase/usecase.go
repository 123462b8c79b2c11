package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/openretail/supermart-sim/internal/checkout"
	"github.com/openretail/supermart-sim/internal/logger"
	"github.com/openretail/supermart-sim/internal/membership"
	"github.com/openretail/supermart-sim/internal/model"
	"github.com/openretail/supermart-sim/internal/store"
)

// ExitAisle is the sentinel aisle choice that ends the shopping loop.
const ExitAisle = -1

var one = decimal.NewFromInt(1)

type checkoutUseCase struct {
	repo    store.Repository
	members membership.Directory
	taxRate decimal.Decimal
	logger  logger.ZapLogger
}

func NewCheckoutUseCase(repo store.Repository, members membership.Directory, taxRate decimal.Decimal, log logger.ZapLogger) checkout.UseCase {
	return &checkoutUseCase{
		repo:    repo,
		members: members,
		taxRate: taxRate,
		logger:  log,
	}
}

func (uc *checkoutUseCase) Checkout(ctx context.Context, session checkout.SessionIO) (*model.CustomerPurchase, error) {
	purchase := &model.CustomerPurchase{
		ID:           uuid.New().String(),
		PurchaseCost: decimal.Zero,
		CreatedAt:    time.Now(),
	}

	name, err := session.CustomerName()
	if err != nil {
		return uc.abort(purchase, err)
	}
	purchase.Name = name

	isMember := uc.members.Lookup(name)
	if isMember {
		session.WelcomeBack(name)
	}

	cartTotal := decimal.Zero

	// The membership decision happens once, before any shopping, and is
	// final for the session.
	if !isMember {
		fee := uc.repo.MembershipFee()
		join, err := session.OfferMembership(fee)
		if err != nil {
			return uc.abort(purchase, err)
		}
		if join {
			uc.members.Enroll(name)
			purchase.BoughtMembership = true
			isMember = true
			cartTotal = cartTotal.Add(fee)
			uc.logger.Info("enrolled new member",
				zap.String("customer", name),
				zap.String("fee", fee.StringFixed(2)),
			)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return uc.abort(purchase, err)
		}

		session.ShowCartTotal(cartTotal)
		session.ShowAisles(uc.repo.Aisles())

		index, err := session.AisleIndex()
		if err != nil {
			return uc.abort(purchase, err)
		}

		if index == ExitAisle {
			// Sales tax is applied exactly once, on the way out.
			total := cartTotal.Mul(one.Add(uc.taxRate))
			purchase.PurchaseCost = total
			session.ShowFinalTotal(total)
			uc.logger.Info("checkout complete",
				zap.String("customer", name),
				zap.Int("items", purchase.NumberItems),
				zap.String("total", total.StringFixed(2)),
			)
			return purchase, nil
		}

		aisle, ok := uc.repo.Aisle(index)
		if !ok {
			session.ReportInvalid(checkout.InvalidAisle, strconv.Itoa(index))
			continue
		}
		session.ShowItems(index, aisle)

		rawName, err := session.ItemName()
		if err != nil {
			return uc.abort(purchase, err)
		}
		// Item names are stored with underscores translated to spaces,
		// so the same normalization applies to what the customer types.
		itemName := strings.ReplaceAll(rawName, "_", " ")

		item, ok := uc.repo.FindItem(index, itemName)
		if !ok {
			session.ReportInvalid(checkout.UnknownItem, itemName)
			continue
		}
		if item.Quantity <= 0 {
			session.ReportInvalid(checkout.OutOfStock, itemName)
			continue
		}

		quantity, err := session.Quantity()
		if err != nil {
			return uc.abort(purchase, err)
		}
		if quantity <= 0 || quantity > item.Quantity {
			session.ReportInvalid(checkout.InvalidQuantity, strconv.Itoa(quantity))
			continue
		}

		unit := item.RegularPrice
		if isMember {
			unit = item.MemberPrice
		}
		qty := decimal.NewFromInt(int64(quantity))
		lineTotal := unit.Mul(qty)

		if err := uc.repo.DeductStock(index, itemName, quantity); err != nil {
			// Quantity was validated against current stock just above,
			// and nothing runs concurrently, so this is a programming
			// error rather than a customer mistake.
			uc.logger.Error("stock deduction rejected", zap.Error(err))
			session.ReportInvalid(checkout.InvalidQuantity, strconv.Itoa(quantity))
			continue
		}

		cartTotal = cartTotal.Add(lineTotal)
		purchase.NumberItems += quantity

		// The realized profit of this line is credited immediately, not
		// at session end.
		profit := lineTotal.Sub(item.Wholesale.Mul(qty))
		uc.repo.CreditFunds(profit)

		uc.logger.Debug("line item sold",
			zap.String("item", itemName),
			zap.Int("quantity", quantity),
			zap.String("line_total", lineTotal.StringFixed(2)),
			zap.String("profit", profit.StringFixed(2)),
		)
	}
}

// abort zeroes the purchase cost so the record reads as an incomplete
// session, then surfaces the channel failure to the caller.
func (uc *checkoutUseCase) abort(purchase *model.CustomerPurchase, err error) (*model.CustomerPurchase, error) {
	purchase.PurchaseCost = decimal.Zero
	uc.logger.Warn("checkout session aborted",
		zap.String("customer", purchase.Name),
		zap.Error(err),
	)
	return purchase, fmt.Errorf("checkout session aborted: %w", err)
}

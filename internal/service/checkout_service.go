package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vineyard/internal/cart"
	"vineyard/internal/metrics"
	"vineyard/internal/model"
	"vineyard/internal/pricing"
	"vineyard/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	cartRepo    repository.CartRepository
	receiptRepo repository.ReceiptRepository
	taxRate     decimal.Decimal
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	cartRepo repository.CartRepository,
	receiptRepo repository.ReceiptRepository,
	taxRate decimal.Decimal,
	m *metrics.Metrics,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		cartRepo:    cartRepo,
		receiptRepo: receiptRepo,
		taxRate:     taxRate,
		metrics:     m,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout snapshots the owner's cart into a pending receipt.
func (s *checkoutService) Checkout(ctx context.Context, ownerID string, req *model.CheckoutRequest) (*model.Receipt, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}

	tip, err := tipFromRequest(req)
	if err != nil {
		return nil, err
	}

	c, err := s.cartRepo.Get(ctx, ownerID)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to load cart")
		return nil, fmt.Errorf("failed to check out: %w", err)
	}
	if c == nil || cart.IsEmpty(*c) {
		return nil, model.ErrCartEmpty
	}

	receipt, err := pricing.BuildReceipt(*c, s.taxRate, tip)
	if err != nil {
		s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("failed to price cart")
		return nil, err
	}
	receipt.ID = uuid.New()
	receipt.OwnerID = ownerID
	receipt.CreatedAt = time.Now().UTC()

	if err := s.receiptRepo.Create(ctx, &receipt); err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to store receipt")
		return nil, fmt.Errorf("failed to check out: %w", err)
	}

	s.metrics.IncCheckout()
	s.logger.Info().
		Str("receipt_id", receipt.ID.String()).
		Str("owner_id", ownerID).
		Str("total", receipt.Total.StringFixed(2)).
		Msg("receipt created")

	return &receipt, nil
}

// Purchase finalises a pending receipt. The receipt is marked purchased and
// the owner's live cart is cleared in one transaction.
func (s *checkoutService) Purchase(ctx context.Context, id uuid.UUID, req *model.PurchaseRequest) (receipt *model.Receipt, err error) {
	receipt, err = s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("receipt_id", id.String()).Msg("failed to load receipt")
		return nil, fmt.Errorf("failed to purchase: %w", err)
	}
	if receipt == nil {
		return nil, model.ErrReceiptNotFound
	}
	if receipt.Purchased {
		return nil, model.ErrReceiptFinalized
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &model.InvalidInputError{Field: "name", Reason: "must not be blank"}
	}

	var card *model.CardSummary
	switch {
	case req.PaymentType == model.PaymentCash:
	case isCardPayment(req.PaymentType):
		if card, err = summariseCard(req); err != nil {
			return nil, err
		}
	default:
		return nil, model.ErrInvalidPayment
	}

	now := time.Now().UTC()
	receipt.Purchased = true
	receipt.CustomerName = name
	receipt.PaymentType = req.PaymentType
	receipt.Card = card
	receipt.PurchasedAt = &now

	tx, err := s.receiptRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to purchase: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.receiptRepo.MarkPurchased(ctx, tx, receipt); err != nil {
		return nil, err
	}
	if err = s.cartRepo.DeleteTx(ctx, tx, receipt.OwnerID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("receipt_id", id.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to purchase: %w", err)
	}

	s.metrics.ObservePurchase(receipt.PaymentType, receipt.Total.InexactFloat64())
	s.logger.Info().
		Str("receipt_id", id.String()).
		Str("owner_id", receipt.OwnerID).
		Str("payment_type", receipt.PaymentType).
		Msg("receipt purchased")

	return receipt, nil
}

// GetReceipt retrieves a receipt by ID.
func (s *checkoutService) GetReceipt(ctx context.Context, id uuid.UUID) (*model.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("receipt_id", id.String()).Msg("failed to get receipt")
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	if receipt == nil {
		return nil, model.ErrReceiptNotFound
	}
	return receipt, nil
}

// History retrieves an owner's purchased receipts, newest first.
func (s *checkoutService) History(ctx context.Context, ownerID string, filter model.OrderFilter) ([]model.Receipt, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}

	receipts, err := s.receiptRepo.ListPurchased(ctx, ownerID, filter)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to get order history: %w", err)
	}
	return receipts, nil
}

// tipFromRequest turns the optional tip fields into a pricing.Tip.
func tipFromRequest(req *model.CheckoutRequest) (pricing.Tip, error) {
	if req == nil {
		return pricing.NoTip(), nil
	}
	switch {
	case req.TipRate != nil && req.TipAmount != nil:
		return pricing.Tip{}, &model.InvalidConfigurationError{Parameter: "tip", Reason: "set either tipRate or tipAmount, not both"}
	case req.TipRate != nil:
		return pricing.Percentage(*req.TipRate), nil
	case req.TipAmount != nil:
		return pricing.FixedAmount(*req.TipAmount), nil
	default:
		return pricing.NoTip(), nil
	}
}

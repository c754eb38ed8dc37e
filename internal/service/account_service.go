package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vineyard/internal/cart"
	"vineyard/internal/model"
	"vineyard/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// accountService implements AccountService.
type accountService struct {
	userRepo repository.UserRepository
	cartRepo repository.CartRepository
	taxRate  decimal.Decimal
	hashCost int
	logger   zerolog.Logger
}

// NewAccountService creates a new account service.
func NewAccountService(
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	taxRate decimal.Decimal,
	logger zerolog.Logger,
) AccountService {
	return &accountService{
		userRepo: userRepo,
		cartRepo: cartRepo,
		taxRate:  taxRate,
		hashCost: bcrypt.DefaultCost,
		logger:   logger.With().Str("service", "account").Logger(),
	}
}

// SignUp creates an account with a bcrypt-hashed password.
func (s *accountService) SignUp(ctx context.Context, req *model.SignUpRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, &model.InvalidInputError{Field: "username", Reason: "must not be blank"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			s.logger.Debug().Str("username", username).Msg("username already taken")
			return nil, err
		}
		s.logger.Error().Err(err).Str("username", username).Msg("failed to create user")
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user signed up")
	return user, nil
}

// LogIn verifies credentials. When a guest cart id is supplied the guest
// cart is reconciled into the user's cart and removed, in one transaction.
func (s *accountService) LogIn(ctx context.Context, req *model.LogInRequest) (resp *model.LogInResponse, err error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up user")
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	if user == nil {
		return nil, model.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Debug().Str("username", user.Username).Msg("password mismatch")
		return nil, model.ErrInvalidCredentials
	}

	ownerID := user.ID.String()

	tx, err := s.cartRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	userCart, err := s.cartRepo.GetForUpdate(ctx, tx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user cart: %w", err)
	}
	merged := model.Cart{OwnerID: ownerID}
	if userCart != nil {
		merged = *userCart
	}

	guestID := strings.TrimSpace(req.GuestCartID)
	if guestID != "" && guestID != ownerID {
		guestCart, err := s.cartRepo.GetForUpdate(ctx, tx, guestID)
		if err != nil {
			return nil, fmt.Errorf("failed to load guest cart: %w", err)
		}

		if guestCart != nil {
			merged = cart.Reconcile(merged, *guestCart)
			merged.OwnerID = ownerID
			merged.UpdatedAt = time.Now().UTC()

			if err = s.cartRepo.SaveTx(ctx, tx, &merged); err != nil {
				return nil, fmt.Errorf("failed to save merged cart: %w", err)
			}
			if err = s.cartRepo.DeleteTx(ctx, tx, guestID); err != nil {
				return nil, fmt.Errorf("failed to discard guest cart: %w", err)
			}

			s.logger.Info().
				Str("user_id", ownerID).
				Str("guest_id", guestID).
				Int("guest_lines", len(guestCart.Lines)).
				Msg("guest cart merged into user cart")
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("user_id", ownerID).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	view, err := viewOf(merged, s.taxRate)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", ownerID).Msg("user logged in")
	return &model.LogInResponse{User: *user, Cart: *view}, nil
}

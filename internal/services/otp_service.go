package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/suk-6/pickr-server/domain"
)

const smsTemplate = "[Pickr] Enter verification code [%s]."

// OTPServiceImpl implements domain.OTPService. One challenge is carried by
// two independent artifacts that must agree on the user id: a signed phone
// binding token handed back to the caller, and a numeric code stored in the
// volatile store and delivered over SMS.
type OTPServiceImpl struct {
	signer   domain.TokenSigner
	store    domain.VolatileStore
	notifier domain.NotificationService
	userRepo domain.UserRepository
	ttl      time.Duration
}

// NewOTPService creates a new OTP service. The ttl bounds both the binding
// token and the stored code.
func NewOTPService(signer domain.TokenSigner, store domain.VolatileStore, notifier domain.NotificationService, userRepo domain.UserRepository, ttl time.Duration) domain.OTPService {
	return &OTPServiceImpl{
		signer:   signer,
		store:    store,
		notifier: notifier,
		userRepo: userRepo,
		ttl:      ttl,
	}
}

func phoneKey(userID string) string {
	return "PHONE/" + userID
}

// Request implements domain.OTPService. Any code from a prior request is
// dropped first, so at most one code is live per user. A failed SMS send
// fails the whole request; the already-stored code is not rolled back and
// stays until it expires or the next request overwrites it.
func (s *OTPServiceImpl) Request(ctx context.Context, userID, phone string) (*domain.PhoneChallenge, error) {
	if err := s.store.Delete(ctx, phoneKey(userID)); err != nil {
		return nil, fmt.Errorf("failed to invalidate previous code: %w", err)
	}

	phoneToken, err := s.signer.SignPhoneToken(userID, phone, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to sign phone binding token: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := s.store.Set(ctx, phoneKey(userID), code, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to store verification code: %w", err)
	}

	if err := s.notifier.SendSMS(phone, fmt.Sprintf(smsTemplate, code)); err != nil {
		return nil, fmt.Errorf("failed to send verification SMS: %w", err)
	}

	return &domain.PhoneChallenge{
		PhoneToken: phoneToken,
		ExpiresAt:  time.Now().Add(s.ttl),
	}, nil
}

// Confirm implements domain.OTPService. The code is single-use: it is
// consumed before the phone number is committed, so a failed commit cannot
// be retried with the same code.
func (s *OTPServiceImpl) Confirm(ctx context.Context, userID, phoneToken, code string) error {
	claims, err := s.signer.VerifyPhoneToken(phoneToken)
	if err != nil {
		return err
	}

	if claims.UserID != userID {
		return domain.ErrPhoneBindingMismatch
	}

	stored, err := s.store.Get(ctx, phoneKey(userID))
	if errors.Is(err, domain.ErrValueNotFound) {
		// Expired or never requested, indistinguishable from a wrong code.
		return domain.ErrOTPMismatch
	}
	if err != nil {
		return fmt.Errorf("failed to read verification code: %w", err)
	}

	if stored != code {
		return domain.ErrOTPMismatch
	}

	if err := s.store.Delete(ctx, phoneKey(userID)); err != nil {
		return fmt.Errorf("failed to consume verification code: %w", err)
	}

	if err := s.userRepo.UpdatePhone(ctx, claims.UserID, claims.Phone); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPhoneUpdateFailed, err)
	}

	return nil
}

// generateCode produces a uniformly random six digit code in [100000, 999999]
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

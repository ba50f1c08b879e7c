package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/notification"
)

const (
	verificationCodeValidity = 10 * time.Minute
	verificationCodeMin      = 100000
	verificationCodeMax      = 999999
)

// VerificationService confirms with the reporter that an alert is real.
// The SMS code flow is optional: the orchestrator auto-verifies when
// dispatching, so a reporter is never blocked on it.
type VerificationService interface {
	// RequestCode issues a one-time SMS code to the reporting first
	// aider's phone.
	RequestCode(ctx context.Context, actor models.Actor, reference string) error

	// ConfirmCode checks a submitted code against the latest pending
	// verification. A wrong code returns (false, nil); a matching code
	// marks the alert verified.
	ConfirmCode(ctx context.Context, actor models.Actor, reference, code string) (bool, error)
}

type verificationService struct {
	repo   AlertRepository
	alerts AlertService
	sender notification.Sender
	logger *logrus.Logger
}

// NewVerificationService creates a VerificationService.
func NewVerificationService(repo AlertRepository, alerts AlertService, sender notification.Sender, logger *logrus.Logger) VerificationService {
	return &verificationService{
		repo:   repo,
		alerts: alerts,
		sender: sender,
		logger: logger,
	}
}

func (s *verificationService) RequestCode(ctx context.Context, actor models.Actor, reference string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "verification",
		"method":   "RequestCode",
		"alert_id": reference,
	})
	log.Info("Issuing verification code")

	if actor.Phone == "" {
		return apperrors.NewValidation("phone", "no phone number on the caller's account")
	}

	alert, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return fmt.Errorf("service: could not get alert: %w", err)
	}
	if err := authorizeAlertAccess(actor, alert); err != nil {
		return err
	}
	if alert.IsVerified {
		return apperrors.NewValidation("status", "alert is already verified")
	}

	code := fmt.Sprintf("%d", rand.Intn(verificationCodeMax-verificationCodeMin+1)+verificationCodeMin)
	verification := &models.AlertVerification{
		AlertID:          alert.ID,
		Method:           models.VerifyBySMS,
		VerificationCode: code,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.repo.CreateVerification(ctx, verification); err != nil {
		log.WithError(err).Error("Failed to store verification")
		return fmt.Errorf("service: could not store verification: %w", err)
	}

	// The code must be stored before the SMS leaves; the send itself is
	// best-effort and the reporter can request another.
	msg := notification.Message{
		Channel:   models.ChannelSMS,
		Recipient: actor.Phone,
		Body:      fmt.Sprintf("Emergency alert verification code: %s. Valid for 10 minutes. Alert ref %s.", code, alert.AlertID),
	}
	if _, err := s.sender.Send(ctx, msg); err != nil {
		log.WithError(err).Warn("Could not send verification SMS")
	}

	if err := s.repo.IncrementVerificationAttempts(ctx, alert.ID); err != nil {
		log.WithError(err).Warn("Could not count verification attempt")
	}

	log.Info("Verification code issued")
	return nil
}

func (s *verificationService) ConfirmCode(ctx context.Context, actor models.Actor, reference, code string) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "verification",
		"method":   "ConfirmCode",
		"alert_id": reference,
	})
	log.Info("Confirming verification code")

	alert, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return false, fmt.Errorf("service: could not get alert: %w", err)
	}
	if err := authorizeAlertAccess(actor, alert); err != nil {
		return false, err
	}
	if alert.IsVerified {
		return true, nil
	}

	now := time.Now().UTC()
	verification, err := s.repo.LatestPendingVerification(ctx, alert.ID, now.Add(-verificationCodeValidity))
	if err != nil {
		return false, fmt.Errorf("service: could not load verification: %w", err)
	}
	if verification == nil {
		return false, apperrors.NewValidation("code", "no verification pending or the code has expired")
	}

	verification.ResponseReceived = true
	verification.RespondedAt = &now

	if verification.VerificationCode != code {
		if err := s.repo.SaveVerification(ctx, verification); err != nil {
			log.WithError(err).Warn("Could not record failed verification attempt")
		}
		log.Warn("Verification code mismatch")
		return false, nil
	}

	verification.IsSuccessful = true
	if err := s.repo.SaveVerification(ctx, verification); err != nil {
		return false, fmt.Errorf("service: could not save verification: %w", err)
	}

	if _, err := s.alerts.UpdateStatus(ctx, reference, models.AlertVerified, alert.ReporterID, map[string]any{
		"verification_method": "sms_code",
	}); err != nil {
		return false, fmt.Errorf("service: could not mark alert verified: %w", err)
	}

	log.Info("Alert verified by SMS code")
	return true, nil
}

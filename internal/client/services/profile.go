package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/userdesk/userdesk/internal/client/api"
	"github.com/userdesk/userdesk/internal/logging"
	"github.com/userdesk/userdesk/internal/passwordx"
)

// ProfileService is authenticated self-service: a draft over the last known
// identity snapshot plus the password-change flow. The server stays
// authoritative — after a successful save the identity is re-resolved rather
// than trusting the local draft.
type ProfileService interface {
	Reset()
	Draft() (fullName, email string)
	SetFullName(v string)
	SetEmail(v string)
	Save(ctx context.Context) error
	ChangePassword(ctx context.Context, oldPassword, newPassword, confirmNewPassword string) error
}

type profileService struct {
	client   api.Client
	session  SessionService
	log      logging.Logger
	validate *validator.Validate

	fullName string
	email    string
}

// NewProfileService constructs a ProfileService with a draft initialized
// from the current identity.
func NewProfileService(client api.Client, session SessionService, log logging.Logger) ProfileService {
	s := &profileService{client: client, session: session, log: log, validate: validator.New()}
	s.Reset()
	return s
}

// Reset discards unsaved edits, reverting the draft to the last known
// identity snapshot.
func (s *profileService) Reset() {
	if u := s.session.CurrentUser(); u != nil {
		s.fullName, s.email = u.FullName, u.Email
		return
	}
	s.fullName, s.email = "", ""
}

func (s *profileService) Draft() (string, string) { return s.fullName, s.email }
func (s *profileService) SetFullName(v string)    { s.fullName = v }
func (s *profileService) SetEmail(v string)       { s.email = v }

// Save issues the partial update. A draft that is blank in both fields after
// trimming is rejected locally with no network call. On success the identity
// is re-resolved so the draft reflects whatever the server accepted or
// normalized.
func (s *profileService) Save(ctx context.Context) error {
	fullName := strings.TrimSpace(s.fullName)
	email := strings.TrimSpace(s.email)

	if fullName == "" && email == "" {
		return ErrNothingToUpdate
	}
	if email != "" {
		if err := s.validate.Var(email, "email"); err != nil {
			return ErrInvalidEmail
		}
	}

	if _, err := s.client.UpdateProfile(ctx, s.fullName, s.email); err != nil {
		return err
	}

	if err := s.session.LoadIdentity(ctx); err != nil {
		s.log.Warn(ctx, "identity refresh after profile update failed", "error", err)
	}
	s.Reset()
	return nil
}

// ChangePassword runs the validation chain, short-circuiting at the first
// failure; the mutation is only issued once every check passes.
func (s *profileService) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmNewPassword string) error {
	if oldPassword == "" || newPassword == "" || confirmNewPassword == "" {
		return ErrAllFieldsRequired
	}
	if newPassword == oldPassword {
		return ErrSamePassword
	}
	if newPassword != confirmNewPassword {
		return ErrPasswordsDoNotMatch
	}
	if passwordx.Evaluate(newPassword).Label != passwordx.LabelStrong {
		return ErrPasswordTooWeak
	}

	return s.client.ChangePassword(ctx, oldPassword, newPassword, confirmNewPassword)
}

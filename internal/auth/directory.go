// Package auth implements the account directory: registration, login,
// logout and profile mutation, with a single active session per
// Directory instance.
package auth

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/logger"
	"spendwise/internal/models"
	"spendwise/internal/store"
)

// session tracks the currently authenticated identity. The user pointer
// is a non-owning reference into the directory, cleared on logout.
type session struct {
	user *models.User
	id   string
}

// Directory validates and manages user identity and the active session.
type Directory struct {
	store    *store.Store
	validate *validator.Validate
	log      *zap.SugaredLogger
	session  *session
}

// NewDirectory creates a Directory backed by the given store.
func NewDirectory(st *store.Store) *Directory {
	return &Directory{
		store:    st,
		validate: newValidator(),
		log:      logger.Named("auth"),
	}
}

// Register validates the supplied fields and persists a new user with a
// zero monthly budget. The password is stored as a bcrypt hash, never
// in the clear. Returns a field-specific validation error on failure.
func (d *Directory) Register(username, password, email, fullName string) error {
	input := registerInput{
		Username: username,
		Password: password,
		Email:    email,
		FullName: fullName,
	}
	if err := d.validateRegister(input); err != nil {
		return err
	}

	if d.store.UserExists(username) {
		return apperrors.ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}

	user := &models.User{
		Username:      username,
		Password:      string(hash),
		Email:         email,
		FullName:      fullName,
		MonthlyBudget: 0,
	}
	if err := d.store.SaveUser(user); err != nil {
		return err
	}

	d.log.Infow("user registered", "username", username)
	return nil
}

// Authenticate verifies a username and password pair against the
// stored credential without touching the session. The returned error is
// always ErrInvalidCredentials on mismatch; it does not distinguish an
// unknown user from a wrong password.
func (d *Directory) Authenticate(username, password string) (*models.User, error) {
	user, err := d.store.GetUser(username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates the user and, on success, establishes the session
// with a fresh opaque session ID.
func (d *Directory) Login(username, password string) bool {
	user, err := d.Authenticate(username, password)
	if err != nil {
		d.log.Infow("login rejected", "username", username, "error", err)
		return false
	}

	d.session = &session{user: user, id: uuid.NewString()}
	d.log.Infow("user logged in", "username", username, "session_id", d.session.id)
	return true
}

// Logout clears the active session. Idempotent.
func (d *Directory) Logout() {
	if d.session != nil {
		d.log.Infow("user logged out", "username", d.session.user.Username)
	}
	d.session = nil
}

// CurrentUser returns the session user, or nil when nobody is logged in.
func (d *Directory) CurrentUser() *models.User {
	if d.session == nil {
		return nil
	}
	return d.session.user
}

// IsLoggedIn reports whether a session is active.
func (d *Directory) IsLoggedIn() bool {
	return d.session != nil
}

// SessionID returns the opaque identifier of the active session, or ""
// when nobody is logged in. Collaborators may use it for correlation
// but must never treat it as a credential.
func (d *Directory) SessionID() string {
	if d.session == nil {
		return ""
	}
	return d.session.id
}

// UpdateProfile mutates the session user's profile and persists it.
// Returns false when no session is active or the write fails. Unlike
// registration, the new values are not re-validated; callers own any
// format checks on update.
func (d *Directory) UpdateProfile(fullName, email string, monthlyBudget int64) bool {
	user, err := d.requireSession()
	if err != nil {
		d.log.Debugw("profile update rejected", "error", err)
		return false
	}
	user.FullName = fullName
	user.Email = email
	user.MonthlyBudget = monthlyBudget

	if err := d.store.SaveUser(user); err != nil {
		d.log.Errorw("failed to persist profile update", "username", user.Username, "error", err)
		return false
	}
	return true
}

// ChangePassword replaces the session user's credential if the old
// password verifies against the stored hash. Minimum length is not
// enforced here; that check belongs to the registration boundary.
func (d *Directory) ChangePassword(oldPassword, newPassword string) bool {
	user, err := d.requireSession()
	if err != nil {
		d.log.Debugw("password change rejected", "error", err)
		return false
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		d.log.Errorw("failed to hash new password", "username", user.Username, "error", err)
		return false
	}

	user.Password = string(hash)
	if err := d.store.SaveUser(user); err != nil {
		d.log.Errorw("failed to persist password change", "username", user.Username, "error", err)
		return false
	}

	d.log.Infow("password changed", "username", user.Username)
	return true
}

// requireSession returns the session user, or ErrNoSession when nobody
// is logged in.
func (d *Directory) requireSession() (*models.User, error) {
	if d.session == nil {
		return nil, apperrors.ErrNoSession
	}
	return d.session.user, nil
}

// validateRegister runs the validator and maps the first failure to a
// field-specific AppError.
func (d *Directory) validateRegister(input registerInput) error {
	err := d.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}

	switch verrs[0].Field() {
	case "Username":
		return apperrors.ErrInvalidUsername
	case "Email":
		return apperrors.ErrInvalidEmail
	case "Password":
		return apperrors.ErrPasswordTooShort
	default:
		return apperrors.WithField(apperrors.ErrInvalidInput, verrs[0].Field(), verrs[0].Error())
	}
}

package usecase

import (
	"context"
	"time"

	"tablebook/internal/domain/user"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/pkg/jwt"
	"tablebook/internal/pkg/password"
	"tablebook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error)
}

// TokenIssuer mints a bearer credential after a successful sign-in.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, email string) (string, error)
}

// TokenVerifier is the authentication gate the transports consult before
// any table or reservation operation. The core only cares that a bearer
// credential resolves to claims; how it is verified is a deployment
// concern.
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

type SignUpParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (p SignUpParams) Validate() error {
	if _, err := user.NewEmail(p.Email); err != nil {
		return validationError("email", "must be a valid email address")
	}
	if err := password.ValidatePolicy(p.Password); err != nil {
		return validationError("password", "must be at least 12 characters from [A-Za-z0-9$%^*-_]")
	}
	return nil
}

type AuthUseCase interface {
	SignUp(ctx context.Context, params SignUpParams) error
	SignIn(ctx context.Context, email, pass string) (string, error)
}

type authUseCaseImpl struct {
	userRepo     UserRepository
	issuer       TokenIssuer
	storeTimeout time.Duration
}

func NewAuthUseCase(userRepo UserRepository, issuer TokenIssuer, storeTimeout time.Duration) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:     userRepo,
		issuer:       issuer,
		storeTimeout: storeTimeout,
	}
}

func (u *authUseCaseImpl) SignUp(ctx context.Context, params SignUpParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	email, err := user.NewEmail(params.Email)
	if err != nil {
		return validationError("email", "must be a valid email address")
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return errs.Wrap(err, "failed to hash password")
	}

	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	account := user.NewUser(email, hash, params.FirstName, params.LastName)
	if err := u.userRepo.Create(ctx, account); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrUserAlreadyExists
		}
		return classifyStoreErr(err, "failed to create user")
	}

	return nil
}

func (u *authUseCaseImpl) SignIn(ctx context.Context, email, pass string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	account, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", classifyStoreErr(err, "failed to find user")
	}

	if err := password.ComparePassword(account.PasswordHash, pass); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.issuer.GenerateToken(account.ID, account.Email)
	if err != nil {
		return "", errs.Wrap(err, "failed to issue token")
	}

	return token, nil
}

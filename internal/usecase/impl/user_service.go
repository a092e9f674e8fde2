// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "empdir/internal/delivery/context"
	"empdir/internal/domain/entity"
	"empdir/internal/domain/repository"
	"empdir/internal/domain/service"
	"empdir/internal/usecase"
	"empdir/internal/validation"

	"github.com/pkg/errors"
)

const invalidCredentialsMessage = "Invalid credentials"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokenSvc  service.TokenService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		validator: validator,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new user, hashes their password and issues a token.
// Duplicate username or email comes back as a failure envelope, both from
// the pre-check and from the store's unique index when a race slips past it.
func (srv *userService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.AuthResult, error) {
	if violations := srv.validator.Struct(input); violations != nil {
		return &usecase.AuthResult{Success: false, Message: joinViolations(violations)}, nil
	}

	exists, err := srv.userRepo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check user uniqueness")
	}
	if exists {
		return &usecase.AuthResult{Success: false, Message: "Username or email already exists"}, nil
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return &usecase.AuthResult{Success: false, Message: "Username or email already exists"}, nil
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.tokenSvc.Issue(service.IdentityClaims{UserID: user.ID, Username: user.Username})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("User signed up", slog.String("username", user.Username))

	return &usecase.AuthResult{
		Success: true,
		Message: "Signup successful",
		Token:   token,
		User:    user,
	}, nil
}

// Login verifies credentials and issues a token. An unknown identifier and
// a wrong password yield the identical failure envelope so the response
// cannot be used to enumerate users.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthResult, error) {
	user, err := srv.userRepo.FindByUsernameOrEmail(ctx, input.UsernameOrEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &usecase.AuthResult{Success: false, Message: invalidCredentialsMessage}, nil
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("identifier", input.UsernameOrEmail))

		return &usecase.AuthResult{Success: false, Message: invalidCredentialsMessage}, nil
	}

	token, err := srv.tokenSvc.Issue(service.IdentityClaims{UserID: user.ID, Username: user.Username})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthResult{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    user,
	}, nil
}

func joinViolations(violations []validation.FieldViolation) string {
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.Message)
	}

	return strings.Join(messages, "; ")
}

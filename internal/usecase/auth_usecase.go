package usecase

import (
	"context"
	"errors"
	"strings"

	"workmatch/internal/domain/user"
	"workmatch/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !isValidPassword(in.Password) {
		return user.User{}, "", "", ErrInvalidInput
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	if exists {
		return user.User{}, "", "", ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}

	usr := user.User{ID: uuid.New(), Email: email, PasswordHash: string(hash)}
	if err := u.users.CreateUser(ctx, usr); err != nil {
		// Lost a race with a concurrent registration for the same email.
		if exists, exErr := u.users.ExistsByEmail(ctx, email); exErr == nil && exists {
			return user.User{}, "", "", ErrEmailAlreadyRegistered
		}
		return user.User{}, "", "", ErrInternal
	}

	created, err := u.users.GetUserByID(ctx, usr.ID)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	return u.issueTokens(created)
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, "", "", ErrInvalidCredentials
	}

	usr, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", "", ErrInvalidCredentials
		}
		return user.User{}, "", "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", "", ErrInvalidCredentials
	}

	return u.issueTokens(usr)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInternal
	}

	_, access, refresh, err := u.issueTokens(usr)
	return access, refresh, err
}

func (u *Auth) issueTokens(usr user.User) (user.User, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	usr.PasswordHash = ""
	return usr, access, refresh, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	if !strings.Contains(email, "@") {
		return ""
	}
	return email
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/bilingual-portfolio-backend/config"
	"github.com/rpupo63/bilingual-portfolio-backend/database"
	"github.com/rpupo63/bilingual-portfolio-backend/errs"
	"github.com/rpupo63/bilingual-portfolio-backend/models"
)

const (
	tokenIssuer = "portfolio-backend"
	// bcrypt already salts each hash; cost 12 keeps verification around a
	// quarter second on current hardware.
	defaultBcryptCost = 12
)

// AuthService verifies the single admin credential pair and issues the
// opaque session tokens that guard every mutating route.
type AuthService struct {
	db         database.Database
	secret     []byte
	sessionTTL time.Duration
	bcryptCost int
}

// NewAuthService builds the auth service from configuration.
// Config keys: JWT_SECRET (required, min 16 chars), SESSION_TTL_MINUTES
// (default 720).
func NewAuthService(db database.Database, cfg map[string]string) (*AuthService, error) {
	secret := config.GetString(cfg, "JWT_SECRET", "")
	if len(secret) < 16 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}

	return &AuthService{
		db:         db,
		secret:     []byte(secret),
		sessionTTL: time.Duration(config.GetInt(cfg, "SESSION_TTL_MINUTES", 720)) * time.Minute,
		bcryptCost: defaultBcryptCost,
	}, nil
}

// Authenticate checks the credentials and returns a signed session token
// bound to the user id. An unknown username and a wrong password produce the
// same error so the response never reveals which field was wrong.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.db.UserRepo().FindByUsername(username)
	if err != nil {
		if errs.IsNotFound(err) {
			return "", errs.NewInvalidCredentialsError()
		}
		return "", errs.NewDatabaseError("find", "user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errs.NewInvalidCredentialsError()
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to sign session token", err)
	}
	return token, nil
}

// RequireSession validates a session token and resolves the user it is bound
// to. Any signature, expiry, or issuer problem yields an unauthenticated
// error; so does a token whose user no longer exists.
func (s *AuthService) RequireSession(ctx context.Context, token string) (*models.User, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errs.NewInvalidSessionError(err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, errs.NewInvalidSessionError(errors.New("invalid token claims"))
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, errs.NewInvalidSessionError(err)
	}

	user, err := s.db.UserRepo().FindByID(uint(userID))
	if err != nil {
		return nil, errs.NewInvalidSessionError(err)
	}
	return user, nil
}

// ProvisionAdmin creates the admin account out-of-band. It refuses to
// overwrite an existing username.
func (s *AuthService) ProvisionAdmin(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, errs.NewMissingRequiredFieldError("username/password")
	}

	if _, err := s.db.UserRepo().FindByUsername(username); err == nil {
		return nil, errs.NewAlreadyExists("user")
	} else if !errs.IsNotFound(err) {
		return nil, errs.NewDatabaseError("find", "user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to hash password", err)
	}

	user := &models.User{Username: username, PasswordHash: string(hash)}
	if err := s.db.UserRepo().Add(user); err != nil {
		return nil, errs.NewDatabaseError("create", "user", err)
	}
	return user, nil
}

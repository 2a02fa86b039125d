package usecase

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthNotConfigured  = errors.New("admin password not configured")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const AdminRole = "admin"

// AdminClaims are embedded in every admin token.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthToken is the result of a successful login.
type AuthToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

// IAuthUseCase is the shared-password gate in front of the admin surface.
type IAuthUseCase interface {
	Login(password string) (AuthToken, error)
	ValidateToken(token string) (*AdminClaims, error)
}

// AuthConfig holds the gate settings. PasswordHash wins over Password when set.
type AuthConfig struct {
	Password     string
	PasswordHash string
	JWTSecret    string
	Expiration   time.Duration
}

type AuthUseCase struct {
	hash       []byte
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(cfg AuthConfig) (*AuthUseCase, error) {
	u := &AuthUseCase{secret: []byte(cfg.JWTSecret), expiration: cfg.Expiration, now: time.Now}
	if u.expiration <= 0 {
		u.expiration = 8 * time.Hour
	}
	switch {
	case cfg.PasswordHash != "":
		u.hash = []byte(cfg.PasswordHash)
	case cfg.Password != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.hash = hash
	}
	return u, nil
}

func (u *AuthUseCase) Login(password string) (AuthToken, error) {
	if len(u.hash) == 0 || len(u.secret) == 0 {
		return AuthToken{}, ErrAuthNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword(u.hash, []byte(password)); err != nil {
		return AuthToken{}, ErrInvalidCredentials
	}

	now := u.now()
	exp := now.Add(u.expiration)
	claims := AdminClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   AdminRole,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return AuthToken{}, err
	}
	return AuthToken{AccessToken: signed, ExpiresAt: exp}, nil
}

func (u *AuthUseCase) ValidateToken(token string) (*AdminClaims, error) {
	if len(u.secret) == 0 {
		return nil, ErrAuthNotConfigured
	}
	claims := &AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return u.secret, nil
	}, jwt.WithTimeFunc(u.now))
	if err != nil || !parsed.Valid || claims.Role != AdminRole {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

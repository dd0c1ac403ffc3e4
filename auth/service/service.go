package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"errors"
	"regexp"
	"time"

	"campusevents/auth/storage"
	"campusevents/auth/users"
	"campusevents/internal/config"
	"campusevents/internal/normalize"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const (
	rootEmail        = "root@localhost"
	minPasswordLen   = 6
	resetTokenTTL    = time.Hour
	resetTokenLength = 32
)

type Service struct {
	storage storage.AuthStorage
	cfg     config.Auth
}

var (
	ErrForbidden          = errors.New("access denied")
	ErrNotAuthorized      = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already in use")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidResetToken  = errors.New("invalid or expired reset link")
	ErrInvalidRole        = errors.New("unknown role")
)

func New(ctx context.Context, cfg config.Auth, storage storage.AuthStorage) (*Service, error) {
	s := Service{
		cfg:     cfg,
		storage: storage,
	}
	_, err := s.storage.GetUserSecret(ctx, users.User{Email: rootEmail})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		salt, err := randomSalt()
		if err != nil {
			return nil, err
		}
		secret := generateSecret(cfg.RootPassword, cfg.PasswordPepper, salt)
		err = s.storage.CreateUser(ctx, users.User{
			ID:           uuid.New(),
			Name:         "root",
			Email:        rootEmail,
			Roles:        []string{users.RoleAdmin, users.RoleStudent},
			RegisteredAt: time.Now(),
		}, secret)
		if err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (s *Service) Login(ctx context.Context, email string, password string) (users.User, error) {
	email = normalize.Email(email)
	userSecret, err := s.storage.GetUserSecret(ctx, users.User{Email: email})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, ErrInvalidCredentials
		}
		return users.User{}, err
	}
	secret := generateSecret(password, s.cfg.PasswordPepper, userSecret.Salt)
	user, err := s.storage.SignIn(ctx, email, secret.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, ErrInvalidCredentials
		}
		return users.User{}, err
	}
	return user, nil
}

func (s *Service) SignUp(ctx context.Context, name string, email string, password string, role string) (users.User, error) {
	if len(password) < minPasswordLen {
		return users.User{}, ErrWeakPassword
	}
	roles, err := signupRoles(role)
	if err != nil {
		return users.User{}, err
	}
	salt, err := randomSalt()
	if err != nil {
		return users.User{}, err
	}
	secret := generateSecret(password, s.cfg.PasswordPepper, salt)
	user := users.User{
		ID:           uuid.New(),
		Name:         normalize.Name(name),
		Email:        normalize.Email(email),
		Roles:        roles,
		RegisteredAt: time.Now(),
	}
	err = s.storage.CreateUser(ctx, user, secret)
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return users.User{}, ErrEmailTaken
		}
		return users.User{}, err
	}
	return user, nil
}

// signupRoles maps the sign-up form role to the stored role set. An
// empty role means student; admins also get the student role so every
// student-facing rule covers them.
func signupRoles(role string) ([]string, error) {
	switch role {
	case "", users.RoleStudent:
		return []string{users.RoleStudent}, nil
	case users.RoleAdmin:
		return []string{users.RoleAdmin, users.RoleStudent}, nil
	}
	return nil, ErrInvalidRole
}

func (s *Service) GenerateJWTCookie(userID uuid.UUID, host string) (*fiber.Cookie, error) {
	expiresIn, err := time.ParseDuration(s.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	expirationTime := time.Now().Add(expiresIn)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  time.Now().Unix(),
		Subject:   userID.String(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Token))
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:        "token",
		Value:       tokenString,
		Path:        "/",
		Domain:      host,
		Expires:     expirationTime,
		Secure:      false,
		HTTPOnly:    true,
		SameSite:    "",
		SessionOnly: false,
	}, nil
}

func (s *Service) Auth(ctx context.Context, cookie string, method string, url string) (users.User, error) {
	user, err := s.getUserFromToken(ctx, cookie)
	if err != nil {
		return users.User{}, ErrNotAuthorized
	}

	for _, rule := range s.cfg.Rules {
		r, err := regexp.Compile(rule.Path)
		if err != nil {
			return users.User{}, err
		}
		if r.MatchString(url) {
			for _, ruleMethod := range rule.Method {
				if ruleMethod == "*" || ruleMethod == method {
					for _, role := range rule.Allow {
						if role == "*" {
							return user, nil
						}
						for _, userRole := range user.Roles {
							if role == userRole {
								return user, nil
							}
						}
					}
					return users.User{}, ErrForbidden
				}
			}
		}
	}
	return users.User{}, ErrForbidden
}

// RequestPasswordReset issues a one time token for the account behind email.
// The returned ok flag is false when no such account exists, so callers can
// show the same message either way and not leak which emails are registered.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, bool, error) {
	email = normalize.Email(email)
	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	token, err := randomToken()
	if err != nil {
		return "", false, err
	}
	err = s.storage.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenTTL))
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

func (s *Service) ResetPassword(ctx context.Context, token string, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return ErrWeakPassword
	}
	user, err := s.storage.GetUserByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidResetToken
		}
		return err
	}
	salt, err := randomSalt()
	if err != nil {
		return err
	}
	secret := generateSecret(newPassword, s.cfg.PasswordPepper, salt)
	return s.storage.UpdatePassword(ctx, user.ID, secret)
}

func (s *Service) getUserFromToken(ctx context.Context, cookie string) (users.User, error) {
	if cookie == "" {
		return users.User{}, nil
	}
	token, err := jwt.ParseWithClaims(cookie, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Token), nil
	})
	if err != nil {
		return users.User{}, err
	}
	if token.Valid {
		claims, ok := token.Claims.(*jwt.StandardClaims)
		if !ok {
			return users.User{}, errors.New("bad request")
		}
		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			return users.User{}, err
		}
		user, err := s.storage.GetUser(ctx, id)
		if err != nil {
			return users.User{}, err
		}
		return user, nil
	}
	ve := jwt.ValidationError{}
	if ok := errors.As(err, &ve); !ok {
		return users.User{}, err
	}
	if ve.Errors&jwt.ValidationErrorMalformed != 0 {
		return users.User{}, errors.New("bad request")
	} else if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
		return users.User{}, errors.New("token expired")
	} else {
		return users.User{}, err
	}
}

func randomSalt() ([]byte, error) {
	salt := make([]byte, 8)
	_, err := rand.Read(salt)
	if err != nil {
		return nil, err
	}
	return salt, nil
}

func randomToken() (string, error) {
	buf := make([]byte, resetTokenLength)
	_, err := rand.Read(buf)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func generateSecret(password string, pepper string, salt []byte) users.Secret {
	sha := sha256.New()
	sha.Write([]byte(pepper + password))

	sha.Write(salt)
	return users.Secret{
		PasswordHash: sha.Sum(nil),
		Salt:         salt,
	}
}

package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type Config struct {
	Secret string `yaml:"secret" envconfig:"JWT_SECRET" required:"true"`
}

type Profile struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	jwt.RegisteredClaims
	Profile Profile `json:"profile"`
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrUnknownRole  = errors.New("unknown role")
	ErrEmptySecret  = errors.New("empty signing secret")
)

// ParseToken verifies an HS256 bearer token and returns its claims.
func ParseToken(cfg Config, tokenStr string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Wrap(ErrInvalidToken, errString(err))
	}
	if claims.ExpiresAt == nil || time.Now().After(claims.ExpiresAt.Time) {
		return nil, errors.Wrap(ErrInvalidToken, "token expired")
	}
	if strings.TrimSpace(claims.Profile.UserID) == "" {
		return nil, errors.Wrap(ErrInvalidToken, "empty user id")
	}
	return claims, nil
}

func errString(err error) string {
	if err == nil {
		return "token is not valid"
	}
	return err.Error()
}

// Principal is the authenticated caller with its permissions resolved once per request.
type Principal struct {
	UserID   string
	Username string
	Role     Role
	perms    PermissionSet
}

func NewPrincipal(p Profile) (Principal, error) {
	role := Role(strings.ToLower(p.Role))
	perms, ok := role.Permissions()
	if !ok {
		return Principal{}, errors.Wrapf(ErrUnknownRole, "%q", p.Role)
	}
	return Principal{
		UserID:   p.UserID,
		Username: p.Username,
		Role:     role,
		perms:    perms,
	}, nil
}

func (p Principal) Can(perm Permission) bool {
	return p.perms.Has(perm)
}

func (p Principal) Permissions() PermissionSet {
	return p.perms
}

// IsMember reports whether the caller acts on their own member record only.
func (p Principal) IsMember() bool {
	return p.Role == RoleMember
}

type principalKey struct{}

func SetAuthContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

package auth

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid. Tokens are not
// refreshed; clients log in again after expiry.
const TokenTTL = 7 * 24 * time.Hour

var ErrSecretIsRequired = errs.NewValueIsRequiredError("jwt secret")

// JWTIssuer signs and verifies HMAC-SHA256 tokens carrying the acting
// party's identity and role. Implements the TokenIssuer contract of the
// commands package; the HTTP middleware uses Parse for the reverse
// direction.
type JWTIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewJWTIssuer creates an issuer signing with the given shared secret.
func NewJWTIssuer(secret string) (JWTIssuer, error) {
	if secret == "" {
		return JWTIssuer{}, ErrSecretIsRequired
	}

	return JWTIssuer{
		secret: []byte(secret),
		now:    time.Now,
	}, nil
}

// Issue signs a token for the actor with the standard sub claim carrying
// the actor's ID and a custom role claim.
func (i JWTIssuer) Issue(actor kernel.Actor) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}

	now := i.now().UTC()
	claims := jwt.MapClaims{
		"sub":  actor.ID().String(),
		"role": actor.Role().String(),
		"iat":  now.Unix(),
		"exp":  now.Add(TokenTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse verifies a token's signature and expiry and reconstructs the actor
// it was issued for.
func (i JWTIssuer) Parse(tokenString string) (kernel.Actor, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return kernel.Actor{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return kernel.Actor{}, errors.New("unexpected claims type")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return kernel.Actor{}, err
	}

	id, err := kernel.UUIDFromString(subject)
	if err != nil {
		return kernel.Actor{}, err
	}

	roleClaim, ok := claims["role"].(string)
	if !ok {
		return kernel.Actor{}, errs.NewValueIsRequiredError("role claim")
	}

	role, err := kernel.RoleFromString(roleClaim)
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(id, role)
}

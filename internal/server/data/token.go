package data

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/square/go-jose.v2"
	"gopkg.in/square/go-jose.v2/jwt"
	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/generate"
	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

var signatureAlgorithmFromKeyAlgorithm = map[string]string{
	"ED25519": "EdDSA", // elliptic curve 25519
}

// SessionClaims are the custom claims carried by a session token.
type SessionClaims struct {
	UserID uid.ID `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Nonce  string `json:"nonce"`
}

// CreateSessionToken signs a JWT for the credential using the server
// signing key.
func CreateSessionToken(db *gorm.DB, user *models.Credential, lifetime time.Duration) (string, time.Time, error) {
	settings, err := GetSettings(db)
	if err != nil {
		return "", time.Time{}, err
	}

	var sec jose.JSONWebKey
	if err := sec.UnmarshalJSON(settings.PrivateJWK); err != nil {
		return "", time.Time{}, err
	}

	algo, ok := signatureAlgorithmFromKeyAlgorithm[sec.Algorithm]
	if !ok {
		return "", time.Time{}, fmt.Errorf("unsupported algorithm")
	}

	options := &jose.SignerOptions{}

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.SignatureAlgorithm(algo), Key: sec}, options.WithType("JWT"))
	if err != nil {
		return "", time.Time{}, err
	}

	nonce, err := generate.CryptoRandom(10, generate.CharsetAlphaNumeric)
	if err != nil {
		return "", time.Time{}, err
	}

	now := time.Now()
	expires := now.Add(lifetime)

	claim := jwt.Claims{
		Subject:   user.ID.String(),
		NotBefore: jwt.NewNumericDate(now.Add(time.Minute * -5)), // adjust for clock drift
		Expiry:    jwt.NewNumericDate(expires),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	custom := SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Nonce:  nonce,
	}

	raw, err := jwt.Signed(signer).Claims(claim).Claims(custom).CompactSerialize()
	if err != nil {
		return "", time.Time{}, err
	}

	return raw, expires, nil
}

// ValidateSessionToken verifies the signature and expiry of a session
// token and returns its claims.
func ValidateSessionToken(db *gorm.DB, raw string) (*SessionClaims, error) {
	settings, err := GetSettings(db)
	if err != nil {
		return nil, err
	}

	var pub jose.JSONWebKey
	if err := pub.UnmarshalJSON(settings.PublicJWK); err != nil {
		return nil, err
	}

	tok, err := jwt.ParseSigned(raw)
	if err != nil {
		return nil, internal.ErrUnauthorized
	}

	var claim jwt.Claims
	var custom SessionClaims
	if err := tok.Claims(pub, &claim, &custom); err != nil {
		return nil, internal.ErrUnauthorized
	}

	err = claim.Validate(jwt.Expected{Time: time.Now()})
	switch {
	case errors.Is(err, jwt.ErrExpired):
		return nil, fmt.Errorf("%w: expired session", internal.ErrUnauthorized)
	case err != nil:
		return nil, internal.ErrUnauthorized
	}

	if custom.UserID == 0 {
		return nil, internal.ErrUnauthorized
	}

	return &custom, nil
}

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/you/currencysvc/domain"
)

// JWTServiceImpl implements domain.TokenService. Tokens are compact HS256
// JWTs carrying the email as the subject claim plus the configured issuer,
// audience and absolute expiry.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	audience  string
	tokenTTL  time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer, audience string, tokenTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
		tokenTTL:  tokenTTL,
	}
}

// Generate implements domain.TokenService
func (j *JWTServiceImpl) Generate(email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(j.tokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   email,
		Issuer:    j.issuer,
		Audience:  jwt.ClaimStrings{j.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate implements domain.TokenService. Signature, issuer, audience and
// lifetime are all checked; any mismatch yields a token error, never a panic.
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	},
		jwt.WithIssuer(j.issuer),
		jwt.WithAudience(j.audience),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		default:
			return nil, domain.ErrTokenInvalid
		}
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	tokenClaims := &domain.TokenClaims{
		Email:  claims.Subject,
		Issuer: claims.Issuer,
	}
	if len(claims.Audience) > 0 {
		tokenClaims.Audience = claims.Audience[0]
	}
	if claims.IssuedAt != nil {
		tokenClaims.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		tokenClaims.ExpiresAt = claims.ExpiresAt.Unix()
	}

	return tokenClaims, nil
}

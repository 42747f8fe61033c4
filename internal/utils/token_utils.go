package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingActor is returned for a well-signed token without a subject.
var ErrMissingActor = errors.New("token has no subject")

var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// GenerateActorToken signs an HS256 token whose subject is the acting user.
func GenerateActorToken(actorID string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   actorID,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ActorTokenParser validates HMAC-signed tokens and returns their subject.
type ActorTokenParser struct {
	parser *jwt.Parser
	secret []byte
}

// NewActorTokenParser builds a parser. A non-empty issuer must match the token's iss claim.
func NewActorTokenParser(secret, issuer string) *ActorTokenParser {
	opts := []jwt.ParserOption{jwt.WithValidMethods(hmacMethods)}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &ActorTokenParser{parser: jwt.NewParser(opts...), secret: []byte(secret)}
}

// Parse returns the token's subject. Errors wrap the jwt sentinel errors such as jwt.ErrTokenExpired.
func (p *ActorTokenParser) Parse(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := p.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" {
		return "", ErrMissingActor
	}
	return claims.Subject, nil
}

package utils // package utils provides helpers for password hashing and access tokens

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleCustomer is the only role issued today.  It is carried in the token
// so that further roles can be added without changing the claim layout.
const RoleCustomer = "CUSTOMER"

// ErrInvalidToken is returned when an access token cannot be verified or
// lacks a usable subject.
var ErrInvalidToken = errors.New("invalid token")

// AccessToken is a signed JWT along with its expiry.  Clients send it in
// the Authorization header as "Bearer <token>".
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken signs an HS256 JWT for a customer.  The subject (sub) is
// the decimal customer ID; role, exp and iat are the other claims.
func NewAccessToken(secret string, customerID uint64, role string, ttl time.Duration, now time.Time) (AccessToken, error) {
	now = now.UTC()
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(customerID, 10),
		"role": role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies raw with secret and returns the customer ID and
// role it carries.  Tokens signed with anything other than HMAC are
// rejected.
func ParseAccessToken(secret, raw string) (uint64, string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, "", ErrInvalidToken
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, "", ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	return id, role, nil
}

// Package token implements the bearer token codec shared by the auth
// service (issuing) and the gateway (validating).  Tokens are HS256
// JWTs carrying the caller's id and role.  The signing key is derived
// once from the configured secret and is immutable afterwards, so a
// single Codec is safe for unsynchronized concurrent use.
package token

import (
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// Decode failure reasons.  Externally a token is simply valid or
// invalid; internally the cause is classified so the gateway can log
// why a request was rejected.
var (
    ErrMalformed        = errors.New("token malformed")
    ErrSignatureInvalid = errors.New("token signature invalid")
    ErrExpired          = errors.New("token expired")
)

// Claims is the verified payload of a bearer token.  Subject carries
// the user id and Role the role name; expiry lives in the embedded
// registered claims.  Claims are recomputed per request and never
// stored.
type Claims struct {
    Role string `json:"role"`
    jwt.RegisteredClaims
}

// Codec signs and verifies bearer tokens.  The key is fixed at
// construction time; there is no ambient/global secret lookup.
type Codec struct {
    key []byte
}

// NewCodec derives the signing key from the configured secret.
func NewCodec(secret string) *Codec {
    return &Codec{key: []byte(secret)}
}

// Issue produces a signed token for the given subject and role.  The
// expiry is issuedAt+ttl; both timestamps are embedded as registered
// claims.  It returns the serialized token and its expiry time.
func (c *Codec) Issue(subjectID, role string, ttl time.Duration) (string, time.Time, error) {
    now := time.Now().UTC()
    exp := now.Add(ttl)
    claims := Claims{
        Role: role,
        RegisteredClaims: jwt.RegisteredClaims{
            Subject:   subjectID,
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(exp),
        },
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString(c.key)
    if err != nil {
        return "", time.Time{}, err
    }
    return signed, exp, nil
}

// Decode parses and verifies a token.  Any structural or cryptographic
// failure is reported as an error and the claims are never partially
// trusted.  The returned error is one of ErrMalformed,
// ErrSignatureInvalid or ErrExpired so callers can classify the cause
// for logging; all three mean "reject".
func (c *Codec) Decode(raw string) (*Claims, error) {
    claims := &Claims{}
    t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
        // Reject any signing method other than HMAC so a token signed
        // with "none" or an asymmetric key cannot slip through.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrSignatureInvalid
        }
        return c.key, nil
    })
    if err != nil {
        switch {
        case errors.Is(err, jwt.ErrTokenExpired):
            return nil, ErrExpired
        case errors.Is(err, jwt.ErrTokenSignatureInvalid):
            return nil, ErrSignatureInvalid
        default:
            return nil, ErrMalformed
        }
    }
    if !t.Valid {
        return nil, ErrMalformed
    }
    return claims, nil
}

// IsExpired reports whether the claims are expired at the given
// instant.  The comparison is strict: now >= expiry means expired.
func (c *Codec) IsExpired(claims *Claims, now time.Time) bool {
    if claims.ExpiresAt == nil {
        return true
    }
    return !now.Before(claims.ExpiresAt.Time)
}

// IsInvalid reports whether the token should be rejected.  It merges
// decode failures and expiry into one boolean: the gateway only needs
// a yes/no answer, the classified cause is available via Decode for
// logging.
func (c *Codec) IsInvalid(raw string) bool {
    claims, err := c.Decode(raw)
    if err != nil {
        return true
    }
    return c.IsExpired(claims, time.Now().UTC())
}

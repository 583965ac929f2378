package jwt

import (
	"time"

	"glowup-diaries/config"

	"github.com/golang-jwt/jwt"
)

// Payload is what gets minted into a token.
type Payload struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	SessionID string `json:"session_id"`
}

type Claims struct {
	Payload
	jwt.StandardClaims
}

// CreateToken mints a signed HS256 token for the payload with the
// configured expiry.
func CreateToken(payload Payload) string {
	cfg := config.Get().JWT
	now := time.Now()
	claims := Claims{
		Payload: payload,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(cfg.AccessExpire) * time.Second).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		// only fails on an unusable secret, which config validation
		// would have caught at startup
		return ""
	}
	return signed
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}

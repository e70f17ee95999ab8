package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"

	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
)

// AuthTokenWrapper — полезная нагрузка сессионного токена: кто вошёл и с
// какой ролью. Токен заменяет амбиентное клиентское хранилище исходной
// системы, роль читается из него на каждом запросе.
type AuthTokenWrapper struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	ttl := viper.GetDuration(constants.ViperKeyTokenTTL)
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	wrapper.ExpiresAt = time.Now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
	if err != nil {
		return "", err
	}
	return signed, nil
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(raw, wrapper, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constants.ErrInvalidAuthToken
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrInvalidAuthToken
	}
	return wrapper, nil
}

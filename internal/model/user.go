package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int
	Name     string
	Login    string
	Password string
}

type UserClaims struct {
	jwt.RegisteredClaims
}

// AuthData Данные, возвращаемые при регистрации/логине
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}

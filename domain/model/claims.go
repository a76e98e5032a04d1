package model

import "github.com/golang-jwt/jwt"

// UserClaims is the JWT payload the auth service issues. Issuer carries the
// user id; UserName is used for the existence check in the middleware.
type UserClaims struct {
	UserName string `json:"user_name"`
	jwt.StandardClaims
}

package middleware

import (
	"fmt"
	"lms/config"
	"lms/database"
	"lms/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user. The subject is the user's
// email; the user record is resolved by email on every authenticated call.
func GenerateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": user.Role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware checks for a valid bearer token in the Authorization header
// and resolves it to a user record
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	tokenString := authHeader[len("Bearer "):]

	return authenticate(c, tokenString)
}

// JWTQueryMiddleware checks for a valid token in the "token" query parameter.
// Used for browser-initiated downloads where headers cannot be sent.
func JWTQueryMiddleware(c *fiber.Ctx) error {
	tokenString := c.Query("token")
	if tokenString == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing token query parameter", nil)
	}

	return authenticate(c, tokenString)
}

// authenticate parses the token, looks up the user by the email subject and
// stores the record in the request context
func authenticate(c *fiber.Ctx, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["sub"] == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	email, ok := claims["sub"].(string)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_active = ?", email, true).First(&user).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	c.Locals("currentUser", &user)
	c.Locals("userId", user.ID)

	return c.Next()
}

// CurrentUser retrieves the authenticated user stored by the JWT middleware
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("currentUser").(*models.User)
	return user, ok
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

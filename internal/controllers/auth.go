package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/finsmart/backend/internal/httputil"
	"github.com/finsmart/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// contextUserID is the gin context key the authenticated user's ID is
// stored under.
const contextUserID = "finsmart-user-id"

// Issued tokens are valid for a week.
const tokenLifetime = 7 * 24 * time.Hour

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterUser creates a new user account and returns a token for it.
func (co Controller) RegisterUser(c *gin.Context) {
	var request RegisterUserRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	user := models.User{
		Name:  request.Name,
		Email: request.Email,
	}

	if err := user.SetPassword(request.Password); err != nil {
		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	err := models.DB.Create(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "UNIQUE constraint failed") ||
			strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			httputil.NewError(c, http.StatusBadRequest, models.ErrEmailAlreadyRegistered)
			return
		}

		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	token, err := co.issueToken(user)
	if err != nil {
		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
}

// Login verifies the credentials and returns a token.
func (co Controller) Login(c *gin.Context) {
	var request LoginRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	user, err := models.UserByEmail(models.DB, request.Email)
	if err != nil || !user.CheckPassword(request.Password) {
		httputil.NewError(c, http.StatusUnauthorized, errInvalidCredentials)
		return
	}

	token, err := co.issueToken(user)
	if err != nil {
		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}

func (co Controller) issueToken(user models.User) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now().In(time.UTC)),
		ExpiresAt: jwt.NewNumericDate(time.Now().In(time.UTC).Add(tokenLifetime)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(co.JWTSecret)
}

// RequireAuth verifies the bearer token and stores the user ID in the
// context. Requests without a valid token are rejected.
func (co Controller) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		httputil.NewError(c, http.StatusUnauthorized, errNoAuthToken)
		c.Abort()
		return
	}

	token, err := jwt.ParseWithClaims(
		strings.TrimPrefix(header, "Bearer "),
		&jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return co.JWTSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		httputil.NewError(c, http.StatusUnauthorized, errInvalidAuthToken)
		c.Abort()
		return
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		httputil.NewError(c, http.StatusUnauthorized, errInvalidAuthToken)
		c.Abort()
		return
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		httputil.NewError(c, http.StatusUnauthorized, errInvalidAuthToken)
		c.Abort()
		return
	}

	c.Set(contextUserID, userID)
	c.Next()
}

// userID returns the ID of the authenticated user.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUserID).(uuid.UUID)
}

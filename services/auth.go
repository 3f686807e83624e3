package services

import (
	"net/http"
	"os"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/tecno-hogar/tecnohogar_api/dto"
	"github.com/tecno-hogar/tecnohogar_api/shared"
)

// AuthService verifies the single env-configured admin credential and guards
// the admin-panel routes. Credentials live in the environment, not the
// database.
type AuthService struct {
	context.DefaultService

	jwtSvc *JWTService

	adminID           string
	adminUsername     string
	adminPasswordHash []byte
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	svc.adminID = "1"
	svc.adminUsername = os.Getenv("ADMIN_USERNAME")
	if svc.adminUsername == "" {
		svc.adminUsername = "admin"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "techno2024"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	svc.adminPasswordHash = hash

	log.Infof("Admin user initialized: %s", svc.adminUsername)
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	return nil
}

func (svc *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username != svc.adminUsername {
		log.Warnf("Login attempt with invalid username: %s", req.Username)
		return nil, shared.NewAppError(http.StatusUnauthorized, "Usuario o contraseña incorrectos", nil)
	}

	if err := bcrypt.CompareHashAndPassword(svc.adminPasswordHash, []byte(req.Password)); err != nil {
		log.Warnf("Login attempt with invalid password for user: %s", req.Username)
		return nil, shared.NewAppError(http.StatusUnauthorized, "Usuario o contraseña incorrectos", nil)
	}

	token, err := svc.jwtSvc.ToJWT(svc.adminID, svc.adminUsername, shared.RoleAdmin)
	if err != nil {
		return nil, err
	}

	log.Infof("User %s logged in successfully", svc.adminUsername)

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(svc.jwtSvc.AccessTokenDuration.Seconds()),
		User: dto.AdminUserInfo{
			Username: svc.adminUsername,
			Role:     shared.RoleAdmin,
		},
	}, nil
}

// RequiredAuth rejects requests without a valid bearer token and stashes the
// verified identity in request locals.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		token, err := svc.jwtSvc.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		}

		claims, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid JWT token")
		}

		if claims.UserID == "" {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid user ID in token")
		}

		c.Locals(shared.UserID, claims.UserID)
		c.Locals(shared.Username, claims.Username)
		c.Locals(shared.UserRole, claims.Role)
		return c.Next()
	}
}

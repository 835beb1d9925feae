package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Solace-Health-LLC/beacon/internal/db"
	"github.com/Solace-Health-LLC/beacon/internal/http/api"
	"github.com/Solace-Health-LLC/beacon/internal/http/api/admin/packets"
	"github.com/Solace-Health-LLC/beacon/internal/http/middleware"
	"github.com/Solace-Health-LLC/beacon/internal/model"
)

type AuthController struct {
	secret string
	store  db.Store
}

func newAuthController(secret string, store db.Store) *AuthController {
	return &AuthController{secret: secret, store: store}
}

// AuthPublicModule mounts signup/login, which issue tokens.
func AuthPublicModule(secret string, store db.Store) api.Module {
	ctl := newAuthController(secret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PublicPOST("/auth/signup", ctl.signup)
		c.PublicPOST("/auth/login", ctl.login)
	})
}

// AuthSessionModule mounts the endpoints that require a live session.
func AuthSessionModule(secret string, store db.Store) api.Module {
	ctl := newAuthController(secret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.currentProfile)
	})
}

func (a *AuthController) signup(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not hash password"}
	}

	userID, err := a.store.CreateUser(request.Email, hashed, request.Name)
	if err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("signup failed")
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "could not create user"}
	}

	token, err := middleware.GenerateJWT(userID, a.secret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not issue token"}
	}
	return packets.TokenResponse{Token: token}, nil
}

func (a *AuthController) login(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	user, err := a.store.GetUserByEmail(request.Email)
	if err != nil || !middleware.CheckPassword(user.HashedPassword, request.Password) {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: middleware.ErrInvalidCredentials.Error()}
	}

	token, err := middleware.GenerateJWT(user.ID, a.secret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not issue token"}
	}
	return packets.TokenResponse{Token: token}, nil
}

func (a *AuthController) currentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return packets.ProfileResponse{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

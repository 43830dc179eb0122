package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"twitchfarm/internal/models/request_models"
	"twitchfarm/internal/models/response_models"
	"twitchfarm/internal/services"
	"twitchfarm/pkg/middleware"
	"twitchfarm/pkg/utils"
)

type AuthController struct {
	accountService services.AccountServiceInterface
	twitchService  services.TwitchServiceInterface
}

func NewAuthController(accountService services.AccountServiceInterface, twitchService services.TwitchServiceInterface) *AuthController {
	return &AuthController{
		accountService: accountService,
		twitchService:  twitchService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account with default settings and log it in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	account, token, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	setSessionCookie(c, token)
	utils.RespondCreated(c, gin.H{"id": account.ID, "username": account.Username}, "Account created successfully")
}

// Login godoc
// @Summary Log in
// @Description Establish a session for an existing account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	account, token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	setSessionCookie(c, token)
	utils.RespondSuccess(c, gin.H{"id": account.ID, "username": account.Username}, "Login successful")
}

// Logout godoc
// @Summary Log out
// @Description Destroy the current session; safe to call twice
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	a.accountService.Logout(c.GetString("session_id"))
	clearSessionCookie(c)
	utils.RespondSuccess(c, nil, "Logged out successfully")
}

// Status godoc
// @Summary Session status
// @Description Report whether a valid session exists and the public identity behind it
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/auth/status [get]
func (a *AuthController) Status(c *gin.Context) {
	accountID := middleware.AccountID(c)
	if accountID == 0 {
		utils.RespondSuccess(c, response_models.AuthStatusResponse{IsAuthenticated: false}, "")
		return
	}

	user, err := a.accountService.Status(c.Request.Context(), accountID)
	if err != nil {
		// A session can outlive its account row; treat that as logged out.
		utils.RespondSuccess(c, response_models.AuthStatusResponse{IsAuthenticated: false}, "")
		return
	}

	utils.RespondSuccess(c, response_models.AuthStatusResponse{
		IsAuthenticated: true,
		User:            user,
	}, "")
}

// TwitchAuthURL godoc
// @Summary Begin Twitch account linking
// @Description Issue the provider authorization URL with a single-use state token
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/auth/twitch [get]
func (a *AuthController) TwitchAuthURL(c *gin.Context) {
	authURL, err := a.twitchService.AuthURL(c.GetString("session_id"), requestOrigin(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TwitchAuthURLResponse{AuthURL: authURL}, "")
}

// TwitchCallback godoc
// @Summary Complete Twitch account linking
// @Description Validate state, exchange the code and link the Twitch profile
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State token"
// @Success 302
// @Failure 400 {object} utils.APIResponse
// @Router /api/auth/twitch/callback [get]
func (a *AuthController) TwitchCallback(c *gin.Context) {
	var req request_models.TwitchCallbackRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	err := a.twitchService.CompleteLink(
		c.Request.Context(),
		c.GetString("session_id"),
		middleware.AccountID(c),
		requestOrigin(c),
		req.Code,
		req.State,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func requestOrigin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	return "http://" + c.Request.Host
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, int(utils.SessionTTL.Seconds()), "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
}

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/rabi993/banking-system/internal/core/ports/services"
	"github.com/rabi993/banking-system/internal/dto"
	"github.com/rabi993/banking-system/internal/middleware"
	"github.com/rabi993/banking-system/internal/platform/config"
	"github.com/rabi993/banking-system/internal/utils"
)

// authHandler handles signup and the two login flows.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	adminService portssvc.AdminSvcFacade
	cfg          *config.Config
}

func newAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *authHandler {
	return &authHandler{
		userService:  services.User,
		adminService: services.Admin,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes. Logins are
// rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(cfg, services)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/admin/login", limitMiddleware, h.adminLogin)
	}
}

// register godoc
// @Summary Open a new account
// @Description Self-service signup. Returns the assigned account number.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.CreateAccountRequest true "Account profile"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		AccountNumber: account.AccountNumber,
		Message:       "Account created successfully",
	})
}

// login godoc
// @Summary User login
// @Description Authenticates a customer and returns a session token scoped to their account.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	account, err := h.userService.Login(c.Request.Context(), req.Name, req.Password, req.AccountNumber)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid login credentials"})
		return
	}

	subject := strconv.FormatInt(account.AccountNumber, 10)
	token, err := utils.GenerateSessionToken(subject, middleware.RoleUser, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	resp := dto.ToAccountResponse(account)
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Account: &resp})
}

// adminLogin godoc
// @Summary Admin login
// @Description Checks the fixed admin credentials and returns an admin session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/admin/login [post]
func (h *authHandler) adminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.adminService.Login(c.Request.Context(), req.Name, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid login credentials"})
		return
	}

	token, err := utils.GenerateSessionToken(req.Name, middleware.RoleAdmin, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

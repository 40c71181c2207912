package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradesift-io/tradesift/internal/application/user/dto"
	"github.com/tradesift-io/tradesift/internal/application/user/usecases"
	"github.com/tradesift-io/tradesift/internal/shared/constants"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
	"github.com/tradesift-io/tradesift/internal/shared/utils"
)

// AuthHandler serves account registration, login, token refresh and
// profile endpoints.
type AuthHandler struct {
	registerUseCase       *usecases.RegisterCustomerUseCase
	loginCustomerUseCase  *usecases.LoginCustomerUseCase
	loginAdminUseCase     *usecases.LoginAdminUseCase
	refreshTokenUseCase   *usecases.RefreshTokenUseCase
	getProfileUseCase     *usecases.GetProfileUseCase
	changePasswordUseCase *usecases.ChangePasswordUseCase
	logger                logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterCustomerUseCase,
	loginCustomerUC *usecases.LoginCustomerUseCase,
	loginAdminUC *usecases.LoginAdminUseCase,
	refreshTokenUC *usecases.RefreshTokenUseCase,
	getProfileUC *usecases.GetProfileUseCase,
	changePasswordUC *usecases.ChangePasswordUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:       registerUC,
		loginCustomerUseCase:  loginCustomerUC,
		loginAdminUseCase:     loginAdminUC,
		refreshTokenUseCase:   refreshTokenUC,
		getProfileUseCase:     getProfileUC,
		changePasswordUseCase: changePasswordUC,
		logger:                logger,
	}
}

// Register creates a customer account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.registerUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "customer registered", profile)
}

// Login authenticates a customer.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.loginCustomerUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// LoginAdmin authenticates an operator.
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.loginAdminUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// RefreshToken exchanges a refresh token for a fresh pair.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.refreshTokenUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", pair)
}

// GetProfile returns the authenticated customer's profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	id, ok := userIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return
	}

	profile, err := h.getProfileUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// ChangePassword rotates the authenticated customer's password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	id, ok := userIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.changePasswordUseCase.Execute(c.Request.Context(), id, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "password changed", nil)
}

func userIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

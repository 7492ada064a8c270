package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"medishare.backend/internal/domain/entities"
	domainerrors "medishare.backend/internal/domain/errors"
	"medishare.backend/internal/interfaces/http/middleware"
	"medishare.backend/internal/interfaces/http/response"
	"medishare.backend/internal/usecases"
)

// DonationHandler handles donation record requests
type DonationHandler struct {
	donationUsecase *usecases.DonationUsecase
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(donationUsecase *usecases.DonationUsecase) *DonationHandler {
	return &DonationHandler{donationUsecase: donationUsecase}
}

// Create handles POST /api/donations. The route is public: donating does not
// require an account.
func (h *DonationHandler) Create(c *gin.Context) {
	var input entities.CreateDonationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	donation, err := h.donationUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"data":    donation,
		"message": "Donation submitted successfully",
	})
}

// ListAll handles GET /api/donations
func (h *DonationHandler) ListAll(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authorization denied"))
		return
	}

	donations, err := h.donationUsecase.ListAll(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, donations)
}

// ListMine handles GET /api/donations/user
func (h *DonationHandler) ListMine(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authorization denied"))
		return
	}

	donations, err := h.donationUsecase.ListMine(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, donations)
}

// Get handles GET /api/donations/:id
func (h *DonationHandler) Get(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authorization denied"))
		return
	}

	donation, err := h.donationUsecase.Get(c.Request.Context(), c.Param("id"), identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, donation)
}

// UpdateStatus handles PUT /api/donations/:id
func (h *DonationHandler) UpdateStatus(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authorization denied"))
		return
	}

	var input entities.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		// Authorization is still checked first so a non-admin with a bad
		// body gets 403, not 400.
		if policyErr := h.donationUsecase.CheckUpdateAccess(identity); policyErr != nil {
			response.Error(c, policyErr)
			return
		}
		response.Error(c, domainerrors.NewAppError(http.StatusBadRequest, "Invalid status", domainerrors.ErrInvalidStatus))
		return
	}

	donation, err := h.donationUsecase.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status, identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, donation)
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/currencysvc/domain"
)

// ConversionHandlers handles currency conversion HTTP requests
type ConversionHandlers struct {
	rateClient domain.RateClient
}

// NewConversionHandlers creates new conversion handlers
func NewConversionHandlers(rateClient domain.RateClient) *ConversionHandlers {
	return &ConversionHandlers{rateClient: rateClient}
}

// ConversionRequest represents a conversion request
type ConversionRequest struct {
	Amount float64 `json:"amount"`
}

// UsdToSll converts a USD amount to SLL at the current upstream rate.
// Non-positive amounts are rejected before the external client is invoked;
// upstream failures surface as a generic server error.
func (h *ConversionHandlers) UsdToSll(c *gin.Context) {
	var req ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Amount must be greater than zero.")
		return
	}
	if req.Amount <= 0 {
		c.String(http.StatusBadRequest, "Amount must be greater than zero.")
		return
	}

	result, err := h.rateClient.Convert(c.Request.Context(), req.Amount)
	if err != nil {
		log.Printf("CONVERSION_FAILED: amount=%.2f error=%v", req.Amount, err)
		c.String(http.StatusInternalServerError, "Conversion failed.")
		return
	}

	c.JSON(http.StatusOK, result)
}

package payment

import (
	"net/http"
	"net/url"

	"sifted_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// QR renders a payment link as a PNG QR code for the counter display.
//
// GET /api/payments/qr?url=<invoiceUrl>
func (h *Handler) QR(c *gin.Context) {
	raw := c.Query("url")
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter 'url' tidak valid"})
		return
	}

	png, err := utils.GeneratePaymentQR(raw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat QR"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/Haleralex/epcqr/internal/adapters/http/common"
	"github.com/Haleralex/epcqr/internal/adapters/http/middleware"
	"github.com/Haleralex/epcqr/internal/application/dtos"
)

// GeneratePayloadUseCase is the handler's view of the application layer.
type GeneratePayloadUseCase interface {
	Execute(ctx context.Context, cmd dtos.GeneratePayloadCommand) (*dtos.PayloadDTO, error)
}

// minQRSize is the smallest edge length a 12-line payload still scans at.
const minQRSize = 64

// QRImageConfig bounds the PNG endpoint, in pixels.
type QRImageConfig struct {
	DefaultSize int
	MaxSize     int
}

// DefaultQRImageConfig returns the standard bounds.
func DefaultQRImageConfig() *QRImageConfig {
	return &QRImageConfig{DefaultSize: 256, MaxSize: 1024}
}

// PayloadHandler serves EPC payload generation.
type PayloadHandler struct {
	generate GeneratePayloadUseCase
	qr       *QRImageConfig
}

// NewPayloadHandler creates a PayloadHandler. A nil qr config falls back to
// the defaults.
func NewPayloadHandler(generate GeneratePayloadUseCase, qr *QRImageConfig) *PayloadHandler {
	if qr == nil {
		qr = DefaultQRImageConfig()
	}
	return &PayloadHandler{generate: generate, qr: qr}
}

// GeneratePayloadRequest is the request body for both payload endpoints.
// The binding tags reject obvious garbage early; the epc builder is the
// authority on every rule.
type GeneratePayloadRequest struct {
	BeneficiaryName string `json:"beneficiary_name" binding:"required,max=70"`
	IBAN            string `json:"iban" binding:"required,iban"`
	BIC             string `json:"bic,omitempty" binding:"omitempty,min=8,max=11"`
	Amount          string `json:"amount,omitempty" binding:"omitempty,money_amount"`
	Purpose         string `json:"purpose,omitempty" binding:"omitempty,purpose_code"`
	Remittance      string `json:"remittance,omitempty" binding:"omitempty,max=140"`
	Reference       string `json:"reference,omitempty" binding:"omitempty,rf_reference"`
	Information     string `json:"information,omitempty" binding:"omitempty,max=70"`
	Version         string `json:"version,omitempty" binding:"omitempty,oneof=001 002"`
	Instant         bool   `json:"instant,omitempty"`
}

func (r GeneratePayloadRequest) toCommand() dtos.GeneratePayloadCommand {
	return dtos.GeneratePayloadCommand{
		BeneficiaryName: r.BeneficiaryName,
		IBAN:            r.IBAN,
		BIC:             r.BIC,
		Amount:          r.Amount,
		Purpose:         r.Purpose,
		Remittance:      r.Remittance,
		Reference:       r.Reference,
		Information:     r.Information,
		Version:         r.Version,
		Instant:         r.Instant,
	}
}

// GeneratePayload handles POST /api/v1/payloads.
// Returns the payload text plus the normalized fields.
func (h *PayloadHandler) GeneratePayload(c *gin.Context) {
	var req GeneratePayloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BadRequestResponse(c, err.Error())
		return
	}

	dto, err := h.generate.Execute(c.Request.Context(), req.toCommand())
	if err != nil {
		middleware.PayloadsGenerated.WithLabelValues(req.Version, "rejected").Inc()
		common.HandleDomainError(c, err)
		return
	}

	middleware.PayloadsGenerated.WithLabelValues(dto.Version, "generated").Inc()
	common.Success(c, http.StatusOK, dto)
}

// GenerateImage handles POST /api/v1/payloads/image.
// Same request body, but the response is the rendered QR code as image/png.
// The optional ?size query parameter picks the edge length in pixels.
func (h *PayloadHandler) GenerateImage(c *gin.Context) {
	var req GeneratePayloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BadRequestResponse(c, err.Error())
		return
	}

	size := h.qr.DefaultSize
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < minQRSize || parsed > h.qr.MaxSize {
			common.BadRequestResponse(c, fmt.Sprintf(
				"size must be an integer between %d and %d", minQRSize, h.qr.MaxSize,
			))
			return
		}
		size = parsed
	}

	dto, err := h.generate.Execute(c.Request.Context(), req.toCommand())
	if err != nil {
		middleware.PayloadsGenerated.WithLabelValues(req.Version, "rejected").Inc()
		common.HandleDomainError(c, err)
		return
	}
	middleware.PayloadsGenerated.WithLabelValues(dto.Version, "generated").Inc()

	// EPC069-12 recommends error correction level M for payment QR codes.
	png, err := qrcode.Encode(dto.Payload, qrcode.Medium, size)
	if err != nil {
		common.InternalErrorResponse(c)
		return
	}

	middleware.QRImagesRendered.WithLabelValues(strconv.Itoa(size)).Inc()
	c.Data(http.StatusOK, "image/png", png)
}

// RegisterRoutes mounts the payload endpoints on the given group.
func (h *PayloadHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/payloads", h.GeneratePayload)
	group.POST("/payloads/image", h.GenerateImage)
}

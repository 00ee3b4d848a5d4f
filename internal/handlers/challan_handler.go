package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"challan-management-backend/internal/middleware"
	challan "challan-management-backend/internal/services/challan"
	"challan-management-backend/internal/services/numbering"
	"challan-management-backend/internal/services/pdf"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ChallanHandler struct {
	service  *challan.Service
	renderer *pdf.Renderer
}

func NewChallanHandler(service *challan.Service, renderer *pdf.Renderer) *ChallanHandler {
	return &ChallanHandler{service: service, renderer: renderer}
}

func (h *ChallanHandler) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	var payload struct {
		Date     string `json:"date"` // "dd-mm-yyyy"
		ClientID string `json:"client_id"`
		BranchID string `json:"branch_id"`
		Items    []struct {
			Particular string          `json:"particular"`
			Quantity   int             `json:"quantity"`
			Price      decimal.Decimal `json:"price"`
			Remarks    string          `json:"remarks"`
		} `json:"items"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}

	date, err := time.Parse("02-01-2006", payload.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid date format, expected dd-mm-yyyy"})
		return
	}

	lines := make([]challan.LineInput, 0, len(payload.Items))
	for _, item := range payload.Items {
		lines = append(lines, challan.LineInput{
			Particular: item.Particular,
			Quantity:   item.Quantity,
			Price:      item.Price,
			Remarks:    item.Remarks,
		})
	}

	created, err := h.service.Create(identity.Username, date, payload.ClientID, payload.BranchID, lines)
	if err != nil {
		switch {
		case errors.Is(err, challan.ErrNoItems), errors.Is(err, challan.ErrInvalidItem):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, challan.ErrClientNotFound), errors.Is(err, challan.ErrBranchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "client or branch not found"})
		case errors.Is(err, numbering.ErrBillerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "biller not found"})
		case errors.Is(err, challan.ErrDuplicateChallanID):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "duplicate challan identifier"})
		default:
			log.Println("create challan failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "challanId": created.ChallanID})
}

func (h *ChallanHandler) List(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	challans, err := h.service.List(identity.BillingCode, identity.IsAdmin())
	if err != nil {
		log.Println("list challans failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch challans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "challans": challans})
}

func (h *ChallanHandler) Items(c *gin.Context) {
	items, err := h.service.Items(c.Param("challanId"))
	if err != nil {
		log.Println("list billing items failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch billing items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
}

// DownloadPDF renders the challan and streams it straight from memory,
// so there is no transient file to clean up on any path.
func (h *ChallanHandler) DownloadPDF(c *gin.Context) {
	challanID := c.Param("challanId")

	ch, err := h.service.Get(challanID)
	if err != nil {
		if errors.Is(err, challan.ErrChallanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "challan not found"})
			return
		}
		log.Println("get challan failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch challan"})
		return
	}

	items, err := h.service.Items(challanID)
	if err != nil {
		log.Println("get billing items failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch billing items"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "no billing items found for this challan"})
		return
	}

	data, err := h.renderer.Render(ch, items)
	if err != nil {
		log.Println("render challan failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to generate PDF"})
		return
	}

	if identity, ok := middleware.CurrentIdentity(c); ok {
		h.service.RecordRender(challanID, identity.Username)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=Challan_%s.pdf", challanID))
	c.Data(http.StatusOK, "application/pdf", data)
}

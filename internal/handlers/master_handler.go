package handler

import (
	"errors"
	"log"
	"net/http"

	"challan-management-backend/internal/models"
	"challan-management-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasterHandler covers the client/branch/item master data. Plain CRUD,
// so it talks to the repositories directly.
type MasterHandler struct {
	clients  *repository.ClientRepository
	branches *repository.BranchRepository
	items    *repository.ItemRepository
}

func NewMasterHandler(clients *repository.ClientRepository, branches *repository.BranchRepository, items *repository.ItemRepository) *MasterHandler {
	return &MasterHandler{clients: clients, branches: branches, items: items}
}

func (h *MasterHandler) CreateClient(c *gin.Context) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := c.BindJSON(&payload); err != nil || payload.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "client name is required"})
		return
	}

	client := models.Client{ID: uuid.New(), Name: payload.Name}
	if err := h.clients.Create(&client); err != nil {
		log.Println("create client failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to add client"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "client": client})
}

func (h *MasterHandler) ListClients(c *gin.Context) {
	clients, err := h.clients.List()
	if err != nil {
		log.Println("list clients failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch clients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "clients": clients})
}

func (h *MasterHandler) GetClient(c *gin.Context) {
	client, err := h.clients.GetByID(c.Param("clientId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "client not found"})
			return
		}
		log.Println("get client failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "client": client})
}

// CreateBranches adds one or more branches under an existing client.
func (h *MasterHandler) CreateBranches(c *gin.Context) {
	var payload struct {
		ClientID string   `json:"client_id"`
		Branches []string `json:"branches"`
	}
	if err := c.BindJSON(&payload); err != nil || payload.ClientID == "" || len(payload.Branches) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "client ID and branch names are required"})
		return
	}

	client, err := h.clients.GetByID(payload.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "client not found"})
			return
		}
		log.Println("create branches failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to add branches"})
		return
	}

	branches := make([]models.Branch, 0, len(payload.Branches))
	for _, name := range payload.Branches {
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "branch name cannot be empty"})
			return
		}
		branches = append(branches, models.Branch{ID: uuid.New(), Name: name, ClientID: client.ID})
	}

	if err := h.branches.CreateMany(branches); err != nil {
		log.Println("create branches failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to add branches"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "branches added successfully"})
}

func (h *MasterHandler) ListBranchesByClient(c *gin.Context) {
	branches, err := h.branches.ListByClient(c.Param("clientId"))
	if err != nil {
		log.Println("list branches failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch branches"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "branches": branches})
}

func (h *MasterHandler) GetBranch(c *gin.Context) {
	branch, err := h.branches.GetByID(c.Param("branchId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "branch not found"})
			return
		}
		log.Println("get branch failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch branch"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "branch": branch})
}

func (h *MasterHandler) CreateItem(c *gin.Context) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := c.BindJSON(&payload); err != nil || payload.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "item name is required"})
		return
	}

	item := models.Item{ID: uuid.New(), Name: payload.Name}
	if err := h.items.Create(&item); err != nil {
		log.Println("create item failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to add item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
}

func (h *MasterHandler) ListItems(c *gin.Context) {
	items, err := h.items.List()
	if err != nil {
		log.Println("list items failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
}

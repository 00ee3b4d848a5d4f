package challan

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"challan-management-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrBranchNotFound     = errors.New("branch not found")
	ErrChallanNotFound    = errors.New("challan not found")
	ErrNoItems            = errors.New("challan must have at least one billing item")
	ErrInvalidItem        = errors.New("billing item has an empty particular or non-positive quantity")
	ErrDuplicateChallanID = errors.New("duplicate challan identifier")
)

type allocator interface {
	Allocate(username string) (string, error)
}

type clientStore interface {
	GetByID(id string) (*models.Client, error)
}

type branchStore interface {
	GetByID(id string) (*models.Branch, error)
}

type challanStore interface {
	CreateWithItems(challan *models.Challan, items []models.BillingItem) error
	ListAll() ([]models.Challan, error)
	ListByPrefix(billingCode string) ([]models.Challan, error)
	GetByChallanID(challanID string) (*models.Challan, error)
	ItemsByChallanID(challanID string) ([]models.BillingItem, error)
	InsertAuditLog(entry *models.ChallanAuditLog) error
}

// LineInput is one requested line item on a new challan.
type LineInput struct {
	Particular string
	Quantity   int
	Price      decimal.Decimal
	Remarks    string
}

type Service struct {
	allocator allocator
	clients   clientStore
	branches  branchStore
	challans  challanStore
}

func NewService(a allocator, clients clientStore, branches branchStore, challans challanStore) *Service {
	return &Service{
		allocator: a,
		clients:   clients,
		branches:  branches,
		challans:  challans,
	}
}

// Create validates the input, snapshots the client and branch names,
// allocates the next identifier for the issuing biller and persists
// header plus line items in one transaction. Allocation happens only
// after the referenced records are known to exist, so a missing client
// or branch never burns a sequence number for nothing avoidable.
func (s *Service) Create(issuedBy string, date time.Time, clientID, branchID string, lines []LineInput) (*models.Challan, error) {
	if len(lines) == 0 {
		return nil, ErrNoItems
	}
	for _, line := range lines {
		if line.Particular == "" || line.Quantity <= 0 || line.Price.IsNegative() {
			return nil, ErrInvalidItem
		}
	}

	client, err := s.clients.GetByID(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	branch, err := s.branches.GetByID(branchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}

	challanID, err := s.allocator.Allocate(issuedBy)
	if err != nil {
		return nil, err
	}

	challan := &models.Challan{
		ID:         uuid.New(),
		ChallanID:  challanID,
		Date:       date,
		ClientID:   client.ID,
		ClientName: client.Name,
		BranchID:   branch.ID,
		BranchName: branch.Name,
		IssuedBy:   issuedBy,
	}
	items := make([]models.BillingItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.BillingItem{
			ID:         uuid.New(),
			ChallanID:  challanID,
			Particular: line.Particular,
			Quantity:   line.Quantity,
			Price:      line.Price,
			Remarks:    line.Remarks,
		})
	}

	if err := s.challans.CreateWithItems(challan, items); err != nil {
		// unreachable while allocation is serialized, but the unique
		// index is still the last line of defense
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateChallanID
		}
		return nil, err
	}

	s.audit(challanID, "created", issuedBy, map[string]any{"items": len(items)})
	return challan, nil
}

// List returns all challans for admins (identifier descending) and
// only the caller's own series for billers (date descending).
func (s *Service) List(billingCode string, admin bool) ([]models.Challan, error) {
	if admin {
		return s.challans.ListAll()
	}
	return s.challans.ListByPrefix(billingCode)
}

func (s *Service) Get(challanID string) (*models.Challan, error) {
	challan, err := s.challans.GetByChallanID(challanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChallanNotFound
		}
		return nil, err
	}
	return challan, nil
}

func (s *Service) Items(challanID string) ([]models.BillingItem, error) {
	return s.challans.ItemsByChallanID(challanID)
}

// RecordRender notes a successful PDF render in the audit trail.
func (s *Service) RecordRender(challanID, performedBy string) {
	s.audit(challanID, "rendered", performedBy, nil)
}

// audit is best-effort: a failed audit write is logged, never surfaced.
func (s *Service) audit(challanID, action, performedBy string, details map[string]any) {
	var payload datatypes.JSON
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			payload = datatypes.JSON(raw)
		}
	}
	entry := &models.ChallanAuditLog{
		ID:          uuid.New(),
		ChallanID:   challanID,
		Action:      action,
		PerformedBy: performedBy,
		Details:     payload,
	}
	if err := s.challans.InsertAuditLog(entry); err != nil {
		log.Printf("audit write failed for challan %s: %v", challanID, err)
	}
}

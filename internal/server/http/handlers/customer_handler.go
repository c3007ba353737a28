package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loyaltyworks/rewards/internal/domain/model"
	"github.com/loyaltyworks/rewards/internal/server/http/dto"
)

// CustomerHandler manages customer endpoints.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// Get handles GET /api/customers/:customerId.
func (h *CustomerHandler) Get(c *gin.Context) {
	customerID := c.Param("customerId")
	customer, err := h.facade.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		writeError(c, err, "Customer not found: "+customerID)
		return
	}
	c.XML(http.StatusOK, customerDocument(customer))
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.facade.ListCustomers(c.Request.Context())
	if err != nil {
		writeError(c, err, "")
		return
	}
	doc := dto.CustomerListDocument{Customers: make([]dto.CustomerDocument, 0, len(customers))}
	for i := range customers {
		doc.Customers = append(doc.Customers, customerDocument(&customers[i]))
	}
	c.XML(http.StatusOK, doc)
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	if !requireXML(c) {
		return
	}
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindXML(&req); err != nil {
		c.XML(http.StatusBadRequest, dto.ErrorDocument{Message: "Malformed customer document"})
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.EmailAddress == "" {
		c.XML(http.StatusBadRequest, dto.ErrorDocument{Message: "Missing required fields: firstName, lastName, emailAddress"})
		return
	}

	customer, err := h.facade.CreateCustomer(c.Request.Context(), req.FirstName, req.LastName, req.EmailAddress, req.PhoneNumber)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.XML(http.StatusCreated, customerDocument(customer))
}

func customerDocument(customer *model.Customer) dto.CustomerDocument {
	return dto.CustomerDocument{
		CustomerID:             customer.CustomerID,
		FirstName:              customer.FirstName,
		LastName:               customer.LastName,
		EmailAddress:           customer.EmailAddress,
		PhoneNumber:            customer.PhoneNumber,
		RegistrationDate:       customer.RegistrationDate,
		LoyaltyTier:            customer.LoyaltyTier,
		TotalLifetimePoints:    customer.TotalLifetimePoints,
		CurrentAvailablePoints: customer.CurrentAvailablePoints,
		AccountStatus:          customer.AccountStatus,
	}
}

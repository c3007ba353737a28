package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loyaltyworks/rewards/internal/domain/model"
	"github.com/loyaltyworks/rewards/internal/server/http/dto"
)

// TransactionHandler manages points ledger endpoints.
type TransactionHandler struct {
	facade TransactionFacade
}

// NewTransactionHandler constructs TransactionHandler.
func NewTransactionHandler(facade TransactionFacade) *TransactionHandler {
	return &TransactionHandler{facade: facade}
}

// Get handles GET /api/transactions/:transactionId.
func (h *TransactionHandler) Get(c *gin.Context) {
	transactionID := c.Param("transactionId")
	transaction, err := h.facade.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		writeError(c, err, "Transaction not found: "+transactionID)
		return
	}
	c.XML(http.StatusOK, transactionDocument(transaction))
}

// List handles GET /api/transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.facade.ListTransactions(c.Request.Context())
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.XML(http.StatusOK, transactionListDocument(transactions))
}

// ListByCustomer handles GET /api/customers/:customerId/transactions.
func (h *TransactionHandler) ListByCustomer(c *gin.Context) {
	customerID := c.Param("customerId")
	transactions, err := h.facade.ListTransactionsForCustomer(c.Request.Context(), customerID)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.XML(http.StatusOK, transactionListDocument(transactions))
}

// Create handles POST /api/transactions.
func (h *TransactionHandler) Create(c *gin.Context) {
	if !requireXML(c) {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindXML(&req); err != nil {
		c.XML(http.StatusBadRequest, dto.ErrorDocument{Message: "Malformed transaction document"})
		return
	}

	amount := req.PointsAmount
	if amount == nil {
		amount = req.Amount
	}
	if req.CustomerID == "" || req.TransactionType == "" || amount == nil {
		c.XML(http.StatusBadRequest, dto.ErrorDocument{Message: "Missing required fields: customerId, transactionType, pointsAmount"})
		return
	}

	transaction, err := h.facade.CreateTransaction(c.Request.Context(), req.CustomerID, req.TransactionType, *amount, req.Description)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.XML(http.StatusCreated, transactionDocument(transaction))
}

func transactionDocument(transaction *model.PointsTransaction) dto.TransactionDocument {
	return dto.TransactionDocument{
		TransactionID:   transaction.TransactionID,
		CustomerID:      transaction.CustomerID,
		TransactionType: transaction.TransactionType,
		PointsAmount:    transaction.PointsAmount,
		TransactionDate: transaction.TransactionDate,
		ExpirationDate:  transaction.ExpirationDate,
		RelatedOrderID:  transaction.RelatedOrderID,
		Description:     transaction.Description,
		CreatedBy:       transaction.CreatedBy,
		Status:          transaction.Status,
	}
}

func transactionListDocument(transactions []model.PointsTransaction) dto.TransactionListDocument {
	doc := dto.TransactionListDocument{Transactions: make([]dto.TransactionDocument, 0, len(transactions))}
	for i := range transactions {
		doc.Transactions = append(doc.Transactions, transactionDocument(&transactions[i]))
	}
	return doc
}

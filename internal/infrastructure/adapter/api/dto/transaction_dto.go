package dto

import (
	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
)

// TransactionDTO is the wire form of a transaction
type TransactionDTO struct {
	ID           int64   `json:"id"`
	ProductID    string  `json:"product_id"`
	ProductName  *string `json:"product_name"`
	CustomerID   string  `json:"customer_id"`
	CustomerName *string `json:"customer_name"`
	Quantity     int64   `json:"quantity"`
	Price        float64 `json:"price"`
	Timestamp    string  `json:"timestamp"`
	Total        float64 `json:"total"`
}

// NewTransactionDTO serializes a transaction with its rounded total
func NewTransactionDTO(tx entity.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:           tx.ID,
		ProductID:    tx.ProductID,
		ProductName:  tx.ProductName,
		CustomerID:   tx.CustomerID,
		CustomerName: tx.CustomerName,
		Quantity:     tx.Quantity,
		Price:        tx.Price,
		Timestamp:    entity.FormatTimestamp(tx.Timestamp),
		Total:        entity.RoundMoney(tx.Total()),
	}
}

// TransactionResponse wraps a single transaction
type TransactionResponse struct {
	Transaction TransactionDTO `json:"transaction"`
}

// DeleteTransactionResponse returns the deleted record with a confirmation
type DeleteTransactionResponse struct {
	Message     string         `json:"message"`
	Transaction TransactionDTO `json:"transaction"`
}

// TransactionListResponse is one page of a listing; Count ignores pagination
type TransactionListResponse struct {
	Count        int              `json:"count"`
	Transactions []TransactionDTO `json:"transactions"`
}

// NewTransactionListResponse converts a page for the wire
func NewTransactionListResponse(page entity.TransactionPage) TransactionListResponse {
	items := make([]TransactionDTO, 0, len(page.Transactions))
	for _, tx := range page.Transactions {
		items = append(items, NewTransactionDTO(tx))
	}
	return TransactionListResponse{
		Count:        page.Count,
		Transactions: items,
	}
}

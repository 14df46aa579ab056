package transaction

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sales-analytics/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sales-analytics/internal/domain/port/core"
	"github.com/amirhossein-jamali/sales-analytics/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/sales-analytics/internal/domain/port/usecase"
)

// Service implements usecase.TransactionUseCase on top of the record store
type Service struct {
	repo   persistence.TransactionRepository
	logger coreport.Logger
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(repo persistence.TransactionRepository, logger coreport.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateTransaction validates a full payload and stores it
func (s *Service) CreateTransaction(ctx context.Context, payload map[string]any) (entity.Transaction, error) {
	input, violations := ValidatePayload(payload, false)
	if len(violations) > 0 {
		s.logger.Debug("Rejected transaction payload", map[string]any{
			"violations": violations,
		})
		return entity.Transaction{}, errs.NewValidationError(violations)
	}

	tx, err := s.repo.Create(ctx, input)
	if err != nil {
		return entity.Transaction{}, s.fail("create", 0, err)
	}

	s.logger.Info("Transaction created", map[string]any{
		"transaction_id": tx.ID,
		"product_id":     tx.ProductID,
		"customer_id":    tx.CustomerID,
		"total":          tx.Total(),
	})
	return tx, nil
}

// GetTransaction fetches a single record
func (s *Service) GetTransaction(ctx context.Context, id int64) (entity.Transaction, error) {
	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Transaction{}, s.fail("get", id, err)
	}
	return tx, nil
}

// UpdateTransaction checks the record exists, then validates and applies the payload
func (s *Service) UpdateTransaction(ctx context.Context, id int64, payload map[string]any) (entity.Transaction, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return entity.Transaction{}, s.fail("update", id, err)
	}

	input, violations := ValidatePayload(payload, true)
	if len(violations) > 0 {
		s.logger.Debug("Rejected transaction update", map[string]any{
			"transaction_id": id,
			"violations":     violations,
		})
		return entity.Transaction{}, errs.NewValidationError(violations)
	}

	tx, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return entity.Transaction{}, s.fail("update", id, err)
	}

	s.logger.Info("Transaction updated", map[string]any{
		"transaction_id": tx.ID,
		"product_id":     tx.ProductID,
		"customer_id":    tx.CustomerID,
		"total":          tx.Total(),
	})
	return tx, nil
}

// DeleteTransaction removes a record
func (s *Service) DeleteTransaction(ctx context.Context, id int64) (entity.Transaction, error) {
	tx, err := s.repo.Delete(ctx, id)
	if err != nil {
		return entity.Transaction{}, s.fail("delete", id, err)
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": tx.ID,
	})
	return tx, nil
}

// ListTransactions returns one page of matching records
func (s *Service) ListTransactions(ctx context.Context, filter entity.TransactionFilter) (entity.TransactionPage, error) {
	page, err := s.repo.List(ctx, filter)
	if err != nil {
		return entity.TransactionPage{}, s.fail("list", 0, err)
	}
	return page, nil
}

// fail logs unexpected errors and wraps every error with the operation name.
// Not-found and validation errors are expected and logged at debug level.
func (s *Service) fail(op string, id int64, err error) error {
	fields := map[string]any{
		"operation": op,
		"error":     err.Error(),
	}
	if id != 0 {
		fields["transaction_id"] = id
	}
	for k, v := range errs.LogFields(err) {
		fields[k] = v
	}

	switch {
	case errs.IsNotFoundError(err), errs.IsValidationError(err):
		s.logger.Debug("Transaction operation rejected", fields)
	default:
		s.logger.Error("Transaction operation failed", fields)
	}
	return fmt.Errorf("%s transaction: %w", op, err)
}

package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sales-analytics/internal/domain/error"
	mcore "github.com/amirhossein-jamali/sales-analytics/mocks/port/core"
	mpersistence "github.com/amirhossein-jamali/sales-analytics/mocks/port/persistence"
)

func newTestService(t *testing.T) (*Service, *mpersistence.MockTransactionRepository, *mcore.MockLogger) {
	repo := mpersistence.NewMockTransactionRepository(t)
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Return().Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	return NewTransactionService(repo, logger), repo, logger
}

func sampleTransaction(id int64) entity.Transaction {
	return entity.Transaction{
		ID:         id,
		ProductID:  "P100",
		CustomerID: "C1",
		Quantity:   3,
		Price:      49.99,
		Timestamp:  time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestService_CreateTransaction(t *testing.T) {
	service, repo, _ := newTestService(t)
	ctx := context.Background()

	expectedInput := entity.TransactionInput{
		ProductID:  entity.Some("P100"),
		CustomerID: entity.Some("C1"),
		Quantity:   entity.Some(int64(3)),
		Price:      entity.Some(49.99),
	}
	repo.EXPECT().Create(ctx, expectedInput).Return(sampleTransaction(1), nil).Once()

	tx, err := service.CreateTransaction(ctx, map[string]any{
		"product_id":  "P100",
		"customer_id": "C1",
		"quantity":    float64(3),
		"price":       49.99,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), tx.ID)
	assert.InDelta(t, 149.97, tx.Total(), 1e-9)
}

func TestService_CreateTransaction_ValidationFailure(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.CreateTransaction(context.Background(), map[string]any{"product_id": "P1"})

	require.Error(t, err)
	assert.True(t, errs.IsValidationError(err))
	assert.Equal(t, []string{
		"customer_id is required",
		"quantity is required",
		"price is required",
	}, errs.Violations(err))
}

func TestService_CreateTransaction_RepositoryFailure(t *testing.T) {
	service, repo, logger := newTestService(t)
	boom := errors.New("boom")

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(entity.Transaction{}, boom).Once()
	logger.EXPECT().Error("Transaction operation failed", mock.Anything).Return().Once()

	_, err := service.CreateTransaction(context.Background(), validPayload())

	assert.ErrorIs(t, err, boom)
}

func TestService_UpdateTransaction_NotFoundBeforeValidation(t *testing.T) {
	service, repo, _ := newTestService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(9)).
		Return(entity.Transaction{}, errs.NewTransactionNotFoundError(9)).Once()

	_, err := service.UpdateTransaction(context.Background(), 9, map[string]any{"quantity": float64(-1)})

	require.Error(t, err)
	assert.True(t, errs.IsNotFoundError(err))
	assert.False(t, errs.IsValidationError(err))
}

func TestService_RejectionLogsErrorFields(t *testing.T) {
	repo := mpersistence.NewMockTransactionRepository(t)
	logger := mcore.NewMockLogger(t)
	service := NewTransactionService(repo, logger)

	repo.EXPECT().Delete(mock.Anything, int64(4)).
		Return(entity.Transaction{}, errs.NewTransactionNotFoundError(4)).Once()
	logger.EXPECT().Debug("Transaction operation rejected", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["operation"] == "delete" &&
			fields["error_type"] == "transaction_not_found" &&
			fields["error_code"] == errs.CodeTransactionNotFound &&
			fields["transaction_id"] == int64(4)
	})).Return().Once()

	_, err := service.DeleteTransaction(context.Background(), 4)

	assert.True(t, errs.IsNotFoundError(err))
}

func TestService_UpdateTransaction_ValidationFailure(t *testing.T) {
	service, repo, _ := newTestService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(sampleTransaction(1), nil).Once()

	_, err := service.UpdateTransaction(context.Background(), 1, map[string]any{"quantity": float64(-1)})

	assert.Equal(t, []string{"quantity must be a positive integer"}, errs.Violations(err))
}

func TestService_UpdateTransaction(t *testing.T) {
	service, repo, _ := newTestService(t)
	ctx := context.Background()

	updated := sampleTransaction(1)
	updated.ProductID = "P2"

	repo.EXPECT().GetByID(ctx, int64(1)).Return(sampleTransaction(1), nil).Once()
	repo.EXPECT().Update(ctx, int64(1), entity.TransactionInput{ProductID: entity.Some("P2")}).
		Return(updated, nil).Once()

	tx, err := service.UpdateTransaction(ctx, 1, map[string]any{"product_id": "P2"})

	require.NoError(t, err)
	assert.Equal(t, "P2", tx.ProductID)
}

func TestService_GetAndDelete_NotFound(t *testing.T) {
	service, repo, _ := newTestService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(5)).
		Return(entity.Transaction{}, errs.NewTransactionNotFoundError(5)).Once()
	repo.EXPECT().Delete(mock.Anything, int64(5)).
		Return(entity.Transaction{}, errs.NewTransactionNotFoundError(5)).Once()

	_, err := service.GetTransaction(context.Background(), 5)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

	_, err = service.DeleteTransaction(context.Background(), 5)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestService_DeleteTransaction(t *testing.T) {
	service, repo, _ := newTestService(t)

	repo.EXPECT().Delete(mock.Anything, int64(1)).Return(sampleTransaction(1), nil).Once()

	tx, err := service.DeleteTransaction(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), tx.ID)
}

func TestService_ListTransactions(t *testing.T) {
	service, repo, _ := newTestService(t)
	limit := 1
	filter := entity.TransactionFilter{ProductID: "P100", Limit: &limit, Offset: 1}
	page := entity.TransactionPage{Count: 3, Transactions: []entity.Transaction{sampleTransaction(2)}}

	repo.EXPECT().List(mock.Anything, filter).Return(page, nil).Once()

	got, err := service.ListTransactions(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, page, got)
}

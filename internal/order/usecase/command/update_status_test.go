package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tair/shop-backoffice/internal/order/domain"
)

func TestUpdateStatus_Success(t *testing.T) {
	repo := new(mockOrderRepository)
	handler := NewUpdateStatusHandler(repo)

	updated := &domain.Order{ID: 5, Status: domain.StatusCompleted}
	repo.On("UpdateStatus", mock.Anything, uint(5), domain.StatusCompleted).Return(updated, nil)

	order, err := handler.Handle(context.Background(), UpdateStatusCommand{ID: 5, Status: domain.StatusCompleted})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, order.Status)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := new(mockOrderRepository)
	handler := NewUpdateStatusHandler(repo)

	order, err := handler.Handle(context.Background(), UpdateStatusCommand{ID: 5, Status: "shipped"})

	assert.Nil(t, order)
	assert.EqualError(t, err, `invalid order status "shipped"`)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := new(mockOrderRepository)
	handler := NewUpdateStatusHandler(repo)

	repo.On("UpdateStatus", mock.Anything, uint(99), domain.StatusCancelled).Return(nil, domain.ErrNotFound)

	order, err := handler.Handle(context.Background(), UpdateStatusCommand{ID: 99, Status: domain.StatusCancelled})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteOrder_Success(t *testing.T) {
	repo := new(mockOrderRepository)
	handler := NewDeleteOrderHandler(repo)

	repo.On("Delete", mock.Anything, uint(5)).Return(nil)

	require.NoError(t, handler.Handle(context.Background(), DeleteOrderCommand{ID: 5}))
	repo.AssertExpectations(t)
}

func TestDeleteOrder_NotFound(t *testing.T) {
	repo := new(mockOrderRepository)
	handler := NewDeleteOrderHandler(repo)

	repo.On("Delete", mock.Anything, uint(99)).Return(domain.ErrNotFound)

	assert.ErrorIs(t, handler.Handle(context.Background(), DeleteOrderCommand{ID: 99}), domain.ErrNotFound)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, domain.ValidStatus(domain.StatusPending))
	assert.True(t, domain.ValidStatus(domain.StatusProcessing))
	assert.True(t, domain.ValidStatus(domain.StatusCompleted))
	assert.True(t, domain.ValidStatus(domain.StatusCancelled))
	assert.False(t, domain.ValidStatus("shipped"))
	assert.False(t, domain.ValidStatus(""))
}

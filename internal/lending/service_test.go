package lending

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLedger := NewMockLedger(ctrl)
	service := NewService(mockLedger)

	t.Run("trims customer name and passes through", func(t *testing.T) {
		var got IssueParams
		mockLedger.EXPECT().Issue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p IssueParams) (Loan, error) {
				got = p
				return Loan{ID: "loan-1", BookID: p.BookID}, nil
			})

		date := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
		loan, err := service.Issue(context.Background(), "book-1", "  Ada Lovelace  ", date)

		require.NoError(t, err)
		assert.Equal(t, "loan-1", loan.ID)
		assert.Equal(t, "Ada Lovelace", got.CustomerName)
		assert.Equal(t, date, got.IssueDate)
	})

	t.Run("defaults zero issue date to today", func(t *testing.T) {
		var got IssueParams
		mockLedger.EXPECT().Issue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p IssueParams) (Loan, error) {
				got = p
				return Loan{ID: "loan-2"}, nil
			})

		_, err := service.Issue(context.Background(), "book-1", "Reader", time.Time{})

		require.NoError(t, err)
		require.False(t, got.IssueDate.IsZero())
		wy, wm, wd := time.Now().Date()
		gy, gm, gd := got.IssueDate.Date()
		assert.Equal(t, [3]int{wy, int(wm), wd}, [3]int{gy, int(gm), gd})
	})

	t.Run("rejects empty customer name before any transaction", func(t *testing.T) {
		// No EXPECT on the ledger: the validation failure must short-circuit.
		_, err := service.Issue(context.Background(), "book-1", "   ", time.Time{})
		assert.ErrorIs(t, err, ErrCustomerRequired)
	})

	t.Run("propagates out of stock", func(t *testing.T) {
		mockLedger.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(Loan{}, ErrOutOfStock)

		_, err := service.Issue(context.Background(), "book-1", "Reader", time.Time{})
		assert.ErrorIs(t, err, ErrOutOfStock)
	})
}

func TestService_Return(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLedger := NewMockLedger(ctrl)
	service := NewService(mockLedger)

	t.Run("passes through", func(t *testing.T) {
		returned := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		mockLedger.EXPECT().Return(gomock.Any(), "loan-1").Return(Loan{ID: "loan-1", ReturnDate: &returned}, nil)

		loan, err := service.Return(context.Background(), "loan-1")
		require.NoError(t, err)
		require.NotNil(t, loan.ReturnDate)
	})

	t.Run("rejects blank loan id without touching the ledger", func(t *testing.T) {
		_, err := service.Return(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrLoanNotFound)
	})

	t.Run("propagates already returned", func(t *testing.T) {
		mockLedger.EXPECT().Return(gomock.Any(), "loan-1").Return(Loan{}, ErrAlreadyReturned)

		_, err := service.Return(context.Background(), "loan-1")
		assert.ErrorIs(t, err, ErrAlreadyReturned)
	})
}

func TestService_ListIssued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLedger := NewMockLedger(ctrl)
	service := NewService(mockLedger)

	mockLedger.EXPECT().ListIssued(gomock.Any()).Return([]IssuedLoan{
		{Loan: Loan{ID: "loan-1"}, BookTitle: "Frankenstein"},
	}, nil)

	loans, err := service.ListIssued(context.Background())
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, "Frankenstein", loans[0].BookTitle)
}

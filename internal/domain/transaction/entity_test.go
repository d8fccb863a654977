package transaction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDetail(t *testing.T) {
	d := NewDetail(1, 3, 2500)

	assert.Equal(t, uint(1), d.BookID)
	assert.Equal(t, 3, d.Quantity)
	assert.Equal(t, int64(2500), d.Price)
	assert.Equal(t, int64(7500), d.Subtotal)
}

func TestNewTransaction(t *testing.T) {
	details := []TransactionDetail{
		NewDetail(1, 2, 1000), // 2000
		NewDetail(2, 1, 3500), // 3500
	}

	tx := NewTransaction(42, details)

	assert.Equal(t, uint(42), tx.UserID)
	assert.Equal(t, int64(5500), tx.TotalAmount)
	assert.Len(t, tx.Details, 2)
	assert.True(t, strings.HasPrefix(tx.TransactionNo, "TXN"))
	assert.False(t, tx.CreatedAt.IsZero())
}

func TestCalculateTotal_Empty(t *testing.T) {
	tx := &Transaction{}
	assert.Equal(t, int64(0), tx.CalculateTotal())
}

func TestGenerateTransactionNo_Format(t *testing.T) {
	no := GenerateTransactionNo()

	assert.True(t, strings.HasPrefix(no, "TXN"))
	assert.Len(t, no, 3+14+6)
}

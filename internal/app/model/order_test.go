package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderID(t *testing.T) {
	now := time.UnixMilli(1717171717171)
	assert.Equal(t, "ORD-1717171717171", NewOrderID(now))
}

func TestCopyLines_Independent(t *testing.T) {
	original := []CartLine{{ID: "a", Name: "A", Quantity: 1}}
	copied := CopyLines(original)

	copied[0].Quantity = 5
	assert.Equal(t, 1, original[0].Quantity)
}

func TestCopyLines_EmptyAndNil(t *testing.T) {
	assert.NotNil(t, CopyLines(nil))
	assert.Empty(t, CopyLines(nil))
	assert.Empty(t, CopyLines([]CartLine{}))
}

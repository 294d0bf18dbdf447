package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCookieRecordRemaining(t *testing.T) {
	testCases := []struct {
		name     string
		record   CookieRecord
		expected int
	}{
		{name: "zero record", record: CookieRecord{}, expected: 0},
		{name: "only starting", record: CookieRecord{Starting: 10}, expected: 10},
		{name: "after sales", record: CookieRecord{Starting: 10, Sold: 6}, expected: 4},
		{name: "negative additional from transfer out", record: CookieRecord{Starting: 10, Additional: -4}, expected: 6},
		{name: "restock and sales", record: CookieRecord{Starting: 12, Additional: 24, Sold: 30}, expected: 6},
		{name: "sold everything", record: CookieRecord{Starting: 10, Additional: -4, Sold: 6}, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.record.Remaining())
		})
	}
}

func TestValidField(t *testing.T) {
	assert.True(t, ValidField(FieldStarting))
	assert.True(t, ValidField(FieldAdditional))
	assert.True(t, ValidField(FieldSold))
	assert.False(t, ValidField("remaining"))
	assert.False(t, ValidField(""))
}

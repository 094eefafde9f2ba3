package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSpecIsActive(t *testing.T) {
	assert.False(t, FilterSpec{}.IsActive())
	assert.False(t, FilterSpec{"Account": {}}.IsActive())
	assert.True(t, FilterSpec{"Account": {"Acme"}}.IsActive())
}

func TestTableHasColumn(t *testing.T) {
	tbl := NewTable([]string{"Account", "Stage"})
	assert.True(t, tbl.HasColumn("Stage"))
	assert.False(t, tbl.HasColumn("Market"))
}

func TestSchemaNames(t *testing.T) {
	s := Schema{
		{Name: "Account", Type: ColumnString},
		{Name: "Total Current Revenue (converted)", Type: ColumnNumber},
	}
	assert.Equal(t, []string{"Account", "Total Current Revenue (converted)"}, s.Names())
}

func TestSchemaTypeOf(t *testing.T) {
	typ, ok := OutputSchema.TypeOf("Total Current Revenue (converted)")
	assert.True(t, ok)
	assert.Equal(t, ColumnNumber, typ)

	typ, ok = OutputSchema.TypeOf("Account")
	assert.True(t, ok)
	assert.Equal(t, ColumnString, typ)

	_, ok = OutputSchema.TypeOf("Nonexistent")
	assert.False(t, ok)
}

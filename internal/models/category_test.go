package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryTable_UnmarshalJSONKeepsOrder(t *testing.T) {
	raw := `{
		"網購": {"keywords": ["momo", "蝦皮"], "description": "online"},
		"餐飲": {"keywords": ["外送", "Uber Eats"], "description": "dining"},
		"交通": {"keywords": ["高鐵"], "description": "transport"}
	}`

	var table CategoryTable
	require.NoError(t, json.Unmarshal([]byte(raw), &table))

	assert.Equal(t, []string{"網購", "餐飲", "交通"}, table.Names())
	assert.Equal(t, 3, table.Len())

	dining, ok := table.Get("餐飲")
	require.True(t, ok)
	assert.Equal(t, []string{"外送", "Uber Eats"}, dining.Keywords)
	assert.Equal(t, "dining", dining.Description)

	assert.Equal(t, []CategoryKeyword{
		{Keyword: "momo", Category: "網購"},
		{Keyword: "蝦皮", Category: "網購"},
		{Keyword: "外送", Category: "餐飲"},
		{Keyword: "Uber Eats", Category: "餐飲"},
		{Keyword: "高鐵", Category: "交通"},
	}, table.Keywords())
}

func TestCategoryTable_DuplicateKeyReplacesInPlace(t *testing.T) {
	var table CategoryTable
	require.NoError(t, json.Unmarshal([]byte(`{"a":{"keywords":["x"]},"b":{"keywords":["y"]},"a":{"keywords":["z"]}}`), &table))

	assert.Equal(t, []string{"a", "b"}, table.Names())
	a, _ := table.Get("a")
	assert.Equal(t, []string{"z"}, a.Keywords)
}

func TestCategoryTable_RejectsNonObject(t *testing.T) {
	var table CategoryTable
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &table))
}

func TestCategoryTable_MarshalJSONRoundTripKeepsOrder(t *testing.T) {
	table := NewCategoryTable(
		MerchantCategory{Name: "z", Keywords: []string{"1"}},
		MerchantCategory{Name: "a"},
	)

	data, err := json.Marshal(table)
	require.NoError(t, err)
	assert.Equal(t, `{"z":{"keywords":["1"],"description":""},"a":{"keywords":[],"description":""}}`, string(data))
}

func TestCategoryTable_NilSafe(t *testing.T) {
	var table *CategoryTable
	assert.Equal(t, 0, table.Len())
	assert.False(t, table.Has("a"))
	assert.Nil(t, table.Keywords())
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupOf(t *testing.T) {
	assert.Equal(t, "cost_of_goods", GroupOf("ingredients"))
	assert.Equal(t, "operating_cost", GroupOf("rent"))
	assert.Equal(t, "sales_income", GroupOf("daily_sales"))
	assert.Equal(t, "", GroupOf("not_a_category"))
	assert.Equal(t, "", GroupOf(""))
}

func TestCategoriesInGroup(t *testing.T) {
	assert.Equal(t, []string{"ingredients", "packaging", "delivery_fees"}, CategoriesInGroup("cost_of_goods"))
	assert.Equal(t, []string{"wages", "staff_meals"}, CategoriesInGroup("staff_cost"))
	assert.Nil(t, CategoriesInGroup("no_such_group"))
}

func TestCategoryGroupsEndWithWildcard(t *testing.T) {
	require.NotEmpty(t, CategoryGroups)
	assert.Equal(t, GroupOther, CategoryGroups[len(CategoryGroups)-1])
}

func TestEveryListedCategoryResolvesToItsGroup(t *testing.T) {
	for _, group := range CategoryGroups {
		for _, category := range CategoriesInGroup(group) {
			assert.Equal(t, group, GroupOf(category), "category %s", category)
		}
	}
}

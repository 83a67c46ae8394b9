package domain

// GroupOther is the wildcard category group. When selected, the custom
// free-text group/category fields take over.
const GroupOther = "other"

type categoryEntry struct {
	Category string
	Group    string
}

// categoryTable is the static category taxonomy. Order matters only for
// display; lookups go through the helpers below.
var categoryTable = []categoryEntry{
	{Category: "ingredients", Group: "cost_of_goods"},
	{Category: "packaging", Group: "cost_of_goods"},
	{Category: "delivery_fees", Group: "cost_of_goods"},
	{Category: "rent", Group: "operating_cost"},
	{Category: "utilities", Group: "operating_cost"},
	{Category: "equipment", Group: "operating_cost"},
	{Category: "marketing", Group: "operating_cost"},
	{Category: "wages", Group: "staff_cost"},
	{Category: "staff_meals", Group: "staff_cost"},
	{Category: "daily_sales", Group: "sales_income"},
	{Category: "catering", Group: "sales_income"},
	{Category: "rebates", Group: "other_income"},
	{Category: "outgoing_transfer", Group: "internal_transfer"},
	{Category: "paynow_payout", Group: "payment_broker_transfer"},
}

// CategoryGroups lists the selectable groups, wildcard last.
var CategoryGroups = []string{
	"cost_of_goods",
	"operating_cost",
	"staff_cost",
	"sales_income",
	"other_income",
	GroupOther,
}

// GroupOf returns the group a category belongs to, or "" when the category
// is unknown.
func GroupOf(category string) string {
	for _, e := range categoryTable {
		if e.Category == category {
			return e.Group
		}
	}
	return ""
}

// CategoriesInGroup returns every category belonging to the given group.
func CategoriesInGroup(group string) []string {
	var out []string
	for _, e := range categoryTable {
		if e.Group == group {
			out = append(out, e.Category)
		}
	}
	return out
}

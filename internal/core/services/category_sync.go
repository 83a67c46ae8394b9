package services

import "github.com/SscSPs/ledger_entry_app/internal/core/domain"

// syncCategories keeps the category and category_group fields of an
// expense/income slice mutually consistent after one of them changed.
// Idempotent and free of side effects beyond the slice itself, so the store
// can run it inline on every field-change dispatch.
//
// Rules:
//   - category changed to one with a known group: the group follows the
//     category (category wins).
//   - category_group changed so the current category no longer belongs to
//     it: the stale category is cleared. The wildcard "other" group is the
//     exception; the custom free-text fields take over there and the plain
//     category is left as-is.
func syncCategories(p *domain.CategorizedPrivate, changedField string) {
	switch changedField {
	case domain.FieldCategory:
		if g := domain.GroupOf(p.Category); g != "" {
			p.CategoryGroup = g
		}
	case domain.FieldCategoryGroup:
		if p.CategoryGroup == domain.GroupOther {
			return
		}
		if p.Category != "" && domain.GroupOf(p.Category) != p.CategoryGroup {
			p.Category = ""
		}
	}
}

// SyncCategoryFields is the pure draft-level form of syncCategories: it
// returns a new draft with the consistency rule applied and leaves the
// input untouched. Drafts without category fields pass through unchanged.
func SyncCategoryFields(d domain.Draft, changedField string) domain.Draft {
	p, ok := d.Private.(*domain.CategorizedPrivate)
	if !ok {
		return d
	}
	c := p.Clone().(*domain.CategorizedPrivate)
	syncCategories(c, changedField)
	d.Private = c
	return d
}

package handlers

import (
	"net/http"

	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// registerTaxonomyRoutes exposes the static category taxonomy for the form
// surface to render its selectors from.
func registerTaxonomyRoutes(group *gin.RouterGroup) {
	taxonomy := group.Group("/taxonomy")
	taxonomy.GET("/category-groups", getCategoryGroups)
	taxonomy.GET("/category-groups/:group/categories", getCategoriesInGroup)
}

// getCategoryGroups godoc
// @Summary List selectable category groups
// @Tags taxonomy
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /taxonomy/category-groups [get]
func getCategoryGroups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"category_groups": domain.CategoryGroups})
}

// getCategoriesInGroup godoc
// @Summary List categories belonging to a group
// @Tags taxonomy
// @Produce json
// @Param group path string true "Category group"
// @Success 200 {object} map[string][]string
// @Router /taxonomy/category-groups/{group}/categories [get]
func getCategoriesInGroup(c *gin.Context) {
	categories := domain.CategoriesInGroup(c.Param("group"))
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

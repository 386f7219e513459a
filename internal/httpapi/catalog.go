package httpapi

import (
	"net/http"
	"strconv"

	"taza-be/internal/addon"
	"taza-be/internal/category"
	"taza-be/internal/product"
	"taza-be/internal/shop"

	"github.com/gin-gonic/gin"
)

func queryBool(c *gin.Context, key string) *bool {
	v, err := strconv.ParseBool(c.Query(key))
	if err != nil {
		return nil
	}
	return &v
}

func (s *Server) listShops(c *gin.Context) {
	f := shop.ListFilter{Search: c.Query("search")}
	if open := queryBool(c, "open"); open != nil {
		f.OpenOnly = *open
	}

	list, err := s.svc.Shops.List(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, shop.ToResponses(list))
}

func (s *Server) getShop(c *gin.Context) {
	sh, err := s.svc.Shops.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, shop.ToResponse(sh))
}

func (s *Server) listProducts(c *gin.Context) {
	list, err := s.svc.Products.List(c.Request.Context(), product.ListParams{
		Category:  c.Query("category"),
		ShopID:    c.Query("shopId"),
		Search:    c.Query("search"),
		Available: queryBool(c, "available"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, product.ToResponses(list))
}

func (s *Server) getProduct(c *gin.Context) {
	p, err := s.svc.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, product.ToResponse(p))
}

func (s *Server) listAddons(c *gin.Context) {
	list, err := s.svc.Addons.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, addon.ToResponses(list))
}

func (s *Server) listCategories(c *gin.Context) {
	list, err := s.svc.Categories.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, category.ToResponses(list))
}

type createCategoryReq struct {
	Name      string  `json:"name"`
	ImageURL  *string `json:"imageUrl"`
	SortOrder int     `json:"sortOrder"`
}

func (s *Server) createCategory(c *gin.Context) {
	var req createCategoryReq
	if !bind(c, &req) {
		return
	}
	cat, err := s.svc.Categories.Create(c.Request.Context(), category.CreateCategoryInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, category.ToResponse(cat))
}

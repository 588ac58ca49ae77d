package products

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/auth"
	"github.com/user/changelog-api/db"
	"github.com/user/changelog-api/validation"
)

// ProductHandler exposes ProductService over HTTP.
type ProductHandler struct {
	service ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes mounts the product routes on router, which is expected to be
// behind the auth gate.
func (h *ProductHandler) RegisterRoutes(router chi.Router) {
	nameRule := validation.Body(validation.Required("name"))

	router.Get("/product", h.HandleList())
	router.Get("/product/{id}", h.HandleGet())
	router.With(nameRule).Post("/product", h.HandleCreate())
	router.With(nameRule).Put("/product/{id}", h.HandleUpdate())
	router.Delete("/product/{id}", h.HandleDelete())
}

// HandleList godoc
// @Summary List products
// @Description Lists the products owned by the caller.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} products.ProductListResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Router /api/product [get]
func (h *ProductHandler) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := auth.CallerID(r.Context())
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		list, err := h.service.ListProducts(r.Context(), ownerID)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, ProductListResponse{Data: list})
	}
}

// HandleGet godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} products.ProductResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/product/{id} [get]
func (h *ProductHandler) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, id, err := ownerAndID(r)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		p, err := h.service.GetProduct(r.Context(), ownerID, id)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, ProductResponse{Data: p})
	}
}

// HandleCreate godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body products.ProductRequest true "Product"
// @Success 201 {object} products.ProductResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Router /api/product [post]
func (h *ProductHandler) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := auth.CallerID(r.Context())
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		var req ProductRequest
		if err := validation.Decode(r, &req); err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		p, err := h.service.CreateProduct(r.Context(), ownerID, req.Name)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusCreated, ProductResponse{Data: p})
	}
}

// HandleUpdate godoc
// @Summary Rename a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param body body products.ProductRequest true "Product"
// @Success 200 {object} products.ProductResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/product/{id} [put]
func (h *ProductHandler) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, id, err := ownerAndID(r)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		var req ProductRequest
		if err := validation.Decode(r, &req); err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		p, err := h.service.UpdateProduct(r.Context(), ownerID, id, req.Name)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, ProductResponse{Data: p})
	}
}

// HandleDelete godoc
// @Summary Delete a product
// @Description Deletes the product and everything filed under it, returning the deleted record.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} products.ProductResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/product/{id} [delete]
func (h *ProductHandler) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, id, err := ownerAndID(r)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		p, err := h.service.DeleteProduct(r.Context(), ownerID, id)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, ProductResponse{Data: p})
	}
}

func ownerAndID(r *http.Request) (string, string, error) {
	ownerID, err := auth.CallerID(r.Context())
	if err != nil {
		return "", "", err
	}
	id, err := db.ParseID(chi.URLParam(r, "id"), "product")
	if err != nil {
		return "", "", err
	}
	return ownerID, id, nil
}

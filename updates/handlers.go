package updates

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/auth"
	"github.com/user/changelog-api/db"
	"github.com/user/changelog-api/validation"
)

// UpdateHandler exposes UpdateService and PointService over HTTP.
type UpdateHandler struct {
	updates UpdateService
	points  PointService
}

// NewUpdateHandler creates a new UpdateHandler.
func NewUpdateHandler(updates UpdateService, points PointService) *UpdateHandler {
	return &UpdateHandler{updates: updates, points: points}
}

// RegisterRoutes mounts the update and update point routes on router, which is
// expected to be behind the auth gate.
func (h *UpdateHandler) RegisterRoutes(router chi.Router) {
	router.Get("/update", h.HandleListUpdates())
	router.Get("/update/{id}", h.HandleGetUpdate())
	router.With(validation.Body(
		validation.Required("title"),
		validation.Required("body"),
		validation.Required("productId"),
		validation.Optional("version"),
		validation.Optional("asset"),
	)).Post("/update", h.HandleCreateUpdate())
	router.With(validation.Body(
		validation.Optional("title"),
		validation.Optional("body"),
		validation.OneOf("status", false, Statuses...),
		validation.Optional("version"),
		validation.Optional("asset"),
	)).Put("/update/{id}", h.HandleEditUpdate())
	router.Delete("/update/{id}", h.HandleDeleteUpdate())

	router.Get("/updatepoint", h.HandleListPoints())
	router.Get("/updatepoint/{id}", h.HandleGetPoint())
	router.With(validation.Body(
		validation.Required("name"),
		validation.Required("description"),
		validation.Required("updateId"),
	)).Post("/updatepoint", h.HandleCreatePoint())
	router.With(validation.Body(
		validation.Optional("name"),
		validation.Optional("description"),
	)).Put("/updatepoint/{id}", h.HandleEditPoint())
	router.Delete("/updatepoint/{id}", h.HandleDeletePoint())
}

// HandleListUpdates godoc
// @Summary List updates
// @Description Lists the updates of every product owned by the caller.
// @Tags updates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} updates.UpdateListResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Router /api/update [get]
func (h *UpdateHandler) HandleListUpdates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := auth.CallerID(r.Context())
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		list, err := h.updates.ListUpdates(r.Context(), ownerID)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, UpdateListResponse{Data: list})
	}
}

// HandleGetUpdate godoc
// @Summary Get an update
// @Tags updates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Update ID"
// @Success 200 {object} updates.UpdateResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/update/{id} [get]
func (h *UpdateHandler) HandleGetUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, id, err := ownerAndID(r, "update")
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		u, err := h.updates.GetUpdate(r.Context(), ownerID, id)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, UpdateResponse{Data: u})
	}
}

// HandleCreateUpdate godoc
// @Summary Create an update
// @Description Files a new update under one of the caller's products.
// @Tags updates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body updates.CreateUpdateRequest true "Update"
// @Success 201 {object} updates.UpdateResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse "Product not found"
// @Router /api/update [post]
func (h *UpdateHandler) HandleCreateUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := auth.CallerID(r.Context())
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		var req CreateUpdateRequest
		if err := validation.Decode(r, &req); err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		if req.ProductID, err = db.ParseID(req.ProductID, "product"); err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		u, err := h.updates.CreateUpdate(r.Context(), ownerID, req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusCreated, UpdateResponse{Data: u})
	}
}

// HandleEditUpdate godoc
// @Summary Edit an update
// @Description Changes only the fields present in the body.
// @Tags updates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Update ID"
// @Param body body updates.EditUpdateRequest true "Fields to change"
// @Success 200 {object} updates.UpdateResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/update/{id} [put]
func (h *UpdateHandler) HandleEditUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, id, err := ownerAndID(r, "update")
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		var req EditUpdateRequest
		if err := validation.Decode(r, &req); err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		u, err := h.updates.EditUpdate(r.Context(), ownerID, id, req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, UpdateResponse{Data: u})
	}
}

// HandleDeleteUpdate godoc
// @Summary Delete an update
// @Tags updates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Update ID"
// @Success 200 {object} updates.UpdateResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/update/{id} [delete]
func (h *UpdateHandler) HandleDeleteUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, id, err := ownerAndID(r, "update")
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		u, err := h.updates.DeleteUpdate(r.Context(), ownerID, id)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, UpdateResponse{Data: u})
	}
}

// HandleListPoints godoc
// @Summary List update points
// @Tags updatepoints
// @Produce json
// @Security BearerAuth
// @Success 200 {object} updates.PointListResponse
// @Router /api/updatepoint [get]
func (h *UpdateHandler) HandleListPoints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := auth.CallerID(r.Context())
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		list, err := h.points.ListPoints(r.Context(), ownerID)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, PointListResponse{Data: list})
	}
}

// HandleGetPoint godoc
// @Summary Get an update point
// @Tags updatepoints
// @Produce json
// @Security BearerAuth
// @Param id path string true "Update point ID"
// @Success 200 {object} updates.PointResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/updatepoint/{id} [get]
func (h *UpdateHandler) HandleGetPoint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, id, err := ownerAndID(r, "update point")
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		pt, err := h.points.GetPoint(r.Context(), ownerID, id)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, PointResponse{Data: pt})
	}
}

// HandleCreatePoint godoc
// @Summary Create an update point
// @Tags updatepoints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body updates.CreatePointRequest true "Update point"
// @Success 201 {object} updates.PointResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse "Update not found"
// @Router /api/updatepoint [post]
func (h *UpdateHandler) HandleCreatePoint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := auth.CallerID(r.Context())
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		var req CreatePointRequest
		if err := validation.Decode(r, &req); err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		if req.UpdateID, err = db.ParseID(req.UpdateID, "update"); err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		pt, err := h.points.CreatePoint(r.Context(), ownerID, req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusCreated, PointResponse{Data: pt})
	}
}

// HandleEditPoint godoc
// @Summary Edit an update point
// @Tags updatepoints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Update point ID"
// @Param body body updates.EditPointRequest true "Fields to change"
// @Success 200 {object} updates.PointResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/updatepoint/{id} [put]
func (h *UpdateHandler) HandleEditPoint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, id, err := ownerAndID(r, "update point")
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		var req EditPointRequest
		if err := validation.Decode(r, &req); err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		pt, err := h.points.EditPoint(r.Context(), ownerID, id, req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, PointResponse{Data: pt})
	}
}

// HandleDeletePoint godoc
// @Summary Delete an update point
// @Tags updatepoints
// @Produce json
// @Security BearerAuth
// @Param id path string true "Update point ID"
// @Success 200 {object} updates.PointResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/updatepoint/{id} [delete]
func (h *UpdateHandler) HandleDeletePoint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, id, err := ownerAndID(r, "update point")
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		pt, err := h.points.DeletePoint(r.Context(), ownerID, id)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, PointResponse{Data: pt})
	}
}

func ownerAndID(r *http.Request, resource string) (string, string, error) {
	ownerID, err := auth.CallerID(r.Context())
	if err != nil {
		return "", "", err
	}
	id, err := db.ParseID(chi.URLParam(r, "id"), resource)
	if err != nil {
		return "", "", err
	}
	return ownerID, id, nil
}

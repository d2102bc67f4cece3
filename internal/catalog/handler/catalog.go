package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"fleetbook/internal/catalog/service"
	apperrors "fleetbook/pkg/errors"
	httputil "fleetbook/pkg/http"
	"fleetbook/pkg/logger"
	"fleetbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type CatalogHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewCatalogHandler(service service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

type RootResponse struct {
	Message string `json:"message"`
}

func (h *CatalogHandler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, RootResponse{Message: "Vehicle Rental API"}); err != nil {
		h.log.Error("failed to write response", "handler", "Root", "error", err)
	}
}

func (h *CatalogHandler) GetVehicleTypes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	wheels, err := parseWheels(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetVehicleTypes", "error", writeErr)
		}
		return
	}

	types, err := h.service.ListTypes(r.Context(), wheels)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetVehicleTypes", "error", writeErr)
		}
		return
	}

	if types == nil {
		types = []*model.VehicleType{}
	}
	if err := httputil.WriteSuccess(w, types); err != nil {
		h.log.Error("failed to write response", "handler", "GetVehicleTypes", "error", err)
	}
}

func (h *CatalogHandler) GetVehicles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	wheels, err := parseWheels(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetVehicles", "error", writeErr)
		}
		return
	}

	typeID := r.URL.Query().Get("type_id")

	vehicles, err := h.service.ListVehicles(r.Context(), typeID, wheels)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetVehicles", "error", writeErr)
		}
		return
	}

	if vehicles == nil {
		vehicles = []*model.Vehicle{}
	}
	if err := httputil.WriteSuccess(w, vehicles); err != nil {
		h.log.Error("failed to write response", "handler", "GetVehicles", "error", err)
	}
}

func parseWheels(r *http.Request) (*int, error) {
	s := r.URL.Query().Get("wheels")
	if s == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid wheels parameter: %s", s))
	}
	return &v, nil
}

func (h *CatalogHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/", h.Root)
	router.GET("/api/vehicle-types", h.GetVehicleTypes)
	router.GET("/api/vehicles", h.GetVehicles)
}

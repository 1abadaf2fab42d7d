package handler

import catalogservice "dam-workspace-server/internal/modules/catalog/service"

type Handler struct {
	catalogService *catalogservice.Service
}

func New(catalogService *catalogservice.Service) *Handler {
	return &Handler{catalogService: catalogService}
}

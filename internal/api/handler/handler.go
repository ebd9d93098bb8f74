package handler

import "github.com/Tom0603/SoftwareEngineering-Lecture/internal/service"

type Handler struct {
	listings service.ListingService
}

func New(listings service.ListingService) *Handler {
	return &Handler{listings: listings}
}

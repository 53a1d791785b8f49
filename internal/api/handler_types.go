package api

import "github.com/veilcraft/gatewarden/internal/services"

const contextAccountKey = "account"

// Handler carries the lifecycle service into Fiber handlers.
type Handler struct {
	accounts *services.AccountService
}

func NewHandler(accounts *services.AccountService) *Handler {
	return &Handler{accounts: accounts}
}

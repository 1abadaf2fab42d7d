package dto

import "dam-workspace-server/internal/modules/workspace/state"

type SetSelectingRequest struct {
	Selecting *bool `json:"selecting" binding:"required"`
}

type SetDisplayStyleRequest struct {
	Style string `json:"style" binding:"required"`
}

type SetErrorRequest struct {
	Error string `json:"error"`
}

type SessionResponse struct {
	ID       string         `json:"id"`
	Snapshot state.Snapshot `json:"snapshot"`
}

type MembershipResponse struct {
	ID       uint `json:"id"`
	Selected bool `json:"selected"`
}

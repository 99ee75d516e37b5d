package responses

import "meditrack-client/internal/app/models"

type AuthResponse struct {
	User   *models.User   `json:"user"`
	Tokens *models.Tokens `json:"tokens"`
}

type RefreshResponse struct {
	Tokens *models.Tokens `json:"tokens"`
}

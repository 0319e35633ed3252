package response

import "swiftprints/internal/usecase"

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Username    string `json:"username"`
}

func FromAuthToken(t usecase.AuthToken, expiresInSeconds int64) LoginResponse {
	return LoginResponse{
		AccessToken: t.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   expiresInSeconds,
		Username:    t.Username,
	}
}

type MeResponse struct {
	Username string `json:"username"`
}

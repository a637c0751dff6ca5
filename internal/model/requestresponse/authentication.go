package requestresponse

// SignInRequest : JSON вариант формы OAuth2 password
type SignInRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"Secret1"`
	Scope    string `json:"scope" example:"user planner"`
}

// AccessTokenResponse : ответ на /new-access-token
type AccessTokenResponse struct {
	TokenType   string `json:"token_type" example:"bearer"`
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// MessageResponse : ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message" example:"logged out successfully"`
}

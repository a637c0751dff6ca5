package requestresponse

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"is_active" example:"false"`
}

type UpdateScopesRequest struct {
	Scopes []string `json:"scopes" example:"user,planner"`
}

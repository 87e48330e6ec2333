package apiary

type CreateApiaryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Location    string `json:"location" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"required,min=1,max=100"`
}

type UpdateApiaryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Location    string `json:"location" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"required,min=1,max=100"`
}

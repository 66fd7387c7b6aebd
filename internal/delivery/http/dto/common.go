package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

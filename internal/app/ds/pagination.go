package ds

// PaginationInfo представляет метаданные пагинации
type PaginationInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// PaginatedFactsResponse представляет ответ со страницей фактов зарплат
type PaginatedFactsResponse struct {
	Data       []FactSalary   `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

package models

import "math"

// PaginationParams 分頁/搜尋/排序參數
type PaginationParams struct {
	Page   int    `json:"page" query:"page" example:"1"`
	Limit  int    `json:"limit" query:"limit" example:"10"`
	Search string `json:"search" query:"search" example:""`
	SortBy string `json:"sortBy" query:"sortBy" example:"name"`
	Order  string `json:"order" query:"order" example:"asc"`
}

// PaginatedResponse 分頁回應結構
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// DefaultPagination 預設分頁參數
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:   1,
		Limit:  10,
		Search: "",
		SortBy: "name",
		Order:  "asc",
	}
}

// NewPaginatedResponse 建立分頁回應
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetSkip 計算需略過的筆數
func (p *PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// GetSortOrder 組出排序條件, 1 = asc, -1 = desc. 未指定欄位時照姓名排.
func (p *PaginationParams) GetSortOrder() map[string]int {
	key := p.SortBy
	if key == "" {
		key = "name"
	}
	order := 1
	if p.Order == "desc" {
		order = -1
	}
	return map[string]int{key: order}
}

package models

// ErrorResponse 標準錯誤回應
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // 錯誤訊息
}

// SuccessResponse 標準成功回應
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

package models

type ApiResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
	Total   int          `json:"total,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err,
	}
}

func ValidationResponse(verr *ValidationError) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   "validation failed",
		Fields:  verr.Fields,
	}
}

func ListResponse(data interface{}, total int) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Total:   total,
	}
}

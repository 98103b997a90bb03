package swaggerkit

// ErrorResponse documents the error envelope every route can answer with
// swagger:model
type ErrorResponse struct {
	StatusCode int    `json:"status_code"          example:"400"`
	Status     string `json:"status"               example:"Bad Request"`
	Code       int    `json:"code,omitempty"       example:"7"`
	Reason     string `json:"reason,omitempty"     example:"validation_error"`
	Error      string `json:"error,omitempty"      example:"\"99999\" is not a valid postal code"`
	Field      string `json:"field,omitempty"      example:"postal_code"`
	RequestID  string `json:"request_id,omitempty" example:"579f33bf50b1/abc-000001"`
}

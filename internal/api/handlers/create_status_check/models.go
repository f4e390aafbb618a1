package create_status_check

// StatusCheckRequest HTTP request model
type StatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}

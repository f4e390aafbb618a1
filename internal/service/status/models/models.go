package models

import (
	"time"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

// StatusCheckResponse запись проверки статуса
type StatusCheckResponse struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// FromDomainStatusCheck конвертирует domain модель в DTO
func FromDomainStatusCheck(s *domain.StatusCheck) *StatusCheckResponse {
	return &StatusCheckResponse{
		ID:         s.ID,
		ClientName: s.ClientName,
		Timestamp:  s.Timestamp,
	}
}

package admin

import "eventspace/internal/domain"

type StatisticsResponse struct {
	PendingRequests int `json:"pending_requests"`
	TotalUsers      int `json:"total_users"`
	UpcomingEvents  int `json:"upcoming_events"`
}

type PendingRequestsResponse struct {
	VenueRequests     []domain.Booking          `json:"venue_requests"`
	EquipmentRequests []domain.EquipmentRequest `json:"equipment_requests"`
}

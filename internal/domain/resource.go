package domain

type Resource struct {
	ID           uint   `json:"resourceID"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Availability bool   `json:"availability"`
}

type Allocation struct {
	ID         uint `json:"allocationID"`
	EventID    uint `json:"eventId"`
	ResourceID uint `json:"resourceId"`
	Quantity   int  `json:"quantity"`
}

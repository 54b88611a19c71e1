package responses

import "time"

type Patient struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone,omitempty"`
	Age            *int             `json:"age,omitempty"`
	Gender         string           `json:"gender,omitempty"`
	Address        string           `json:"address,omitempty"`
	Disease        string           `json:"disease,omitempty"`
	AssignedDoctor *DoctorReference `json:"assignedDoctor,omitempty"`
	Image          string           `json:"image,omitempty"`
	ImageURL       string           `json:"imageUrl,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type DoctorReference struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

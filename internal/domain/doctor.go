package domain

import (
	"time"
)

type Doctor struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	Specialty    string    `json:"specialty"`
	Introduction string    `json:"introduction,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Educations []DoctorEducation `json:"educations,omitempty"`
	Careers    []DoctorCareer    `json:"careers,omitempty"`
}

// DoctorEducation is one line of the profile's education history
// ("OO University College of Dentistry, D.D.S.").
type DoctorEducation struct {
	ID       int64  `json:"id"`
	DoctorID int64  `json:"doctor_id"`
	School   string `json:"school"`
	Degree   string `json:"degree,omitempty"`
	Year     *int   `json:"year,omitempty"`
}

// DoctorCareer is one line of the profile's career history
// ("Former OO Dental Clinic director").
type DoctorCareer struct {
	ID       int64  `json:"id"`
	DoctorID int64  `json:"doctor_id"`
	Title    string `json:"title"`
	Current  bool   `json:"current"`
}

type CreateDoctorDTO struct {
	Name         string `json:"name" binding:"required"`
	Position     string `json:"position" binding:"required"`
	Specialty    string `json:"specialty"`
	Introduction string `json:"introduction"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateDoctorDTO struct {
	Name         *string `json:"name"`
	Position     *string `json:"position"`
	Specialty    *string `json:"specialty"`
	Introduction *string `json:"introduction"`
	DisplayOrder *int    `json:"display_order"`
}

type DoctorEducationDTO struct {
	School string `json:"school" binding:"required"`
	Degree string `json:"degree"`
	Year   *int   `json:"year"`
}

type DoctorCareerDTO struct {
	Title   string `json:"title" binding:"required"`
	Current bool   `json:"current"`
}

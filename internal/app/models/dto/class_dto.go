package dto

// ClassPayload is the payload for creating or updating a class.
type ClassPayload struct {
	Name     string  `json:"name"`
	Sections *string `json:"sections"`
}

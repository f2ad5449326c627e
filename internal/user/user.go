package user

// EducationRef is the education summary nested inside user responses.
type EducationRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// User is a registered person. Education is a non-owning reference and
// serializes as null when the user has none.
type User struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	PhoneNumber string        `json:"phone_number"`
	Address     string        `json:"address"`
	Age         int           `json:"age"`
	Education   *EducationRef `json:"education"`
}

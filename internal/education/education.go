package education

// Education is a level of education users may reference.
type Education struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

package models

// User is one element of the usuarios collection. Records are append-only:
// no update or delete operation exists anywhere in the app.
type User struct {
	ID        int      `json:"id"`
	Nombre    string   `json:"nombre"`
	Email     string   `json:"email"`
	Edad      float64  `json:"edad"`
	Ciudad    string   `json:"ciudad"`
	Intereses []string `json:"intereses"`
}

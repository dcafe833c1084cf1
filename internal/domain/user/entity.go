package user

// User is the only entity the demo servers know about. It is built from a
// request body, written back into the response and then dropped; nothing
// assigns it an identifier or keeps it around.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

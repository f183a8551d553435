package entity

type ContactSubmission struct {
	BaseSimple
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Subject   string `db:"subject"`
	Message   string `db:"message"`
	IsRead    bool   `db:"is_read"`
}

package entity

type User struct {
	ID           int64   `db:"id"`
	Username     string  `db:"username"`
	PasswordHash string  `db:"password"`
	FirstName    *string `db:"first_name"`
	LastName     *string `db:"last_name"`
	Email        *string `db:"email"`
	IsAdmin      bool    `db:"is_admin"`
}

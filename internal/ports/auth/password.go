package auth

// PasswordEncoder es la función de hash de una sola vía para credenciales.
type PasswordEncoder interface {
	Encode(raw string) (string, error)
}

package clients

import "time"

// Client es la ficha de contacto de un cliente de la clínica.
type Client struct {
	ID      string
	Name    string
	Surname string

	// UserID es una referencia débil a la cuenta de login (nil = sin vincular).
	// Puede quedar colgando si el usuario se borra.
	UserID *string

	CreatedAt time.Time
}

func (c Client) IsLinked() bool {
	return c.UserID != nil && *c.UserID != ""
}

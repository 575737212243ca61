package pets

import "time"

// Pet es una mascota registrada, atada a una especie y a un cliente.
type Pet struct {
	ID   string
	Name string

	// BirthDate es una fecha (sin hora), normalizada a medianoche UTC.
	BirthDate time.Time

	AnimalID string
	ClientID string

	CreatedAt time.Time
}

package animals

import "time"

// Animal es una especie del catálogo (p.ej. "dog", "cat").
type Animal struct {
	ID      string
	Species string

	CreatedAt time.Time
}

// Package storage define los errores que todos los adapters de persistencia
// devuelven, para que los services no dependan de un adapter concreto.
package storage

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

package service

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors for the stable error taxonomy. Handlers map these to HTTP
// statuses via errors.Is; messages stay generic — the caller adds context.
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrConflict     = errors.New("registro duplicado")
	ErrInvalidValue = errors.New("valor inválido")
	ErrUnauthorized = errors.New("credenciais inválidas")
)

// translate converts GORM errors into the service taxonomy. Unique-key
// violations arrive as gorm.ErrDuplicatedKey because the database is opened
// with TranslateError enabled.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}

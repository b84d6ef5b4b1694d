package orders

import "errors"

// Taxonomie des erreurs du cycle de vie des commandes. Les handlers les
// traduisent en codes HTTP (400 / 409 / 404 / 403), tout le reste part en 500.
var (
	ErrInvalid          = errors.New("données invalides")
	ErrConflict         = errors.New("entrée déjà existante")
	ErrNotFound         = errors.New("introuvable")
	ErrIdentityMismatch = errors.New("userId non autorisé")
)

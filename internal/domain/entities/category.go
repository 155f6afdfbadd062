package entities

import "time"

// Category representa uma entrada fixa da taxonomia de grupos
// (dado de referência, não editável por usuários)
type Category struct {
	ID         string
	Name       string
	Icon       string
	OrderIndex int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

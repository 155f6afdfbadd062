package valueobjects

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrInvalidDisplayHandle = errors.New("invalid display handle format")
)

// DisplayHandle é um value object para o identificador numérico público de
// um usuário. Normalmente 6 dígitos; 7 dígitos quando o espaço de 6 dígitos
// precisou ser ampliado.
type DisplayHandle struct {
	value string
}

// NewDisplayHandle cria um DisplayHandle validado
func NewDisplayHandle(handle string) (DisplayHandle, error) {
	if !isValidDisplayHandle(handle) {
		return DisplayHandle{}, ErrInvalidDisplayHandle
	}
	return DisplayHandle{value: handle}, nil
}

// RandomDisplayHandle gera um handle aleatório de 6 dígitos, ou de 7 dígitos
// quando wide=true (fallback para quando o espaço de 6 dígitos esgota)
func RandomDisplayHandle(wide bool) DisplayHandle {
	if wide {
		return DisplayHandle{value: fmt.Sprintf("%07d", 1000000+rand.Intn(9000000))} //nolint:gosec
	}
	return DisplayHandle{value: fmt.Sprintf("%06d", 100000+rand.Intn(900000))} //nolint:gosec
}

// String retorna o valor do handle
func (h DisplayHandle) String() string {
	return h.value
}

// IsZero verifica se o handle ainda não foi atribuído
func (h DisplayHandle) IsZero() bool {
	return h.value == ""
}

// isValidDisplayHandle valida o formato do handle (6 ou 7 dígitos, sem zero à esquerda)
func isValidDisplayHandle(handle string) bool {
	if len(handle) != 6 && len(handle) != 7 {
		return false
	}
	for i, c := range handle {
		if c < '0' || c > '9' {
			return false
		}
		if i == 0 && c == '0' {
			return false
		}
	}
	return true
}

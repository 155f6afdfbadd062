package valueobjects

import "testing"

func TestNewDisplayHandle(t *testing.T) {
	t.Run("aceita handle de 6 dígitos", func(t *testing.T) {
		handle, err := NewDisplayHandle("123456")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if handle.String() != "123456" {
			t.Errorf("esperava '123456', obteve '%s'", handle.String())
		}
	})

	t.Run("aceita handle de 7 dígitos", func(t *testing.T) {
		if _, err := NewDisplayHandle("1234567"); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("rejeita formatos inválidos", func(t *testing.T) {
		invalid := []string{"", "12345", "12345678", "12a456", "012345", "0123456"}
		for _, input := range invalid {
			if _, err := NewDisplayHandle(input); err == nil {
				t.Errorf("esperava erro para '%s'", input)
			}
		}
	})
}

func TestRandomDisplayHandle(t *testing.T) {
	t.Run("gera 6 dígitos no intervalo esperado", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			handle := RandomDisplayHandle(false)
			if len(handle.String()) != 6 {
				t.Fatalf("esperava 6 dígitos, obteve '%s'", handle.String())
			}
			if _, err := NewDisplayHandle(handle.String()); err != nil {
				t.Fatalf("handle gerado inválido: '%s'", handle.String())
			}
		}
	})

	t.Run("gera 7 dígitos no modo ampliado", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			handle := RandomDisplayHandle(true)
			if len(handle.String()) != 7 {
				t.Fatalf("esperava 7 dígitos, obteve '%s'", handle.String())
			}
			if _, err := NewDisplayHandle(handle.String()); err != nil {
				t.Fatalf("handle gerado inválido: '%s'", handle.String())
			}
		}
	})
}

func TestDisplayHandleIsZero(t *testing.T) {
	var empty DisplayHandle
	if !empty.IsZero() {
		t.Error("esperava IsZero para handle vazio")
	}

	handle, _ := NewDisplayHandle("123456")
	if handle.IsZero() {
		t.Error("não esperava IsZero para handle atribuído")
	}
}

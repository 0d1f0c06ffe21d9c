package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBackendErrorMessage(t *testing.T) {
	const fallback = "Erro ao salvar consulta."

	t.Run("Error field wins", func(t *testing.T) {
		body := []byte(`{"error":"Paciente não encontrado","message":"secondary"}`)
		assert.Equal(t, "Paciente não encontrado", ParseBackendErrorMessage(body, fallback))
	})

	t.Run("Message field is used when error is absent", func(t *testing.T) {
		body := []byte(`{"message":"Consulta inválida"}`)
		assert.Equal(t, "Consulta inválida", ParseBackendErrorMessage(body, fallback))
	})

	t.Run("Fallback when body has neither field", func(t *testing.T) {
		assert.Equal(t, fallback, ParseBackendErrorMessage([]byte(`{"detail":"x"}`), fallback))
	})

	t.Run("Fallback on unparseable body", func(t *testing.T) {
		assert.Equal(t, fallback, ParseBackendErrorMessage([]byte(`<html>502</html>`), fallback))
		assert.Equal(t, fallback, ParseBackendErrorMessage(nil, fallback))
	})
}

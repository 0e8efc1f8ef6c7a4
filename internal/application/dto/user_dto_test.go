package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/directorio-admin/internal/application/dto"
)

// La limpieza del formulario es asimétrica a propósito: los campos en string
// vacío se omiten del payload, salvo department y salary que viajan como null
// explícito (el esquema remoto los trata como nullable, no como ausentes).

func TestCleanUserPayload_OmiteCamposVacios(t *testing.T) {
	payload := dto.CleanUserPayload(dto.UserForm{
		"first_name": "Ana",
		"phone":      "",
		"bio":        "",
	})

	assert.Equal(t, "Ana", payload["first_name"])
	_, hasPhone := payload["phone"]
	assert.False(t, hasPhone, "un campo vacío normal se omite, no viaja")
	_, hasBio := payload["bio"]
	assert.False(t, hasBio)
}

func TestCleanUserPayload_DepartmentYSalaryVaciosViajanComoNull(t *testing.T) {
	payload := dto.CleanUserPayload(dto.UserForm{
		"first_name": "Ana",
		"department": "",
		"salary":     "",
	})

	v, ok := payload["department"]
	assert.True(t, ok, "department vacío debe estar presente en el payload")
	assert.Nil(t, v, "y debe viajar como null explícito")

	v, ok = payload["salary"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestCleanUserPayload_DepartmentConValorViajaTalCual(t *testing.T) {
	payload := dto.CleanUserPayload(dto.UserForm{
		"department": "3",
		"salary":     "55000.00",
	})

	assert.Equal(t, "3", payload["department"])
	assert.Equal(t, "55000.00", payload["salary"])
}

func TestCleanUserPayload_FormularioVacio(t *testing.T) {
	payload := dto.CleanUserPayload(dto.UserForm{})
	assert.Empty(t, payload)
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gtmpro-api/internal/application/dto"
	"github.com/jhoicas/gtmpro-api/internal/domain"
)

type stubLLM struct {
	out    *dto.AIReportDTO
	err    error
	called bool
}

func (s *stubLLM) GenerateReport(_ context.Context, prompt, style string) (*dto.AIReportDTO, error) {
	s.called = true
	return s.out, s.err
}

func TestGenerateReport_SeleccionDeProveedor(t *testing.T) {
	anthropic := &stubLLM{out: &dto.AIReportDTO{Text: "relatório claude"}}
	gemini := &stubLLM{out: &dto.AIReportDTO{Text: "relatório gemini"}}
	uc := NewAIUseCase(anthropic, gemini)

	out, err := uc.GenerateReport(context.Background(), dto.AIReportRequest{Prompt: "resumo do pipeline"})
	require.NoError(t, err)
	assert.Equal(t, "relatório claude", out.Text, "anthropic es el proveedor por defecto")
	assert.True(t, anthropic.called)
	assert.False(t, gemini.called)

	out, err = uc.GenerateReport(context.Background(), dto.AIReportRequest{Prompt: "resumo", Provider: "gemini"})
	require.NoError(t, err)
	assert.Equal(t, "relatório gemini", out.Text)
	assert.True(t, gemini.called)
}

// Credencial inválida y cuota agotada no se lanzan: se degradan a flags que
// la UI muestra.
func TestGenerateReport_FlagsTipados(t *testing.T) {
	cases := []struct {
		name string
		err  error
		flag string
	}{
		{"credencial inválida", domain.ErrLLMInvalidCredential, dto.AIFlagInvalidKey},
		{"cuota agotada", domain.ErrLLMRateLimited, dto.AIFlagRateLimited},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewAIUseCase(&stubLLM{err: tc.err}, &stubLLM{})
			out, err := uc.GenerateReport(context.Background(), dto.AIReportRequest{Prompt: "x"})
			require.NoError(t, err)
			assert.Equal(t, tc.flag, out.Flag)
			assert.Empty(t, out.Text)
		})
	}
}

// Otros errores del proveedor sí se propagan envueltos.
func TestGenerateReport_ErrorGenericoPropaga(t *testing.T) {
	uc := NewAIUseCase(&stubLLM{err: errors.New("boom")}, &stubLLM{})
	out, err := uc.GenerateReport(context.Background(), dto.AIReportRequest{Prompt: "x"})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relatório IA")
}

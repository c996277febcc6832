package auditing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backtrue/fbaudit-api/internal/domain"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Resposta cercada por fence html",
			input:    "```html\n<p>Aumente o orçamento.</p>\n```",
			expected: "<p>Aumente o orçamento.</p>",
		},
		{
			name:     "Resposta sem fence passa intacta",
			input:    "<p>Aumente o orçamento.</p>",
			expected: "<p>Aumente o orçamento.</p>",
		},
		{
			name:     "Espaços nas bordas são removidos",
			input:    "  \n<p>Teste</p>\n  ",
			expected: "<p>Teste</p>",
		},
		{
			name:     "Somente fence de fechamento",
			input:    "<p>Teste</p>\n```",
			expected: "<p>Teste</p>",
		},
		{
			name:     "Fence de abertura sem linguagem",
			input:    "```\n<p>Teste</p>\n```",
			expected: "<p>Teste</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripCodeFence(tt.input))
		})
	}
}

func TestBuildAdvicePrompt(t *testing.T) {
	comparison := &domain.KpiComparison{
		Metric: domain.MetricROAS,
		Target: 3.0,
		Actual: 1.8,
		Status: domain.StatusNotAchieved,
	}

	tests := []struct {
		name     string
		evidence *accountEvidence
		industry string
		validate func(t *testing.T, prompt string)
	}{
		{
			name: "Evidência de ROAS entra no prompt",
			evidence: &accountEvidence{
				roas: []*domain.AdSetROAS{{Name: "Conjunto campeão", ROAS: 5.2, Purchases: 12, Spend: 900.0}},
			},
			industry: "moda",
			validate: func(t *testing.T, prompt string) {
				assert.Contains(t, prompt, "3.00")
				assert.Contains(t, prompt, "1.80")
				assert.Contains(t, prompt, "Conjunto campeão")
				assert.Contains(t, prompt, "moda")
			},
		},
		{
			name:     "Sem evidência o prompt segue sem dados de conjuntos",
			evidence: &accountEvidence{},
			industry: "",
			validate: func(t *testing.T, prompt string) {
				assert.Contains(t, prompt, "ROAS")
				assert.NotContains(t, prompt, "Conjunto campeão")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := buildAdvicePrompt(comparison, tt.evidence, tt.industry)
			tt.validate(t, prompt)
		})
	}
}

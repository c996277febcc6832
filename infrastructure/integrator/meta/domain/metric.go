package metadomain

import (
	"encoding/json"
	"math"
	"strconv"
)

// ActionValue é uma entrada da lista de ações da API do Meta,
// identificada pelo tipo da ação.
type ActionValue struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// FlexMetric acomoda os três formatos que a API do Meta usa para um mesmo
// campo de métrica: escalar em string, lista de ActionValue ou campo ausente.
// O JSON bruto é guardado e interpretado sob demanda.
type FlexMetric struct {
	raw json.RawMessage
}

func (m *FlexMetric) UnmarshalJSON(data []byte) error {
	m.raw = append(m.raw[:0], data...)
	return nil
}

func (m FlexMetric) MarshalJSON() ([]byte, error) {
	if m.raw == nil {
		return []byte("null"), nil
	}
	return m.raw, nil
}

// Float interpreta a métrica como float64. Para o formato de lista,
// actionType seleciona a entrada desejada; vazio seleciona a primeira.
// Valores ausentes, não numéricos, negativos ou não finitos viram zero.
func (m FlexMetric) Float(actionType string) float64 {
	if len(m.raw) == 0 {
		return 0
	}

	var scalar string
	if err := json.Unmarshal(m.raw, &scalar); err == nil {
		return sanitize(parseFloat(scalar))
	}

	var entries []ActionValue
	if err := json.Unmarshal(m.raw, &entries); err == nil {
		for _, entry := range entries {
			if actionType == "" || entry.ActionType == actionType {
				return sanitize(parseFloat(entry.Value))
			}
		}
		return 0
	}

	// Algumas métricas chegam como número JSON puro
	var number float64
	if err := json.Unmarshal(m.raw, &number); err == nil {
		return sanitize(number)
	}

	return 0
}

// Int interpreta a métrica como contagem inteira.
func (m FlexMetric) Int(actionType string) int {
	return int(m.Float(actionType))
}

func parseFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

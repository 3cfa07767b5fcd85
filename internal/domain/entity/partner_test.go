package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Todo valor leído del store remoto debe normalizar a uno de los cinco
// estados del pipeline; los desconocidos caen en PROSPECT.
func TestNormalizePipelineStatus(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"prospect se conserva", StatusProspect, StatusProspect},
		{"contacted se conserva", StatusContacted, StatusContacted},
		{"negotiation se conserva", StatusNegotiation, StatusNegotiation},
		{"partner se conserva", StatusPartner, StatusPartner},
		{"churn se conserva", StatusChurn, StatusChurn},
		{"vacío cae en prospect", "", StatusProspect},
		{"desconocido cae en prospect", "QUALIFIED", StatusProspect},
		{"minúsculas no son válidas", "prospect", StatusProspect},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePipelineStatus(tc.raw))
		})
	}
}

func TestPartner_PrimaryContact(t *testing.T) {
	p := &Partner{Contacts: []Contact{
		{Name: "Joe", WhatsApp: "5511999999999"},
		{Name: "Maria"},
	}}
	c := p.PrimaryContact()
	assert.NotNil(t, c)
	assert.Equal(t, "Joe", c.Name, "el contacto principal es el índice 0 por convención")

	empty := &Partner{}
	assert.Nil(t, empty.PrimaryContact())
}

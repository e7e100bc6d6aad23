package service

import (
	"testing"

	"github.com/HenricoAmalfi03/Menu-Interativo/models"
	"github.com/stretchr/testify/require"
)

func TestFormatOrderMessage(t *testing.T) {
	derivation, err := DeriveOrder(checkoutCart(), checkoutInfo(), activeWaiter(), fallbackPhone, testNow)
	require.NoError(t, err)

	expected := "🍽️ *NOVO PEDIDO* 🍽️\n\n" +
		"👤 *Cliente:* Ana\n" +
		"📍 *Mesa:* 12\n" +
		"👨‍🍳 *Garçom:* Bruno\n" +
		"💳 *Pagamento:* PIX\n\n" +
		"📋 *Itens do Pedido:*\n" +
		"\n1. X Burger\n" +
		"   Qtd: 2 x R$ 10.00 = R$ 20.00" +
		"\n2. Suco de Laranja\n" +
		"   Qtd: 1 x R$ 15.00 = R$ 15.00" +
		"\n\n💰 *TOTAL: R$ 35.00*" +
		"\n\n📝 *Observações:*\nSem cebola"

	require.Equal(t, expected, derivation.Message)
}

func TestFormatOrderMessageWithoutObservation(t *testing.T) {
	info := checkoutInfo()
	info.Observation = ""

	derivation, err := DeriveOrder(checkoutCart(), info, activeWaiter(), fallbackPhone, testNow)
	require.NoError(t, err)

	require.NotContains(t, derivation.Message, "Observações")
	require.Contains(t, derivation.Message, "💰 *TOTAL: R$ 35.00*")
}

func TestFormatOrderMessagePaymentLabels(t *testing.T) {
	tests := []struct {
		method string
		label  string
	}{
		{method: models.PaymentDebit, label: "💳 *Pagamento:* Débito"},
		{method: models.PaymentCredit, label: "💳 *Pagamento:* Crédito"},
		{method: models.PaymentPix, label: "💳 *Pagamento:* PIX"},
		{method: models.PaymentCash, label: "💳 *Pagamento:* Dinheiro"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			info := checkoutInfo()
			info.PaymentMethod = tt.method

			derivation, err := DeriveOrder(checkoutCart(), info, activeWaiter(), fallbackPhone, testNow)
			require.NoError(t, err)
			require.Contains(t, derivation.Message, tt.label)
		})
	}
}

func TestNotificationTarget(t *testing.T) {
	require.Equal(t, "5511987654321", NotificationTarget(strPtr("+55 (11) 98765-4321"), fallbackPhone))
	require.Equal(t, fallbackPhone, NotificationTarget(nil, fallbackPhone))
	require.Equal(t, fallbackPhone, NotificationTarget(strPtr(""), fallbackPhone))
	require.Equal(t, "551188887777", NotificationTarget(strPtr("55 11 8888-7777"), fallbackPhone))
}

func TestBuildWhatsAppLink(t *testing.T) {
	link := BuildWhatsAppLink("5511987654321", "Pedido: 2 x R$ 10.00")
	require.Equal(t, "https://wa.me/5511987654321?text=Pedido%3A+2+x+R%24+10.00", link)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardfinder/internal/models"
)

func TestCardKind(t *testing.T) {
	tests := []struct {
		name string
		card models.Card
		want models.InstrumentKind
	}{
		{name: "plain credit card", card: models.Card{Name: "CUBE卡"}, want: models.InstrumentCredit},
		{name: "debit marker in name", card: models.Card{Name: "Pi拍錢包簽帳金融卡"}, want: models.InstrumentDebit},
		{name: "financial card marker", card: models.Card{Name: "數位帳戶金融卡"}, want: models.InstrumentDebit},
		{name: "english marker any case", card: models.Card{Name: "Visa DEBIT"}, want: models.InstrumentDebit},
		{name: "marker in url", card: models.Card{Name: "Card", OfficialURL: "https://bank.example/Debit/card"}, want: models.InstrumentDebit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CardKind(tt.card))
		})
	}
}

func TestPaymentKind(t *testing.T) {
	assert.Equal(t, models.InstrumentETicket, PaymentKind(models.Card{ID: "easycard"}))
	assert.Equal(t, models.InstrumentETicket, PaymentKind(models.Card{ID: "ipass"}))
	assert.Equal(t, models.InstrumentETicket, PaymentKind(models.Card{ID: "icash-pay"}))
	assert.Equal(t, models.InstrumentMobile, PaymentKind(models.Card{ID: "linepay"}))
	assert.Equal(t, models.InstrumentMobile, PaymentKind(models.Card{ID: "EasyCard"}))
}

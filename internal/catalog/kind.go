package catalog

import (
	"strings"

	"cardfinder/internal/models"
)

// eTicketIDs are the payment entries that are stored-value transit cards
var eTicketIDs = map[string]struct{}{
	"easycard":  {},
	"ipass":     {},
	"icash-pay": {},
}

var debitNameMarkers = []string{"簽帳", "金融卡", "debit"}

// PaymentKind classifies a payment-list entry by id
func PaymentKind(card models.Card) models.InstrumentKind {
	if _, ok := eTicketIDs[card.ID]; ok {
		return models.InstrumentETicket
	}
	return models.InstrumentMobile
}

// CardKind classifies a card-list entry by debit markers in its name or URL
func CardKind(card models.Card) models.InstrumentKind {
	name := strings.ToLower(card.Name)
	for _, marker := range debitNameMarkers {
		if strings.Contains(name, marker) {
			return models.InstrumentDebit
		}
	}
	if strings.Contains(strings.ToLower(card.OfficialURL), "debit") {
		return models.InstrumentDebit
	}
	return models.InstrumentCredit
}

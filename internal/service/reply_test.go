package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestBuyTokenRoundTrip(t *testing.T) {
	id := uuid.New()
	token := BuyToken(id)

	got, ok := ParseBuyToken(token)
	if !ok || got != id {
		t.Errorf("ParseBuyToken(%q) = %v, %v", token, got, ok)
	}

	if _, ok := ParseBuyToken("pay:card"); ok {
		t.Error("ParseBuyToken must reject foreign tokens")
	}
	if _, ok := ParseBuyToken("buy:not-a-uuid"); ok {
		t.Error("ParseBuyToken must reject malformed ids")
	}
}

func TestPayTokenRoundTrip(t *testing.T) {
	token := PayToken("card")

	got, ok := ParsePayToken(token)
	if !ok || got != "card" {
		t.Errorf("ParsePayToken(%q) = %q, %v", token, got, ok)
	}

	if _, ok := ParsePayToken(BuyToken(uuid.New())); ok {
		t.Error("ParsePayToken must reject foreign tokens")
	}
}

func TestDeactivateTokenRoundTrip(t *testing.T) {
	id := uuid.New()
	token := DeactivateToken(id)

	got, ok := ParseDeactivateToken(token)
	if !ok || got != id {
		t.Errorf("ParseDeactivateToken(%q) = %v, %v", token, got, ok)
	}
}

package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MenuItem is one selectable entry of a menu: a human label plus an opaque
// selection token the transport sends back on selection.
type MenuItem struct {
	Label string
	Token string
}

// Reply is the abstract outbound payload handlers produce: plain text and
// an optional menu. Rendering to a concrete Telegram keyboard is the
// transport's concern.
type Reply struct {
	Text string
	Menu []MenuItem
}

// Selection token scheme. Tokens are built here and parsed here so the
// transport never interprets their contents.
const (
	tokenBuyPrefix        = "buy:"
	tokenPayPrefix        = "pay:"
	tokenDeactivatePrefix = "deactivate:"

	TokenCatalog       = "catalog"
	TokenAdminOrders   = "admin:orders"
	TokenAdminProducts = "admin:products"
	TokenAdminMenu     = "admin:menu"
)

// BuyToken builds the selection token for buying a product.
func BuyToken(productID uuid.UUID) string {
	return tokenBuyPrefix + productID.String()
}

// ParseBuyToken extracts the product ID from a buy token.
func ParseBuyToken(token string) (uuid.UUID, bool) {
	raw, ok := strings.CutPrefix(token, tokenBuyPrefix)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// PayToken builds the selection token for a payment method.
func PayToken(methodID string) string {
	return tokenPayPrefix + methodID
}

// ParsePayToken extracts the payment method ID from a pay token.
func ParsePayToken(token string) (string, bool) {
	return strings.CutPrefix(token, tokenPayPrefix)
}

// DeactivateToken builds the admin selection token for deactivating a
// product.
func DeactivateToken(productID uuid.UUID) string {
	return tokenDeactivatePrefix + productID.String()
}

// ParseDeactivateToken extracts the product ID from a deactivate token.
func ParseDeactivateToken(token string) (uuid.UUID, bool) {
	raw, ok := strings.CutPrefix(token, tokenDeactivatePrefix)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func formatPrice(amount float64) string {
	return fmt.Sprintf("%.2f ₽", amount)
}

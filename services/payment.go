package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	MethodCash = "Cash"
	MethodCard = "Card"
)

// Payment settles a computed total through one payment method.
type Payment interface {
	Method() string
	Amount() decimal.Decimal
	// Process validates the payment. It either settles in full or fails
	// with a zero Settlement.
	Process() (Settlement, error)
}

// Settlement is the outcome of a successful payment.
type Settlement struct {
	Method   string
	Total    decimal.Decimal
	Change   decimal.Decimal
	Approved bool
}

type CashPayment struct {
	Total        decimal.Decimal
	CashReceived decimal.Decimal
}

func (p CashPayment) Method() string          { return MethodCash }
func (p CashPayment) Amount() decimal.Decimal { return p.Total }

func (p CashPayment) Process() (Settlement, error) {
	if p.CashReceived.LessThan(p.Total) {
		return Settlement{}, fmt.Errorf("%w: received %s, due %s",
			ErrInsufficientFunds, FormatAmount(p.CashReceived), FormatAmount(p.Total))
	}
	return Settlement{
		Method:   MethodCash,
		Total:    p.Total,
		Change:   p.CashReceived.Sub(p.Total),
		Approved: true,
	}, nil
}

// CardPayment only checks the card data shape; nothing is authorized
// against a payment network. Lengths are in characters, not bytes.
type CardPayment struct {
	Total      decimal.Decimal
	CardNumber string
	ExpiryDate string
	CVV        string
}

func (p CardPayment) Method() string          { return MethodCard }
func (p CardPayment) Amount() decimal.Decimal { return p.Total }

func (p CardPayment) Process() (Settlement, error) {
	if utf8.RuneCountInString(p.CardNumber) < 12 {
		return Settlement{}, fmt.Errorf("%w: card number too short", ErrInvalidCardData)
	}
	if utf8.RuneCountInString(p.CVV) != 3 {
		return Settlement{}, fmt.Errorf("%w: cvv must have 3 digits", ErrInvalidCardData)
	}
	return Settlement{
		Method:   MethodCard,
		Total:    p.Total,
		Change:   decimal.Zero,
		Approved: true,
	}, nil
}

// PaymentDetails is the method-agnostic input for NewPayment.
type PaymentDetails struct {
	CashReceived decimal.Decimal
	CardNumber   string
	ExpiryDate   string
	CVV          string
}

// NewPayment picks the payment variant by method name (case-insensitive).
func NewPayment(method string, total decimal.Decimal, d PaymentDetails) (Payment, error) {
	switch {
	case strings.EqualFold(method, MethodCash):
		return CashPayment{Total: total, CashReceived: d.CashReceived}, nil
	case strings.EqualFold(method, MethodCard):
		return CardPayment{Total: total, CardNumber: d.CardNumber, ExpiryDate: d.ExpiryDate, CVV: d.CVV}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPaymentMethod, method)
	}
}

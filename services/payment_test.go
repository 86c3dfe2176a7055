package services

import (
	"errors"
	"testing"
)

func TestCashPayment(t *testing.T) {
	tests := []struct {
		name       string
		total      string
		received   string
		wantErr    error
		wantChange string
	}{
		{"exact amount", "69030", "69030", nil, "0"},
		{"overpaid", "69030", "70000", nil, "970"},
		{"one cent short", "69030", "69029.99", ErrInsufficientFunds, ""},
		{"nothing received", "10", "0", ErrInsufficientFunds, ""},
		{"zero total", "0", "0", nil, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CashPayment{Total: dec(tt.total), CashReceived: dec(tt.received)}
			s, err := p.Process()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Process() error = %v, want %v", err, tt.wantErr)
				}
				if s.Approved {
					t.Errorf("rejected payment reported as approved")
				}
				return
			}
			if err != nil {
				t.Fatalf("Process(): %v", err)
			}
			if !s.Approved || s.Method != MethodCash {
				t.Errorf("settlement = %+v, want approved cash", s)
			}
			if !s.Change.Equal(dec(tt.wantChange)) {
				t.Errorf("Change = %s, want %s", s.Change, tt.wantChange)
			}
			if !s.Total.Equal(dec(tt.total)) {
				t.Errorf("Total = %s, want %s", s.Total, tt.total)
			}
		})
	}
}

func TestCardPayment(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		cvv     string
		wantErr bool
	}{
		{"valid", "123456789012", "123", false},
		{"sixteen digits", "4111111111111111", "999", false},
		{"number too short", "12345678901", "123", true},
		{"empty number", "", "123", true},
		{"cvv too short", "123456789012", "12", true},
		{"cvv too long", "123456789012", "1234", true},
		{"empty cvv", "123456789012", "", true},
		// six characters, twelve bytes
		{"multibyte number too short", "٠١٢٣٤٥", "123", true},
		{"multibyte cvv counted in characters", "123456789012", "١٢٣", false},
		{"multibyte cvv too long", "123456789012", "١٢٣٤", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CardPayment{Total: dec("100"), CardNumber: tt.number, ExpiryDate: "12/30", CVV: tt.cvv}
			s, err := p.Process()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCardData) {
					t.Fatalf("Process() error = %v, want ErrInvalidCardData", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Process(): %v", err)
			}
			if !s.Approved || s.Method != MethodCard || !s.Change.IsZero() {
				t.Errorf("settlement = %+v, want approved card with no change", s)
			}
		})
	}
}

func TestNewPayment(t *testing.T) {
	details := PaymentDetails{CashReceived: dec("50"), CardNumber: "123456789012", ExpiryDate: "01/29", CVV: "321"}

	tests := []struct {
		method     string
		wantMethod string
		wantErr    error
	}{
		{"Cash", MethodCash, nil},
		{"cash", MethodCash, nil},
		{"CARD", MethodCard, nil},
		{"Card", MethodCard, nil},
		{"bitcoin", "", ErrUnsupportedPaymentMethod},
		{"", "", ErrUnsupportedPaymentMethod},
	}
	for _, tt := range tests {
		p, err := NewPayment(tt.method, dec("40"), details)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewPayment(%q) error = %v, want %v", tt.method, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewPayment(%q): %v", tt.method, err)
			continue
		}
		if p.Method() != tt.wantMethod {
			t.Errorf("NewPayment(%q).Method() = %q, want %q", tt.method, p.Method(), tt.wantMethod)
		}
		if !p.Amount().Equal(dec("40")) {
			t.Errorf("NewPayment(%q).Amount() = %s, want 40", tt.method, p.Amount())
		}
	}
}

func TestNewPayment_CarriesDetails(t *testing.T) {
	p, err := NewPayment(MethodCash, dec("40"), PaymentDetails{CashReceived: dec("50")})
	if err != nil {
		t.Fatalf("NewPayment: %v", err)
	}
	s, err := p.Process()
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !s.Change.Equal(dec("10")) {
		t.Errorf("Change = %s, want 10", s.Change)
	}
}

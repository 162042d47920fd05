package orbtrade

import "testing"

func TestAmountString(t *testing.T) {
	tests := []struct {
		name string
		a    Amount
		want string
	}{
		{"fractional", A(180.5), "180.50 Exalted Orb"},
		{"integer", A(1), "1.00 Exalted Orb"},
		{"zero", A(0), "0.00 Exalted Orb"},
		{"negative", A(-20), "-20.00 Exalted Orb"},
		{"thousands", A(50000), "50,000.00 Exalted Orb"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAmountSignedString(t *testing.T) {
	tests := []struct {
		name string
		a    Amount
		want string
	}{
		{"positive gets a plus", A(20), "+20.00 Exalted Orb"},
		{"negative keeps its minus", A(-20), "-20.00 Exalted Orb"},
		{"zero is unsigned", A(0), "0.00 Exalted Orb"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.SignedString(); got != tc.want {
				t.Errorf("SignedString() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAmountArithmetic(t *testing.T) {
	if got := A(180).Mul(2); !got.Equal(A(360)) {
		t.Errorf("180 * 2 = %s, want 360", got)
	}
	if got := A(180).Sub(A(200)); !got.Equal(A(-20)) {
		t.Errorf("180 - 200 = %s, want -20", got)
	}
	if got := A(0.1).Add(A(0.2)); !got.Equal(A(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want exactly 0.3", got)
	}
}

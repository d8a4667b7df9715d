package minicalc_test

import (
	"testing"

	"github.com/zephyrtronium/minicalc"
)

func TestTokenText(t *testing.T) {
	want := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".", "+", "-", "×", "÷", "(", ")"}
	toks := minicalc.Tokens()
	if len(toks) != len(want) {
		t.Fatalf("wrong number of tokens: want %d, got %d", len(want), len(toks))
	}
	for i, tok := range toks {
		if s := tok.String(); s != want[i] {
			t.Errorf("token %d: want %q, got %q", i, want[i], s)
		}
	}
}

func TestDigit(t *testing.T) {
	for i := 0; i <= 9; i++ {
		d := minicalc.Digit(i)
		if !d.IsDigit() {
			t.Errorf("Digit(%d) = %v is not a digit", i, d)
		}
		if s := d.String(); s != string(rune('0'+i)) {
			t.Errorf("Digit(%d) has text %q", i, s)
		}
	}
	for _, bad := range []int{-1, 10} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Digit(%d) did not panic", bad)
				}
			}()
			minicalc.Digit(bad)
		}()
	}
}

func TestTokenClasses(t *testing.T) {
	ops := 0
	for _, tok := range minicalc.Tokens() {
		if tok.IsDigit() && tok.IsOperator() {
			t.Errorf("%v is both a digit and an operator", tok)
		}
		if tok.IsOperator() {
			ops++
		}
	}
	if ops != 4 {
		t.Errorf("want 4 operators, got %d", ops)
	}
}

func TestKeyFor(t *testing.T) {
	cases := []struct {
		r   rune
		key minicalc.Key
		ok  bool
	}{
		{'0', minicalc.TokenKey(minicalc.Zero), true},
		{'7', minicalc.TokenKey(minicalc.Seven), true},
		{'.', minicalc.TokenKey(minicalc.Point), true},
		{'+', minicalc.TokenKey(minicalc.Plus), true},
		{'-', minicalc.TokenKey(minicalc.Minus), true},
		{'−', minicalc.TokenKey(minicalc.Minus), true},
		{'—', minicalc.TokenKey(minicalc.Minus), true},
		{'*', minicalc.TokenKey(minicalc.Times), true},
		{'×', minicalc.TokenKey(minicalc.Times), true},
		{'/', minicalc.TokenKey(minicalc.Divide), true},
		{'÷', minicalc.TokenKey(minicalc.Divide), true},
		{'(', minicalc.TokenKey(minicalc.Open), true},
		{')', minicalc.TokenKey(minicalc.Close), true},
		{'=', minicalc.Key{Action: minicalc.Equals}, true},
		{'\n', minicalc.Key{Action: minicalc.Equals}, true},
		{'\b', minicalc.Key{Action: minicalc.Delete}, true},
		{'\x7f', minicalc.Key{Action: minicalc.Delete}, true},
		{'c', minicalc.Key{Action: minicalc.Clear}, true},
		{'C', minicalc.Key{Action: minicalc.Clear}, true},
		{'x', minicalc.Key{}, false},
		{'^', minicalc.Key{}, false},
		{' ', minicalc.Key{}, false},
	}
	for _, c := range cases {
		key, ok := minicalc.KeyFor(c.r)
		if key != c.key || ok != c.ok {
			t.Errorf("KeyFor(%q): want %v, %t; got %v, %t", c.r, c.key, c.ok, key, ok)
		}
	}
}

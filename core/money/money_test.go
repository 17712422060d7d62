package money

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0₺"},
		{51, "51₺"},
		{12500, "12.500₺"},
		{1234567, "1.234.567₺"},
		{1234.5, "1.234,5₺"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNewFormatter_Fallback(t *testing.T) {
	f := NewFormatter("???")
	if got := f.Price(12500); got != "12.500₺" {
		t.Errorf("Price = %q, want 12.500₺", got)
	}
}

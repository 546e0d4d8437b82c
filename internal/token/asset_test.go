package token

import "testing"

func TestParseAsset(t *testing.T) {
	a, err := ParseAsset("1.50000000 WAX")
	if err != nil {
		t.Fatalf("ParseAsset: %v", err)
	}

	if a.Amount != 150000000 {
		t.Errorf("amount = %d, want 150000000", a.Amount)
	}

	if a.Symbol != Core {
		t.Errorf("symbol = %v, want %v", a.Symbol, Core)
	}

	if a.String() != "1.50000000 WAX" {
		t.Errorf("String = %q", a.String())
	}
}

func TestParseAssetNoDecimals(t *testing.T) {
	a, err := ParseAsset("12 TLM")
	if err != nil {
		t.Fatalf("ParseAsset: %v", err)
	}

	if a.Amount != 12 || a.Symbol.Precision != 0 {
		t.Errorf("got %+v", a)
	}
}

func TestParseAssetRejects(t *testing.T) {
	for _, s := range []string{"1.0", "abc WAX", "1.0 wax", "1.0 TOOLONGX", "1 2 WAX"} {
		if _, err := ParseAsset(s); err == nil {
			t.Errorf("ParseAsset(%q) accepted", s)
		}
	}
}

func TestSymbolRaw(t *testing.T) {
	raw := Core.Raw()

	// "8,WAX": 0x08 | 'W'<<8 | 'A'<<16 | 'X'<<24
	want := uint64(8) | uint64('W')<<8 | uint64('A')<<16 | uint64('X')<<24
	if raw != want {
		t.Errorf("Raw = %#x, want %#x", raw, want)
	}

	back, err := SymbolFromRaw(raw)
	if err != nil {
		t.Fatalf("SymbolFromRaw: %v", err)
	}

	if back != Core {
		t.Errorf("SymbolFromRaw = %v", back)
	}
}

func TestAssetText(t *testing.T) {
	a, _ := ParseAsset("0.50000000 WAX")

	text, err := a.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "0.50000000 WAX" {
		t.Errorf("MarshalText = %q", text)
	}

	var back Asset
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if back != a {
		t.Errorf("UnmarshalText = %+v, want %+v", back, a)
	}

	if err := back.UnmarshalText([]byte("lots")); err == nil {
		t.Error("UnmarshalText accepted garbage")
	}
}

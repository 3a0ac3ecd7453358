package core

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		a      Activity
		want   Category
		billed bool
	}{
		{"large transport", Activity{Type: TypeLargeTransportation}, CategoryTransport, true},
		{"large transport ignores mode", Activity{Type: TypeLargeTransportation, Mode: "walk"}, CategoryTransport, true},
		{"plane", Activity{Type: TypeTransportation, Mode: ModePlane}, CategoryTransport, true},
		{"train", Activity{Type: TypeTransportation, Mode: ModeTrain}, CategoryTransport, true},
		{"walk not billed", Activity{Type: TypeTransportation, Mode: "walk"}, "", false},
		{"bus not billed", Activity{Type: TypeTransportation, Mode: "bus"}, "", false},
		{"transport without mode not billed", Activity{Type: TypeTransportation}, "", false},
		{"hotel is lodging", Activity{Type: TypeActivity, Mode: ModeHotel}, CategoryLodging, true},
		{"attraction is tickets", Activity{Type: TypeActivity, Mode: "attraction"}, CategoryTickets, true},
		{"activity without mode is tickets", Activity{Type: TypeActivity}, CategoryTickets, true},
		{"food", Activity{Type: TypeFood}, CategoryFood, true},
		{"shopping", Activity{Type: TypeShopping}, CategoryShopping, true},
		{"unknown type", Activity{Type: "sightseeing"}, "", false},
		{"empty type", Activity{}, "", false},
	}
	for _, tc := range cases {
		got, billed := Classify(tc.a)
		if billed != tc.billed || got != tc.want {
			t.Fatalf("%s: Classify = (%q, %v), want (%q, %v)", tc.name, got, billed, tc.want, tc.billed)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		if err != nil || got != c {
			t.Fatalf("ParseCategory(%q) = (%q, %v)", c, got, err)
		}
	}
	if _, err := ParseCategory(" food "); err != nil {
		t.Fatalf("expected trimmed parse to succeed, got %v", err)
	}
	for _, bad := range []string{"", "accommodation", "Tickets", "transportation"} {
		if _, err := ParseCategory(bad); err == nil {
			t.Fatalf("ParseCategory(%q) expected error", bad)
		}
	}
}

package regions

import "testing"

func TestCatalogLookups(t *testing.T) {
	r, ok := ByName("Dehradun District")
	if !ok {
		t.Fatal("Dehradun District missing from catalog")
	}
	if r.ID != "dehradun" || r.AreaKM2 != 3088 || r.State != "Uttarakhand" {
		t.Errorf("unexpected catalog entry: %+v", r)
	}

	if _, ok := ByID("dehradun"); !ok {
		t.Error("ByID(dehradun) failed")
	}
	if _, ok := ByName("dehradun district"); !ok {
		t.Error("ByName should be case-insensitive")
	}
	if _, ok := Resolve("nainital"); !ok {
		t.Error("Resolve by id failed")
	}
	if _, ok := Resolve("Nainital District"); !ok {
		t.Error("Resolve by name failed")
	}
	if _, ok := Resolve("atlantis"); ok {
		t.Error("Resolve invented a region")
	}
}

func TestBoundsContainCenter(t *testing.T) {
	for _, r := range All() {
		if !r.Bounds.Contains(r.Center) {
			t.Errorf("%s: center %v outside bounds %v", r.ID, r.Center, r.Bounds)
		}
		if r.AreaKM2 <= 0 {
			t.Errorf("%s: non-positive area", r.ID)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Name = "mutated"
	if b := All(); b[0].Name == "mutated" {
		t.Error("All leaked the backing catalog")
	}
}

func TestSlug(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Dehradun District", "dehradun_district"},
		{"  Pauri  Garhwal ", "pauri_garhwal"},
		{"almora", "almora"},
	}
	for _, tc := range cases {
		if got := Slug(tc.in); got != tc.want {
			t.Errorf("Slug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

package recipe

import "testing"

func TestMatchSubstringContainment(t *testing.T) {
	matched := Match([]string{"계란"}, DefaultTable())

	if len(matched) != 1 {
		t.Fatalf("expected exactly 1 recipe, got %d", len(matched))
	}
	if matched[0].Name != "계란후라이" {
		t.Fatalf("expected 계란후라이, got %q", matched[0].Name)
	}
}

func TestMatchIsLooseByDesign(t *testing.T) {
	// 채소 appears inside the joined token list of 상추샐러드 ("상추,채소"),
	// so owning 채소 matches even without owning 상추.
	matched := Match([]string{"채소"}, DefaultTable())

	if len(matched) != 1 || matched[0].Name != "상추샐러드" {
		t.Fatalf("expected 상추샐러드 via containment, got %+v", matched)
	}
}

func TestMatchAnyOwnedSuffices(t *testing.T) {
	matched := Match([]string{"치킨", "우유"}, DefaultTable())

	want := map[string]bool{"치킨마요덮밥": true, "우유푸딩": true}
	if len(matched) != len(want) {
		t.Fatalf("expected %d recipes, got %d", len(want), len(matched))
	}
	for _, r := range matched {
		if !want[r.Name] {
			t.Fatalf("unexpected recipe %q", r.Name)
		}
	}
}

func TestMatchPreservesTableOrder(t *testing.T) {
	matched := Match([]string{"계란", "치킨", "상추"}, DefaultTable())

	want := []string{"계란후라이", "치킨마요덮밥", "상추샐러드"}
	if len(matched) != len(want) {
		t.Fatalf("expected %d recipes, got %d", len(want), len(matched))
	}
	for i, name := range want {
		if matched[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, matched[i].Name)
		}
	}
}

func TestMatchEmptyOwned(t *testing.T) {
	if matched := Match(nil, DefaultTable()); len(matched) != 0 {
		t.Fatalf("no owned ingredients must match nothing, got %d", len(matched))
	}
	if matched := Match([]string{""}, DefaultTable()); len(matched) != 0 {
		t.Fatalf("blank owned name must match nothing, got %d", len(matched))
	}
}

func TestFilterKind(t *testing.T) {
	filtered := FilterKind(DefaultTable(), "디저트")
	if len(filtered) != 1 || filtered[0].Name != "우유푸딩" {
		t.Fatalf("expected only 우유푸딩, got %+v", filtered)
	}

	if all := FilterKind(DefaultTable(), ""); len(all) != len(DefaultTable()) {
		t.Fatalf("empty kind must not filter, got %d", len(all))
	}
}

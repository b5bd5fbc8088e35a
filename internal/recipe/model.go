package recipe

// Recipe is static reference data, loaded once and never mutated.
// Ingredients is a comma-joined token string, kept exactly as the reference
// table encodes it because the matcher works on the joined form.
type Recipe struct {
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
	Kind        string `json:"kind"`
	Calories    int    `json:"calories"`
}

// DefaultTable is the built-in recipe table.
func DefaultTable() []Recipe {
	return []Recipe{
		{Name: "계란후라이", Ingredients: "계란", Kind: "간단요리", Calories: 120},
		{Name: "치킨마요덮밥", Ingredients: "치킨,마요네즈", Kind: "배달음식재활용", Calories: 700},
		{Name: "상추샐러드", Ingredients: "상추,채소", Kind: "다이어트", Calories: 80},
		{Name: "두부김치", Ingredients: "두부,김치", Kind: "한식", Calories: 400},
		{Name: "제육볶음", Ingredients: "돼지고기,양파", Kind: "메인요리", Calories: 600},
		{Name: "우유푸딩", Ingredients: "우유,설탕", Kind: "디저트", Calories: 250},
	}
}

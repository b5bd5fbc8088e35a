package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"savemyfridge/internal/inventory"
	"savemyfridge/internal/points"
	"savemyfridge/internal/recipe"
	"savemyfridge/internal/waste"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	wasteService := waste.NewService(waste.NewMemoryRepository())
	pointsService := points.NewService(points.NewMemoryRepository())
	inventoryService := inventory.NewService(
		inventory.NewMemoryRepository(), pointsService, wasteService,
	)

	return New(Deps{
		Inventory: inventory.NewHandler(inventoryService),
		Waste:     waste.NewHandler(wasteService),
		Points:    points.NewHandler(pointsService),
		Recipes:   recipe.NewHandler(recipe.DefaultTable(), inventoryService),
		Summary:   NewSummaryHandler(inventoryService, wasteService, pointsService),
	})
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestIngredientLifecycle(t *testing.T) {
	r := newTestRouter()

	// register
	w := do(t, r, http.MethodPost, "/ingredients", `{
		"name": "우유",
		"category": "dairy",
		"quantity": 1,
		"expiry_date": "2025-11-22"
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created inventory.Ingredient
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created ingredient: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected an id in the response")
	}
	if !strings.Contains(w.Body.String(), `"expiry_date":"2025-11-22"`) {
		t.Fatalf("expected a plain date in the response, got %s", w.Body.String())
	}

	// visible in the list
	w = do(t, r, http.MethodGet, "/ingredients", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var listed struct {
		Ingredients []inventory.Ingredient `json:"ingredients"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed.Ingredients) != 1 || listed.Ingredients[0].Name != "우유" {
		t.Fatalf("unexpected list: %+v", listed.Ingredients)
	}

	// discard it
	w = do(t, r, http.MethodPost, "/ingredients/"+created.ID+"/discard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// one 300 g waste event exists now
	w = do(t, r, http.MethodGet, "/waste", "")
	var wasteResp struct {
		Events []waste.Event `json:"events"`
		TotalG int           `json:"total_g"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &wasteResp); err != nil {
		t.Fatalf("decode waste: %v", err)
	}
	if len(wasteResp.Events) != 1 || wasteResp.TotalG != 300 {
		t.Fatalf("expected one 300 g event, got %+v", wasteResp)
	}

	// a second discard of the same id is gone for good
	w = do(t, r, http.MethodPost, "/ingredients/"+created.ID+"/discard", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestValidationErrors(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodPost, "/ingredients", `{
		"name": "",
		"category": "dairy",
		"quantity": 1,
		"expiry_date": "2025-11-22"
	}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank name: expected 400, got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/waste", `{"amount_g": -5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative grams: expected 400, got %d", w.Code)
	}
}

func TestPointsEndpoints(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodPost, "/points/checkin", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/points/actions", `{"action": "delivery_reuse"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/points/actions", `{"action": "nope"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown action: expected 400, got %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/points/summary", "")
	var summary points.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Total != 30 || summary.Level != 1 || summary.Remaining != 70 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestRecipeSuggestions(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodPost, "/ingredients", `{
		"name": "계란",
		"category": "protein",
		"quantity": 10,
		"expiry_date": "2025-11-25"
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/recipes", "")
	var resp struct {
		Owned   []string        `json:"owned"`
		Recipes []recipe.Recipe `json:"recipes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode recipes: %v", err)
	}
	if len(resp.Recipes) != 1 || resp.Recipes[0].Name != "계란후라이" {
		t.Fatalf("expected 계란후라이, got %+v", resp.Recipes)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodGet, "/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		IngredientCount int `json:"ingredient_count"`
		TotalPoints     int `json:"total_points"`
		TotalWasteG     int `json:"total_waste_g"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if resp.IngredientCount != 0 || resp.TotalPoints != 0 || resp.TotalWasteG != 0 {
		t.Fatalf("fresh store must report zeros, got %+v", resp)
	}
}

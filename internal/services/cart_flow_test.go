package services_test

import (
	"testing"

	"pickl/internal/repos"
	"pickl/internal/services"
)

func newCartSvc(t *testing.T) *services.CartService {
	t.Helper()
	db := memdb(t)
	return services.NewCartService(repos.NewCartRepo(db), repos.NewProductRepo(db))
}

func TestCartAddIsIdempotent(t *testing.T) {
	svc := newCartSvc(t)
	sid := "test-session"

	if err := svc.Add(sid, "1"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Add(sid, "1"); err != nil {
		t.Fatal(err)
	}

	cv, err := svc.View(sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(cv.Items) != 1 {
		t.Fatalf("double add grew the bag: %d items", len(cv.Items))
	}
	if cv.Total != 80 {
		t.Fatalf("want total 80, got %v", cv.Total)
	}
}

func TestCartTotalSumsMemberPrices(t *testing.T) {
	svc := newCartSvc(t)
	sid := "test-session"

	for _, id := range []string{"1", "3", "4"} { // 80 + 120 + 200
		if err := svc.Add(sid, id); err != nil {
			t.Fatal(err)
		}
	}
	cv, err := svc.View(sid)
	if err != nil {
		t.Fatal(err)
	}
	if cv.Total != 400 {
		t.Fatalf("want total 400, got %v", cv.Total)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	svc := newCartSvc(t)

	if err := svc.Add("test-session", "no-such-id"); err == nil {
		t.Fatal("bag entries must reference catalog rows")
	}
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	svc := newCartSvc(t)
	sid := "test-session"

	if err := svc.Add(sid, "2"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Remove(sid, "no-such-id"); err != nil {
		t.Fatal(err)
	}
	cv, err := svc.View(sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(cv.Items) != 1 || cv.Items[0].ProductID != "2" {
		t.Fatalf("bag changed by removing an absent id: %+v", cv.Items)
	}

	if err := svc.Remove(sid, "2"); err != nil {
		t.Fatal(err)
	}
	if n, _ := svc.Count(sid); n != 0 {
		t.Fatalf("want empty bag, got %d items", n)
	}
}

func TestCheckoutEmptiesBag(t *testing.T) {
	svc := newCartSvc(t)
	sid := "test-session"

	for _, id := range []string{"1", "2"} {
		if err := svc.Add(sid, id); err != nil {
			t.Fatal(err)
		}
	}
	if err := svc.Checkout(sid); err != nil {
		t.Fatal(err)
	}
	cv, err := svc.View(sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(cv.Items) != 0 || cv.Total != 0 {
		t.Fatalf("checkout left the bag non-empty: %+v", cv)
	}
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	svc := newCartSvc(t)

	if err := svc.Add("sid-a", "1"); err != nil {
		t.Fatal(err)
	}
	if n, _ := svc.Count("sid-b"); n != 0 {
		t.Fatalf("session b sees session a's bag: %d items", n)
	}
}

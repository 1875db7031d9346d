package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marcus/shopdesk/internal/models"
)

func TestInitialize(t *testing.T) {
	dir := t.TempDir()

	db, err := Initialize(dir)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer db.Close()

	// Check database file exists
	dbPath := filepath.Join(dir, ".shopdesk", "store.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file not created")
	}
}

func TestOpenMissingDatabase(t *testing.T) {
	dir := t.TempDir()

	if _, err := Open(dir); err == nil {
		t.Error("Expected error opening missing database")
	}
}

func TestCreateAndGetProduct(t *testing.T) {
	db := testDB(t)

	p := &models.Product{
		SKU:        "TST-0001",
		Name:       "Test Product",
		PriceCents: 1299,
		Stock:      5,
	}
	if err := db.CreateProduct(p); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	if p.ID == "" {
		t.Fatal("Expected product ID to be assigned")
	}
	if p.Status != models.ProductActive {
		t.Errorf("Expected default status active, got %q", p.Status)
	}

	got, err := db.GetProduct(p.ID)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if got.Name != "Test Product" || got.PriceCents != 1299 || got.Stock != 5 {
		t.Errorf("Round-trip mismatch: %+v", got)
	}
}

func TestGetProductNormalizesID(t *testing.T) {
	db := testDB(t)

	p := &models.Product{SKU: "TST-0002", Name: "Bare ID", PriceCents: 100}
	if err := db.CreateProduct(p); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	bare := p.ID[len("pr-"):]
	got, err := db.GetProduct(bare)
	if err != nil {
		t.Fatalf("GetProduct with bare ID failed: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("Expected %s, got %s", p.ID, got.ID)
	}
}

func TestCreateProductValidation(t *testing.T) {
	db := testDB(t)

	cases := []struct {
		name string
		p    models.Product
	}{
		{"missing name", models.Product{SKU: "X-1"}},
		{"missing sku", models.Product{Name: "X"}},
		{"bad status", models.Product{SKU: "X-1", Name: "X", Status: "archived"}},
	}

	for _, tc := range cases {
		if err := db.CreateProduct(&tc.p); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestUpdateProduct(t *testing.T) {
	db := testDB(t)

	p := &models.Product{SKU: "TST-0003", Name: "Before", PriceCents: 100}
	if err := db.CreateProduct(p); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	p.Name = "After"
	p.PriceCents = 250
	if err := db.UpdateProduct(p); err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}

	got, err := db.GetProduct(p.ID)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if got.Name != "After" || got.PriceCents != 250 {
		t.Errorf("Update not persisted: %+v", got)
	}
	if !got.UpdatedAt.After(got.CreatedAt) && !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Error("Expected UpdatedAt >= CreatedAt")
	}
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	db := testDB(t)

	p := &models.Product{SKU: "TST-0004", Name: "Stocked", Stock: 3}
	if err := db.CreateProduct(p); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	stock, err := db.AdjustStock(p.ID, 2)
	if err != nil {
		t.Fatalf("AdjustStock failed: %v", err)
	}
	if stock != 5 {
		t.Errorf("Expected stock 5, got %d", stock)
	}

	stock, err = db.AdjustStock(p.ID, -10)
	if err != nil {
		t.Fatalf("AdjustStock failed: %v", err)
	}
	if stock != 0 {
		t.Errorf("Expected stock clamped to 0, got %d", stock)
	}
}

func TestSetProductStatus(t *testing.T) {
	db := testDB(t)

	p := &models.Product{SKU: "TST-0005", Name: "Visible"}
	if err := db.CreateProduct(p); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	if err := db.SetProductStatus(p.ID, models.ProductDiscontinued); err != nil {
		t.Fatalf("SetProductStatus failed: %v", err)
	}
	got, _ := db.GetProduct(p.ID)
	if got.Status != models.ProductDiscontinued {
		t.Errorf("Expected discontinued, got %q", got.Status)
	}

	if err := db.SetProductStatus(p.ID, "bogus"); err == nil {
		t.Error("Expected error for invalid status")
	}
	if err := db.SetProductStatus("pr-missing1", models.ProductHidden); err == nil {
		t.Error("Expected error for missing product")
	}
}

func TestListProductsFilters(t *testing.T) {
	db := testDB(t)

	mk := func(sku, name string, status models.ProductStatus) {
		p := &models.Product{SKU: sku, Name: name, Status: status}
		if err := db.CreateProduct(p); err != nil {
			t.Fatalf("CreateProduct failed: %v", err)
		}
	}
	mk("A-1", "Alpha", models.ProductActive)
	mk("B-1", "Beta", models.ProductHidden)
	mk("C-1", "Gamma", models.ProductActive)

	active, err := db.ListProducts(ListProductsOptions{Status: []models.ProductStatus{models.ProductActive}})
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("Expected 2 active products, got %d", len(active))
	}

	found, err := db.ListProducts(ListProductsOptions{Search: "bet"})
	if err != nil {
		t.Fatalf("ListProducts search failed: %v", err)
	}
	if len(found) != 1 || found[0].Name != "Beta" {
		t.Errorf("Expected search to find Beta, got %+v", found)
	}
}

func TestReviewModeration(t *testing.T) {
	db := testDB(t)

	p := &models.Product{SKU: "TST-0006", Name: "Reviewed"}
	if err := db.CreateProduct(p); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	r := &models.Review{ProductID: p.ID, Author: "mira", Rating: 4, Body: "nice"}
	if err := db.CreateReview(r); err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}
	if r.Status != models.ReviewPending {
		t.Errorf("Expected default pending, got %q", r.Status)
	}

	if err := db.SetReviewStatus(r.ID, models.ReviewPublished); err != nil {
		t.Fatalf("SetReviewStatus failed: %v", err)
	}
	if err := db.SetReviewReply(r.ID, "thanks!"); err != nil {
		t.Fatalf("SetReviewReply failed: %v", err)
	}

	got, err := db.GetReview(r.ID)
	if err != nil {
		t.Fatalf("GetReview failed: %v", err)
	}
	if got.Status != models.ReviewPublished || got.Reply != "thanks!" {
		t.Errorf("Moderation not persisted: %+v", got)
	}
}

func TestCreateReviewValidation(t *testing.T) {
	db := testDB(t)

	if err := db.CreateReview(&models.Review{ProductID: "pr-x", Rating: 0}); err == nil {
		t.Error("Expected error for rating 0")
	}
	if err := db.CreateReview(&models.Review{Rating: 3}); err == nil {
		t.Error("Expected error for missing product_id")
	}
}

func TestListReviewsByStatusAndProduct(t *testing.T) {
	db := testDB(t)

	p := &models.Product{SKU: "TST-0007", Name: "Multi"}
	if err := db.CreateProduct(p); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	for i, st := range []models.ReviewStatus{models.ReviewPending, models.ReviewPublished, models.ReviewPublished} {
		r := &models.Review{ProductID: p.ID, Author: "a", Rating: i + 1, Status: st}
		if err := db.CreateReview(r); err != nil {
			t.Fatalf("CreateReview failed: %v", err)
		}
	}

	published, err := db.ListReviews(ListReviewsOptions{
		Status:    []models.ReviewStatus{models.ReviewPublished},
		ProductID: p.ID,
	})
	if err != nil {
		t.Fatalf("ListReviews failed: %v", err)
	}
	if len(published) != 2 {
		t.Errorf("Expected 2 published reviews, got %d", len(published))
	}

	high, err := db.ListReviews(ListReviewsOptions{ProductID: p.ID, MinRating: 3})
	if err != nil {
		t.Fatalf("ListReviews failed: %v", err)
	}
	if len(high) != 1 {
		t.Errorf("Expected 1 review with rating >= 3, got %d", len(high))
	}
}

func TestTicketLifecycle(t *testing.T) {
	db := testDB(t)

	tk := &models.Ticket{Subject: "Broken", Requester: "x@example.com"}
	if err := db.CreateTicket(tk); err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}
	if tk.Status != models.TicketOpen || tk.Priority != models.PriorityP2 {
		t.Errorf("Unexpected defaults: %+v", tk)
	}

	if err := db.SetTicketStatus(tk.ID, models.TicketSolved); err != nil {
		t.Fatalf("SetTicketStatus failed: %v", err)
	}

	got, err := db.GetTicket(tk.ID)
	if err != nil {
		t.Fatalf("GetTicket failed: %v", err)
	}
	if got.Status != models.TicketSolved {
		t.Errorf("Expected solved, got %q", got.Status)
	}

	solved, err := db.ListTickets(ListTicketsOptions{Status: []models.TicketStatus{models.TicketSolved}})
	if err != nil {
		t.Fatalf("ListTickets failed: %v", err)
	}
	if len(solved) != 1 {
		t.Errorf("Expected 1 solved ticket, got %d", len(solved))
	}
}

func TestDeleteProductCascadesReviews(t *testing.T) {
	db := testDB(t)

	p := &models.Product{SKU: "TST-0008", Name: "Doomed"}
	if err := db.CreateProduct(p); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	r := &models.Review{ProductID: p.ID, Author: "a", Rating: 3}
	if err := db.CreateReview(r); err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}

	if err := db.DeleteProduct(p.ID); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}

	if _, err := db.GetProduct(p.ID); err == nil {
		t.Error("Expected product to be gone")
	}
	if _, err := db.GetReview(r.ID); err == nil {
		t.Error("Expected review to be gone")
	}
}

func TestSeed(t *testing.T) {
	db := testDB(t)

	if err := db.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	products, err := db.ListProducts(ListProductsOptions{})
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(products) == 0 {
		t.Error("Expected seeded products")
	}
	tickets, err := db.ListTickets(ListTicketsOptions{})
	if err != nil {
		t.Fatalf("ListTickets failed: %v", err)
	}
	if len(tickets) == 0 {
		t.Error("Expected seeded tickets")
	}
}

// testDB creates an initialized database in a temp dir, closed on cleanup
func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Initialize(t.TempDir())
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

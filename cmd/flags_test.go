package cmd

import (
	"testing"

	"github.com/marcus/shopdesk/internal/models"
)

func TestStatusListFlagValidates(t *testing.T) {
	flag := statusListFlag{
		name: "product",
		valid: func(s string) bool {
			return models.IsValidProductStatus(models.ProductStatus(s))
		},
	}

	if err := flag.Set("active"); err != nil {
		t.Fatalf("Set(active) failed: %v", err)
	}
	if err := flag.Set("HIDDEN"); err != nil {
		t.Fatalf("Set should lowercase input: %v", err)
	}
	if err := flag.Set("bogus"); err == nil {
		t.Error("expected error for invalid status")
	}

	if got := flag.String(); got != "active,hidden" {
		t.Errorf("String() = %q", got)
	}
	if flag.Type() != "status" {
		t.Errorf("Type() = %q", flag.Type())
	}
}

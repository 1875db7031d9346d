package console

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/marcus/shopdesk/internal/models"
)

// productFormMode selects create vs edit behavior
type productFormMode int

const (
	formModeCreate productFormMode = iota
	formModeEdit
)

// productForm holds form state for creating or editing a product. Field
// values are kept as strings bound to the huh inputs and converted on submit.
type productForm struct {
	Mode      productFormMode
	ProductID string

	Name        string
	SKU         string
	Description string
	Price       string
	Stock       string
	Status      string

	Form *huh.Form
}

// newProductForm builds a form pre-populated from the product (nil for create)
func newProductForm(p *models.Product) *productForm {
	f := &productForm{
		Mode:   formModeCreate,
		Status: string(models.ProductActive),
		Stock:  "0",
		Price:  "0.00",
	}
	if p != nil {
		f.Mode = formModeEdit
		f.ProductID = p.ID
		f.Name = p.Name
		f.SKU = p.SKU
		f.Description = p.Description
		f.Price = formatPrice(p.PriceCents)
		f.Stock = strconv.Itoa(p.Stock)
		f.Status = string(p.Status)
	}
	f.buildForm()
	return f
}

func (f *productForm) buildForm() {
	f.Form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("SKU").
				Value(&f.SKU).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("sku is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Price").
				Description("in dollars, e.g. 12.50").
				Value(&f.Price).
				Validate(func(s string) error {
					_, err := parsePriceCents(s)
					return err
				}),
			huh.NewInput().
				Title("Stock").
				Value(&f.Stock).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 0 {
						return fmt.Errorf("stock must be a non-negative integer")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("active", string(models.ProductActive)),
					huh.NewOption("hidden", string(models.ProductHidden)),
					huh.NewOption("discontinued", string(models.ProductDiscontinued)),
				).
				Value(&f.Status),
			huh.NewText().
				Title("Description").
				Lines(3).
				CharLimit(500).
				Value(&f.Description),
		),
	).WithShowHelp(true)
}

// Init starts the underlying huh form
func (f *productForm) Init() tea.Cmd {
	return f.Form.Init()
}

// Update routes a message to the form and reports completion
func (f *productForm) Update(msg tea.Msg) (tea.Cmd, bool) {
	model, cmd := f.Form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.Form = form
	}
	return cmd, f.Form.State == huh.StateCompleted
}

// View renders the form
func (f *productForm) View() string {
	return f.Form.View()
}

// ToProduct converts the validated form values into a product
func (f *productForm) ToProduct() (*models.Product, error) {
	priceCents, err := parsePriceCents(f.Price)
	if err != nil {
		return nil, err
	}
	stock, err := strconv.Atoi(strings.TrimSpace(f.Stock))
	if err != nil || stock < 0 {
		return nil, fmt.Errorf("stock must be a non-negative integer")
	}
	return &models.Product{
		ID:          f.ProductID,
		SKU:         strings.TrimSpace(f.SKU),
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		PriceCents:  priceCents,
		Stock:       stock,
		Status:      models.ProductStatus(f.Status),
	}, nil
}

// parsePriceCents converts a dollar string like "12.50" to cents
func parsePriceCents(s string) (int64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, fmt.Errorf("price is required")
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("price must be a non-negative number")
	}
	return int64(value*100 + 0.5), nil
}

// formatPrice renders cents as a dollar string
func formatPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

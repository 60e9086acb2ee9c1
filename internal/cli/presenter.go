package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pentoria/pentoria/internal/models"
	"github.com/pentoria/pentoria/internal/ui"
)

// TerminalPresenter renders marketplace state as plain text on w.
type TerminalPresenter struct {
	w io.Writer
}

func NewTerminalPresenter(w io.Writer) *TerminalPresenter {
	return &TerminalPresenter{w: w}
}

// formatNaira renders an amount as ₦ with thousands separators.
func formatNaira(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-₦" + string(out)
	}
	return "₦" + string(out)
}

func (p *TerminalPresenter) RenderProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(p.w, "No products found")
		return
	}
	for _, prod := range products {
		featured := ""
		if prod.Featured {
			featured = " *featured*"
		}
		fmt.Fprintf(p.w, "[%d] %s — %s (%s, %s) %d views%s\n",
			prod.ID, prod.Title, formatNaira(prod.Price), prod.Condition, prod.Location, prod.Views, featured)
	}
	fmt.Fprintf(p.w, "%d product(s)\n", len(products))
}

func (p *TerminalPresenter) RenderCart(lines []models.CartLine, totals models.Totals) {
	if len(lines) == 0 {
		fmt.Fprintln(p.w, "Your cart is empty")
		return
	}
	for _, line := range lines {
		fmt.Fprintf(p.w, "[%d] %s x%d = %s\n",
			line.ID, line.Title, line.Quantity, formatNaira(line.Price*int64(line.Quantity)))
	}
	fmt.Fprintf(p.w, "Subtotal: %s\n", formatNaira(totals.Subtotal))
	if totals.DeliveryFee == 0 {
		fmt.Fprintln(p.w, "Delivery: free")
	} else {
		fmt.Fprintf(p.w, "Delivery: %s\n", formatNaira(totals.DeliveryFee))
	}
	fmt.Fprintf(p.w, "Total:    %s\n", formatNaira(totals.Total))
}

func (p *TerminalPresenter) Notify(kind ui.Kind, title, message string) {
	if message == "" {
		fmt.Fprintf(p.w, "[%s] %s\n", kind, title)
		return
	}
	fmt.Fprintf(p.w, "[%s] %s: %s\n", kind, title, message)
}

package console

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/openretail/supermart-sim/internal/model"
	"github.com/openretail/supermart-sim/internal/store"
)

func renderStoreInfo(repo store.Repository) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hours: %s\n", repo.Hours())
	fmt.Fprintf(&b, "Membership fee: $%s\n", repo.MembershipFee().StringFixed(2))
	fmt.Fprintf(&b, "Total employees: %d", len(repo.Employees()))

	return titleStyle.Render(repo.Name()+"'s Information") + "\n" + panelStyle.Render(b.String())
}

// renderAisles lists aisles by index; the index doubles as the selection
// key during checkout.
func renderAisles(storeName string, aisles []model.Aisle) string {
	var b strings.Builder
	for i, aisle := range aisles {
		if aisle.Name == "" {
			continue
		}
		fmt.Fprintf(&b, "Aisle %d: %s\n", i, aisle.Name)
	}

	return titleStyle.Render(storeName+"'s Aisles") + "\n" + panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderItems(index int, aisle *model.Aisle) string {
	var b strings.Builder
	for i, item := range aisle.Items {
		if item.Name == "" {
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n", moneyStyle.Render(item.Name))
		fmt.Fprintf(&b, "Item Quantity: %d\n", item.Quantity)
		fmt.Fprintf(&b, "Regular Price: $%s\n", item.RegularPrice.StringFixed(2))
		fmt.Fprintf(&b, "Member  Price: $%s\n", item.MemberPrice.StringFixed(2))
	}

	header := fmt.Sprintf("Aisle %d: %s", index, aisle.Name)
	return titleStyle.Render(header) + "\n" + panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderFunds(storeName string, funds decimal.Decimal) string {
	body := fmt.Sprintf("Funds: $%s", funds.StringFixed(2))
	return titleStyle.Render(storeName+"'s Total Funds") + "\n" + panelStyle.Render(body)
}

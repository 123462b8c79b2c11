package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/openretail/supermart-sim/internal/checkout"
	"github.com/openretail/supermart-sim/internal/model"
)

// SessionIO drives one checkout session over the interactive console.
type SessionIO struct {
	in        *bufio.Reader
	out       io.Writer
	storeName string
}

var _ checkout.SessionIO = (*SessionIO)(nil)

func NewSessionIO(in *bufio.Reader, out io.Writer, storeName string) *SessionIO {
	return &SessionIO{in: in, out: out, storeName: storeName}
}

func (s *SessionIO) CustomerName() (string, error) {
	for {
		fmt.Fprint(s.out, "Please enter your name: ")
		name, err := readLine(s.in)
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
		fmt.Fprintln(s.out, errorStyle.Render("A name is required."))
	}
}

func (s *SessionIO) OfferMembership(fee decimal.Decimal) (bool, error) {
	fmt.Fprintf(s.out, "Would you like to become a member for $%s (y/n)? ", fee.StringFixed(2))
	answer, err := readLine(s.in)
	if err != nil {
		return false, err
	}
	// Anything other than an explicit yes declines.
	return answer == "y", nil
}

func (s *SessionIO) WelcomeBack(name string) {
	fmt.Fprintf(s.out, "Welcome back %s\n", name)
}

func (s *SessionIO) ShowCartTotal(total decimal.Decimal) {
	fmt.Fprintf(s.out, "\nCurrent cart total: %s\n\n", moneyStyle.Render("$"+total.StringFixed(2)))
}

func (s *SessionIO) ShowAisles(aisles []model.Aisle) {
	fmt.Fprintln(s.out, renderAisles(s.storeName, aisles))
}

func (s *SessionIO) AisleIndex() (int, error) {
	return readInt(s.in, s.out, "Please enter aisle index (-1 to exit): ")
}

func (s *SessionIO) ShowItems(index int, aisle *model.Aisle) {
	fmt.Fprintln(s.out, renderItems(index, aisle))
}

func (s *SessionIO) ItemName() (string, error) {
	fmt.Fprint(s.out, "Enter item to buy: ")
	return readLine(s.in)
}

func (s *SessionIO) Quantity() (int, error) {
	return readInt(s.in, s.out, "Please enter quantity: ")
}

func (s *SessionIO) ReportInvalid(kind checkout.InvalidKind, detail string) {
	var msg string
	switch kind {
	case checkout.InvalidAisle:
		msg = "Invalid Aisle Index. Please try again."
	case checkout.UnknownItem:
		msg = fmt.Sprintf("No item %s found.", detail)
	case checkout.OutOfStock:
		msg = fmt.Sprintf("%s out of stock", detail)
	case checkout.InvalidQuantity:
		msg = "Invalid Quantity."
	default:
		msg = "Invalid selection."
	}
	fmt.Fprintln(s.out, errorStyle.Render(msg))
}

func (s *SessionIO) ShowFinalTotal(total decimal.Decimal) {
	fmt.Fprintf(s.out, "\nYour total is %s\n", moneyStyle.Render("$"+total.StringFixed(2)))
}

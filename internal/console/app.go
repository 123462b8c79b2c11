// Package console renders the interactive menus and adapts the terminal to
// the checkout engine's session port. All business logic lives behind the
// injected usecases; this layer only prompts, parses and prints.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/openretail/supermart-sim/internal/backoffice"
	"github.com/openretail/supermart-sim/internal/checkout"
	"github.com/openretail/supermart-sim/internal/logger"
	"github.com/openretail/supermart-sim/internal/store"
)

var mainChoices = []string{
	"Display supermarket info",
	"Display aisles",
	"Display items in an aisle",
	"Checkout",
	"Employee menu",
}

var employeeChoices = []string{
	"Display total funds",
	"Calculate total sales",
	"Pay employees",
	"Clear members",
}

type App struct {
	repo       store.Repository
	checkout   checkout.UseCase
	backoffice backoffice.UseCase
	logger     logger.ZapLogger
	in         *bufio.Reader
	out        io.Writer
}

func NewApp(repo store.Repository, checkoutUC checkout.UseCase, backofficeUC backoffice.UseCase, log logger.ZapLogger, in *bufio.Reader, out io.Writer) *App {
	return &App{
		repo:       repo,
		checkout:   checkoutUC,
		backoffice: backofficeUC,
		logger:     log,
		in:         in,
		out:        out,
	}
}

// Run drives the main menu until the user exits or input is exhausted.
func (a *App) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(a.out, RenderMenu("\nMain Menu", mainChoices, "Exit program"))
		choice, err := readInt(a.in, a.out, "Enter choice: ")
		if err != nil {
			// Input channel closed; treat like a normal exit.
			return nil
		}

		switch choice {
		case 1:
			fmt.Fprintln(a.out, renderStoreInfo(a.repo))
		case 2:
			fmt.Fprintln(a.out, renderAisles(a.repo.Name(), a.repo.Aisles()))
		case 3:
			if err := a.showAisleItems(); err != nil {
				return nil
			}
		case 4:
			a.runCheckout(ctx)
		case 5:
			if err := a.runEmployeeMenu(ctx); err != nil {
				return nil
			}
		case -1:
			return nil
		default:
			fmt.Fprintln(a.out, errorStyle.Render("Invalid choice."))
		}
	}
}

func (a *App) showAisleItems() error {
	index, err := readInt(a.in, a.out, "Please enter aisle index: ")
	if err != nil {
		return err
	}
	aisle, ok := a.repo.Aisle(index)
	if !ok {
		fmt.Fprintln(a.out, errorStyle.Render("Invalid Aisle Index."))
		return nil
	}
	fmt.Fprintln(a.out, renderItems(index, aisle))
	return nil
}

func (a *App) runCheckout(ctx context.Context) {
	session := NewSessionIO(a.in, a.out, a.repo.Name())
	purchase, err := a.checkout.Checkout(ctx, session)
	if err != nil {
		fmt.Fprintln(a.out, errorStyle.Render("Checkout ended early."))
	}
	// Aborted sessions are recorded too; their zero cost keeps them out
	// of the sales report.
	a.repo.RecordPurchase(purchase)
	a.logger.Debug("purchase recorded",
		zap.String("purchase_id", purchase.ID),
		zap.Bool("aborted", err != nil),
	)
}

func (a *App) runEmployeeMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(a.out, RenderMenu("\nEmployee Menu", employeeChoices, "Exit admin menu"))
		choice, err := readInt(a.in, a.out, "Enter choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			fmt.Fprintln(a.out, renderFunds(a.repo.Name(), a.backoffice.TotalFunds(ctx)))
		case 2:
			report := a.backoffice.TotalSales(ctx)
			fmt.Fprintf(a.out, "Total sales: %s (%d purchases)\n",
				moneyStyle.Render("$"+report.TotalSales.StringFixed(2)), report.Completed)
		case 3:
			result, err := a.backoffice.PayEmployees(ctx)
			if errors.Is(err, backoffice.ErrInsufficientFunds) {
				fmt.Fprintln(a.out, errorStyle.Render("Insufficient funds to pay employees."))
				continue
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Paid %d employees a total of %s\n",
				result.EmployeesPaid, moneyStyle.Render("$"+result.TotalSalaries.StringFixed(2)))
		case 4:
			cleared := a.backoffice.ClearMembers(ctx)
			fmt.Fprintf(a.out, "Cleared %d members.\n", cleared)
		case -1:
			return nil
		default:
			fmt.Fprintln(a.out, errorStyle.Render("Invalid choice."))
		}
	}
}

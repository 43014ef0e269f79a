package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	appstore "github.com/minicart/storefront/internal/application/store"
	"github.com/minicart/storefront/internal/domain/catalog"
	domstore "github.com/minicart/storefront/internal/domain/store"
)

// Menu is the interactive storefront console. It only calls the
// application layer's public operations and never touches product or
// store state directly.
type Menu struct {
	service    *appstore.Service
	placeOrder *appstore.PlaceOrderUseCase
	in         *bufio.Scanner
	out        io.Writer

	heading *color.Color
	success *color.Color
	failure *color.Color
}

func New(service *appstore.Service, placeOrder *appstore.PlaceOrderUseCase, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		service:    service,
		placeOrder: placeOrder,
		in:         bufio.NewScanner(in),
		out:        out,
		heading:    color.New(color.FgCyan, color.Bold),
		success:    color.New(color.FgGreen),
		failure:    color.New(color.FgRed),
	}
}

// Run drives the menu loop until the user quits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	m.heading.Fprintln(m.out, "Welcome to the store!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, strings.Repeat("-", 30))
		fmt.Fprintln(m.out, "1. List all products in store")
		fmt.Fprintln(m.out, "2. Show total amount in store")
		fmt.Fprintln(m.out, "3. Make an order")
		fmt.Fprintln(m.out, "4. Quit")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			m.listProducts(ctx)
		case "2":
			fmt.Fprintf(m.out, "Total amount in store: %d items.\n", m.service.TotalQuantity(ctx))
		case "3":
			m.makeOrder(ctx)
		case "4":
			return nil
		default:
			m.failure.Fprintln(m.out, "Invalid choice, please try again.")
		}
	}
}

func (m *Menu) listProducts(ctx context.Context) {
	products := m.service.ActiveProducts(ctx)
	if len(products) == 0 {
		fmt.Fprintln(m.out, "No active products.")
		return
	}
	for i, p := range products {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, p.Describe())
	}
}

func (m *Menu) makeOrder(ctx context.Context) {
	var lines []domstore.Line

	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "Enter product number to buy (or type 'done' to finish):")
		products := m.service.ActiveProducts(ctx)
		for i, p := range products {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, p.Describe())
		}

		choice, ok := m.prompt("Your choice: ")
		if !ok {
			break
		}
		if strings.EqualFold(choice, "done") {
			break
		}

		index, err := strconv.Atoi(choice)
		if err != nil || index < 1 || index > len(products) {
			m.failure.Fprintln(m.out, "Invalid product number. Try again.")
			continue
		}
		product := products[index-1]

		quantity, ok := m.promptQuantity(product)
		if !ok {
			continue
		}
		lines = append(lines, domstore.Line{Product: product, Quantity: quantity})
	}

	if len(lines) == 0 {
		return
	}

	result, err := m.placeOrder.Execute(ctx, appstore.PlaceOrderInput{Lines: lines})
	if err != nil {
		m.failure.Fprintf(m.out, "Order failed: %v\n", err)
		return
	}
	m.success.Fprintf(m.out, "Order placed successfully! Total cost: $%.2f (receipt %s)\n",
		result.Total, result.ReceiptID)
}

func (m *Menu) promptQuantity(product catalog.Product) (int, bool) {
	raw, ok := m.prompt(fmt.Sprintf("Enter quantity for %s: ", product.Name()))
	if !ok {
		return 0, false
	}
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		m.failure.Fprintln(m.out, "Invalid input. Please enter a number.")
		return 0, false
	}
	return quantity, true
}

// prompt reads one trimmed line; ok is false when input has ended.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

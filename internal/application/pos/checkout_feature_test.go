package pos_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	invapp "backoffice/internal/application/inventory"
	posapp "backoffice/internal/application/pos"
	salesapp "backoffice/internal/application/sales"
	"backoffice/internal/domain/inventory"
	jsoncodec "backoffice/internal/infrastructure/encoding/json"
	"backoffice/internal/infrastructure/messaging/inproc"
	"backoffice/internal/infrastructure/persistence/memory"
	"backoffice/pkg/logger"
)

type tableSource []inventory.Item

func (s tableSource) FetchInventory(context.Context) ([]inventory.Item, error) {
	return s, nil
}

type checkoutTestContext struct {
	catalog  tableSource
	ledger   *invapp.Service
	sales    *salesapp.Service
	register *posapp.Service
	receipt  *posapp.Receipt
	addErr   error
	err      error
}

func (c *checkoutTestContext) reset() {
	*c = checkoutTestContext{}
}

func (c *checkoutTestContext) theLedgerHolds(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		stock, err := strconv.Atoi(row.Cells[3].Value)
		if err != nil {
			return err
		}
		price, err := decimal.NewFromString(row.Cells[4].Value)
		if err != nil {
			return err
		}
		c.catalog = append(c.catalog, inventory.Item{
			SKU:      row.Cells[0].Value,
			Name:     row.Cells[1].Value,
			Category: row.Cells[2].Value,
			Stock:    stock,
			Price:    price,
		})
	}
	return nil
}

func (c *checkoutTestContext) theRegisterRunsIn(mode string) error {
	log := logger.NewNop()
	ctx := context.Background()

	c.ledger = invapp.NewService(memory.NewInventoryRepository(), c.catalog, inventory.DefaultLowStockThreshold, log)
	if _, err := c.ledger.Load(ctx); err != nil {
		return err
	}

	bus := inproc.NewBus(log)
	c.sales = salesapp.NewService(memory.NewOrderRepository(), bus, jsoncodec.NewOrderCodec(), nil, log)
	bus.Subscribe(c.sales.HandleMessage)

	c.register = posapp.NewService(c.ledger, c.sales, posapp.Config{
		StrictStock:     mode == "strict",
		DefaultCustomer: "عميل نقدي",
	}, log)
	return nil
}

func (c *checkoutTestContext) iAddToTheCart(sku string) error {
	_, c.addErr = c.register.Add(context.Background(), sku)
	return nil
}

func (c *checkoutTestContext) iRemoveFromTheCart(sku string) error {
	c.register.Remove(sku)
	return nil
}

func (c *checkoutTestContext) iCheckOut() error {
	c.receipt, c.err = c.register.Checkout(context.Background(), posapp.CheckoutCommand{})
	return nil
}

func (c *checkoutTestContext) theCartHasLines(n int) error {
	if got := len(c.register.Lines()); got != n {
		return fmt.Errorf("expected %d lines, got %d", n, got)
	}
	return nil
}

func (c *checkoutTestContext) theCartTotalIs(want string) error {
	return equalAmount("cart total", c.register.Total(), want)
}

func (c *checkoutTestContext) theReceiptTotalIs(want string) error {
	if c.err != nil {
		return fmt.Errorf("checkout failed: %w", c.err)
	}
	return equalAmount("receipt total", c.receipt.Total, want)
}

func (c *checkoutTestContext) theCheckoutFailsWith(msg string) error {
	if c.err == nil || !strings.Contains(c.err.Error(), msg) {
		return fmt.Errorf("expected checkout error containing %q, got %v", msg, c.err)
	}
	return nil
}

func (c *checkoutTestContext) theLastAddFailsWith(msg string) error {
	if c.addErr == nil || !strings.Contains(c.addErr.Error(), msg) {
		return fmt.Errorf("expected add error containing %q, got %v", msg, c.addErr)
	}
	return nil
}

func (c *checkoutTestContext) deliveredSalesAreRecorded(n int) error {
	orders, err := c.sales.List(context.Background(), salesapp.OrderFilter{Status: "Delivered"})
	if err != nil {
		return err
	}
	if len(orders) != n {
		return fmt.Errorf("expected %d delivered sales, got %d", n, len(orders))
	}
	return nil
}

func (c *checkoutTestContext) skuHasInStock(sku string, n int) error {
	item, err := c.ledger.Get(context.Background(), sku)
	if err != nil {
		return err
	}
	if item.Stock != n {
		return fmt.Errorf("expected %s stock %d, got %d", sku, n, item.Stock)
	}
	return nil
}

func equalAmount(what string, got decimal.Decimal, want string) error {
	w, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if !got.Equal(w) {
		return fmt.Errorf("expected %s %s, got %s", what, want, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the ledger holds:$`, tc.theLedgerHolds)
	ctx.Step(`^the register runs in (permissive|strict) stock mode$`, tc.theRegisterRunsIn)

	// When steps
	ctx.Step(`^I add "([^"]*)" to the cart$`, tc.iAddToTheCart)
	ctx.Step(`^I remove "([^"]*)" from the cart$`, tc.iRemoveFromTheCart)
	ctx.Step(`^I check out$`, tc.iCheckOut)

	// Then steps
	ctx.Step(`^the cart has (\d+) lines$`, tc.theCartHasLines)
	ctx.Step(`^the cart total is "([^"]*)"$`, tc.theCartTotalIs)
	ctx.Step(`^the receipt total is "([^"]*)"$`, tc.theReceiptTotalIs)
	ctx.Step(`^the checkout fails with "([^"]*)"$`, tc.theCheckoutFailsWith)
	ctx.Step(`^the last add fails with "([^"]*)"$`, tc.theLastAddFailsWith)
	ctx.Step(`^(\d+) delivered sales? (?:is|are) recorded$`, tc.deliveredSalesAreRecorded)
	ctx.Step(`^"([^"]*)" has (\d+) in stock$`, tc.skuHasInStock)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/checkout.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

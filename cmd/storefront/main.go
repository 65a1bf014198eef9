package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NoroffFEU/online-shop/internal/app"
	"github.com/NoroffFEU/online-shop/internal/app/config"
	"github.com/NoroffFEU/online-shop/internal/platform/money"
	"github.com/NoroffFEU/online-shop/internal/query"
	"github.com/NoroffFEU/online-shop/internal/validation"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg, func(term string) {
		fmt.Printf("  !! No matches for %q\n", term)
	})
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, application); err != nil {
		application.Logger().Errorf("session ended with error: %v", err)
	}

	if err := application.Close(context.Background()); err != nil {
		application.Logger().Errorf("failed to close session: %v", err)
	}
}

// run walks one storefront session end to end: browse, search, open a
// product, fill the cart and check out.
func run(ctx context.Context, a *app.App) error {
	fmt.Println("== Product list ==")
	result, err := a.Listing.Browse(ctx, query.State{Page: 1})
	if err != nil {
		return err
	}
	printPage(result)

	fmt.Println("== Search: perfume, cheapest first ==")
	state := query.State{Term: "perfume", Sort: query.SortPriceAsc, Page: 1}
	fmt.Printf("share link: /products?%s\n", state.Values().Encode())
	result, err = a.Listing.Browse(ctx, state)
	if err != nil {
		return err
	}
	printPage(result)
	for _, s := range result.Suggestions {
		fmt.Printf("  suggest: %s (%s)\n", s.Title, money.FormatNOK(s.Price))
	}

	if len(result.Items) == 0 {
		fmt.Println("nothing to buy, leaving")
		return nil
	}

	fmt.Println("== Product detail ==")
	product, err := a.Catalog.GetProduct(ctx, result.Items[0].ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s — %s", product.Title, money.FormatNOK(product.EffectivePrice()))
	if product.HasDiscount() {
		fmt.Printf(" (-%d%%)", product.DiscountPercent())
	}
	fmt.Println()
	for _, review := range product.Reviews {
		fmt.Printf("  review by %s: %d/5 — %s\n", review.Username, review.Rating, review.Description)
	}

	fmt.Println("== Cart ==")
	a.Cart.AddProduct(product, 1)
	a.Cart.SetQuantity(product.ID, 2)
	for _, item := range a.Cart.Items() {
		fmt.Printf("  %s x%d — %s\n", item.Title, item.Quantity, money.FormatNOK(item.LineTotal()))
	}
	fmt.Printf("subtotal: %s (%d items)\n", money.FormatNOK(a.Cart.TotalCost()), a.Cart.TotalQty())

	fmt.Println("== Checkout ==")
	form := a.Checkout.Form()
	form.Set(validation.FieldFullName, "Kari Nordmann")
	form.Set(validation.FieldEmail, "kari@example.no")
	form.Set(validation.FieldPhone, "+47 912 34 567")
	form.Set(validation.FieldAddress, "Storgata 1, 0155 Oslo")

	confirmation, fieldErrors, err := a.Checkout.Submit(ctx)
	if err != nil {
		return err
	}
	if len(fieldErrors) > 0 {
		for field, msg := range fieldErrors {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return nil
	}

	fmt.Printf("Order confirmed: %s — %s for %d items\n",
		confirmation.Reference, money.FormatNOK(confirmation.TotalCost), confirmation.TotalQty)
	return nil
}

func printPage(result query.Result) {
	if result.NoProducts {
		fmt.Println("  (no products)")
		return
	}
	for _, p := range result.Items {
		line := fmt.Sprintf("  %s — %s", p.Title, money.FormatNOK(p.EffectivePrice()))
		if p.HasDiscount() {
			line += fmt.Sprintf(" (was %s)", money.FormatNOK(p.Price))
		}
		fmt.Println(line)
	}
	info := result.PageInfo
	fmt.Printf("page %d of %d (%d products)", info.Page, info.TotalPages, info.TotalItems)
	for _, p := range query.PageWindow(info.Page, info.TotalPages, 7) {
		if p == query.Ellipsis {
			fmt.Print(" …")
		} else {
			fmt.Printf(" [%d]", p)
		}
	}
	fmt.Println()
}

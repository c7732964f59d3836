package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"pos/pkg/domain/model"
	"pos/pkg/domain/service"
	"pos/pkg/infrastructure/logging"
	"pos/pkg/infrastructure/memory"
)

type config struct {
	LogLevel string `envconfig:"POS_LOG_LEVEL" default:"info"`
	LogJSON  bool   `envconfig:"POS_LOG_JSON" default:"true"`
}

func main() {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.WithError(err).Fatal("Failed to read configuration")
	}

	logger := log.New()
	if cfg.LogJSON {
		logger.SetFormatter(&log.JSONFormatter{})
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Fatal("Invalid log level")
	}
	logger.SetLevel(level)
	logger.SetOutput(os.Stderr)

	app := &cli.App{
		Name:  "pos",
		Usage: "point-of-sale checkout demo",
		Commands: []*cli.Command{
			checkoutCommand(logger),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

func checkoutCommand(logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:  "checkout",
		Usage: "seed a demo catalog, fill a cart and run checkout",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "customer", Value: "John", Usage: "customer name"},
			&cli.Float64Flag{Name: "balance", Value: 1000, Usage: "customer starting balance"},
			&cli.StringSliceFlag{
				Name:  "item",
				Value: cli.NewStringSlice("Cheese:2", "Biscuits:1", "TV:1"),
				Usage: "cart item as name:quantity, repeatable",
			},
		},
		Action: func(c *cli.Context) error {
			return runCheckout(logger, c.String("customer"), c.Float64("balance"), c.StringSlice("item"))
		},
	}
}

func runCheckout(logger *log.Logger, customerName string, balance float64, items []string) error {
	products := memory.NewProductRepository()
	customers := memory.NewCustomerRepository()
	dispatcher := logging.NewDispatcher(logger)

	catalog, err := seedCatalog(products)
	if err != nil {
		return err
	}

	customer, err := model.NewCustomer(customerName, decimal.NewFromFloat(balance))
	if err != nil {
		return err
	}
	if err := customers.Create(customer); err != nil {
		return err
	}

	cartService := service.NewCartService(products, dispatcher)
	cart := model.NewCart()
	for _, spec := range items {
		name, qty, err := parseItem(spec)
		if err != nil {
			return err
		}
		productID, ok := catalog[name]
		if !ok {
			return fmt.Errorf("unknown product %q, catalog has: Cheese, Biscuits, TV, ScratchCard", name)
		}
		if err := cartService.AddItem(cart, productID, qty); err != nil {
			return err
		}
	}

	checkout := service.NewCheckoutService(products, customers, dispatcher, os.Stdout)
	_, err = checkout.Checkout(customer.ID, cart)
	return err
}

// seedCatalog fills the repository with one product per kind and
// returns a name -> ID index for flag lookup.
func seedCatalog(products *memory.ProductRepository) (map[string]uuid.UUID, error) {
	expiry := time.Now().Add(48 * time.Hour)

	cheese, err := model.NewCheese("Cheese", decimal.NewFromInt(100), 10, expiry, decimal.NewFromFloat(0.4))
	if err != nil {
		return nil, err
	}
	biscuits, err := model.NewBiscuits("Biscuits", decimal.NewFromInt(150), 5, expiry, decimal.NewFromFloat(0.7))
	if err != nil {
		return nil, err
	}
	tv, err := model.NewTV("TV", decimal.NewFromInt(500), 3, decimal.NewFromInt(5))
	if err != nil {
		return nil, err
	}
	card, err := model.NewScratchCard("ScratchCard", decimal.NewFromInt(50), 20)
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]uuid.UUID)
	for _, product := range []*model.Product{cheese, biscuits, tv, card} {
		if err := products.Create(product); err != nil {
			return nil, err
		}
		catalog[product.Name] = product.ID
	}
	return catalog, nil
}

func parseItem(spec string) (string, int, error) {
	name, rawQty, ok := strings.Cut(spec, ":")
	if !ok {
		return "", 0, fmt.Errorf("invalid item %q, expected name:quantity", spec)
	}
	qty, err := strconv.Atoi(rawQty)
	if err != nil {
		return "", 0, fmt.Errorf("invalid quantity in %q: %w", spec, err)
	}
	return name, qty, nil
}

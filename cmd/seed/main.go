// Command seed fills the document store with demo products and orders for a
// given owner uid. Pass -purge to wipe both collections first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/store"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/docstore"
	"storefront/internal/infra/persistence/firestore"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	categoryPool = []string{"Electronics", "Office", "Gaming", "Home", "Accessories", "Audio"}
	featurePool  = []string{
		"lightweight", "wireless", "fast", "silent", "premium",
		"budget", "eco", "portable", "durable", "rgb",
	}
	productNamePool = []string{"Keyboard", "Laptop", "Mouse", "Headphones", "Monitor", "Chair", "Router", "SSD"}
	descriptionPool = []string{"best value", "good for work", "good for gaming", "compact", "fast shipping"}
	statusPool      = []string{"processing", "shipped", "delivered", "cancelled"}
	cityPool        = []string{"Bucharest", "Cluj", "Iasi", "Timisoara", "Constanta"}
	streetPool      = []string{"Iuliu Maniu", "Unirii", "Victoriei", "Aviatorilor", "Dorobanti"}
)

func main() {
	ownerUID := flag.String("owner", "", "uid that will own the seeded documents (required)")
	productCount := flag.Int("products", 50, "number of products to create")
	orderCount := flag.Int("orders", 50, "number of orders to create")
	purge := flag.Bool("purge", false, "delete all existing products and orders first")
	flag.Parse()

	if *ownerUID == "" {
		fmt.Fprintln(os.Stderr, "missing -owner: pass the uid the seeded documents should belong to")
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	docStore, cleanup, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open document store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := run(ctx, docStore, logger, *ownerUID, *productCount, *orderCount, *purge); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seed done", "products", *productCount, "orders", *orderCount)
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.DocumentStore, func(), error) {
	if cfg.Store.Provider == "memory" {
		logger.Warn("seeding the in-memory store; data is lost when this process exits")

		return memory.New(), func() {}, nil
	}

	client, err := firestore.New(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create firestore store")
	}

	return client, func() { _ = client.Close() }, nil
}

func run(ctx context.Context, docStore store.DocumentStore, logger *slog.Logger, ownerUID string, productCount, orderCount int, purge bool) error {
	if purge {
		for _, name := range []string{"orders", "products"} {
			deleted, err := purgeCollection(ctx, docStore, name)
			if err != nil {
				return errors.Wrapf(err, "failed to purge %s", name)
			}
			logger.Info("purged collection", "collection", name, "deleted", deleted)
		}
	}

	products := docstore.NewProductRepository(docStore)
	orders := docstore.NewOrderRepository(docStore)

	created := make([]*entity.Product, 0, productCount)
	for i := 1; i <= productCount; i++ {
		product, err := products.Create(ctx, makeProduct(ownerUID, i))
		if err != nil {
			return errors.Wrap(err, "failed to create product")
		}
		created = append(created, product)
	}
	logger.Info("created products", "count", len(created))

	for i := 0; i < orderCount; i++ {
		if _, err := orders.Create(ctx, makeOrder(ownerUID, created)); err != nil {
			return errors.Wrap(err, "failed to create order")
		}
	}
	logger.Info("created orders", "count", orderCount)

	return nil
}

func purgeCollection(ctx context.Context, docStore store.DocumentStore, name string) (int, error) {
	col := docStore.Collection(name)

	docs, err := col.Query(ctx, store.Query{})
	if err != nil {
		return 0, err
	}

	for _, doc := range docs {
		if err := col.Delete(ctx, doc.ID); err != nil {
			return 0, err
		}
	}

	return len(docs), nil
}

func makeProduct(ownerUID string, n int) *entity.Product {
	name := fmt.Sprintf("%s %d", pick(productNamePool), n)
	total := int64(rand.Intn(201))

	features := make([]string, rand.Intn(3)+1)
	for i := range features {
		features[i] = pick(featurePool)
	}

	return &entity.Product{
		Name:        name,
		Slug:        validation.Slugify(name),
		Price:       float64(rand.Intn(198000)+1999) / 100,
		Description: pick(descriptionPool),
		OwnerID:     ownerUID,
		Category: entity.Category{
			ID:       uuid.NewString(),
			Name:     pick(categoryPool),
			Features: features,
		},
		Inventory: entity.Inventory{
			Total: total,
			Locations: []entity.StockLocation{
				{Warehouse: pick(cityPool), Quantity: rand.Int63n(total + 1)},
				{Warehouse: pick(cityPool), Quantity: rand.Int63n(total + 1)},
			},
		},
		Metadata: entity.RecordMetadata{CreatedBy: ownerUID},
	}
}

func makeOrder(ownerUID string, products []*entity.Product) *entity.Order {
	lines := make([]entity.OrderLine, rand.Intn(3)+1)
	for i := range lines {
		p := products[rand.Intn(len(products))]
		lines[i] = entity.OrderLine{
			ProductID:       p.ID,
			ProductName:     p.Name,
			Quantity:        int64(rand.Intn(5) + 1),
			PriceAtPurchase: p.Price,
			ProductSnapshot: map[string]any{
				"name":         p.Name,
				"price":        p.Price,
				"categoryName": p.Category.Name,
			},
		}
	}

	tracking := ""
	if rand.Intn(2) == 0 {
		tracking = fmt.Sprintf("TRK-%06d", rand.Intn(900000)+100000)
	}

	return &entity.Order{
		UserID:   ownerUID,
		Products: lines,
		Status:   pick(statusPool),
		Shipping: entity.ShippingInfo{
			Address:  fmt.Sprintf("%s %d", pick(streetPool), rand.Intn(200)+1),
			City:     pick(cityPool),
			Tracking: tracking,
		},
	}
}

func pick(pool []string) string {
	return pool[rand.Intn(len(pool))]
}

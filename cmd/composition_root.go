package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fooddelivery/internal/adapters/out/authclient"
	"fooddelivery/internal/adapters/out/catalogclient"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/paymentclient"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	verifier  ports.TokenVerifier
	catalog   ports.RestaurantCatalog
	payments  ports.PaymentGateway
	publisher ports.OrderEventPublisher

	deliveryFee   kernel.Money
	pendingMaxAge time.Duration
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	feeCents, err := strconv.ParseInt(config.DeliveryFeeCents, 10, 64)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("parse DELIVERY_FEE_CENTS: %w", err)
	}
	deliveryFee, err := kernel.NewMoney(feeCents)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid DELIVERY_FEE_CENTS: %w", err)
	}

	pendingMaxAge, err := time.ParseDuration(config.PendingMaxAge)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("parse PENDING_MAX_AGE: %w", err)
	}

	verifier, err := authclient.NewClient(config.AuthServiceURL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("auth client: %w", err)
	}

	catalog, err := catalogclient.NewClient(config.CatalogServiceURL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("catalog client: %w", err)
	}

	// With no payment service configured every card charge approves, which
	// keeps local development off the network.
	var payments ports.PaymentGateway = paymentclient.NewAlwaysApprove()
	if config.PaymentServiceURL != "" {
		payments, err = paymentclient.NewClient(config.PaymentServiceURL)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("payment client: %w", err)
		}
	}

	var publisher ports.OrderEventPublisher = kafka.NewNoopPublisher()
	if config.KafkaHost != "" {
		publisher = kafka.NewPublisher([]string{config.KafkaHost}, config.KafkaOrderChangedTopic)
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:        logger,
		verifier:      verifier,
		catalog:       catalog,
		payments:      payments,
		publisher:     publisher,
		deliveryFee:   deliveryFee,
		pendingMaxAge: pendingMaxAge,
	}, nil
}

func (c *CompositionRoot) TokenVerifier() ports.TokenVerifier {
	return c.verifier
}

func (c *CompositionRoot) RestaurantCatalog() ports.RestaurantCatalog {
	return c.catalog
}

func (c *CompositionRoot) PendingMaxAge() time.Duration {
	return c.pendingMaxAge
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(), c.catalog, c.payments, c.deliveryFee, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateExpireStalePendingCommandHandler() commands.ExpireStalePendingCommandHandler {
	return commands.NewExpireStalePendingCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetRestaurantOrdersQueryHandler() queries.GetRestaurantOrdersQueryHandler {
	return queries.NewGetRestaurantOrdersQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetCourierOrdersQueryHandler() queries.GetCourierOrdersQueryHandler {
	return queries.NewGetCourierOrdersQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// orderRepository hands query handlers a repository outside any transaction;
// reads never need one.
func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

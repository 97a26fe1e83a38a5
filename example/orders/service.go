package orders

import (
	"context"

	"github.com/kleinwareio/liketype/errors"
	"github.com/kleinwareio/liketype/logging"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks -mock_names=OrderService=MockOrderService,OrderPrinter=MockOrderPrinter

// OrderService looks up the orders of a customer.
type OrderService interface {
	GetOrders(ctx context.Context, customerID CustomerID) (Orders, error)
}

// OrderPrinter prints a group of orders.
type OrderPrinter interface {
	PrintOrders(ctx context.Context, orders Orders) error
}

// OrderPrintingService prints every order of a customer.
type OrderPrintingService struct {
	orderService OrderService
	orderPrinter OrderPrinter
	logger       *logging.Logger
}

// NewOrderPrintingService wires the service. A nil logger discards output.
func NewOrderPrintingService(orderService OrderService, orderPrinter OrderPrinter, logger *logging.Logger) *OrderPrintingService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &OrderPrintingService{
		orderService: orderService,
		orderPrinter: orderPrinter,
		logger:       logger,
	}
}

// PrintOrders fetches the orders of customerID and hands them to the printer.
func (s *OrderPrintingService) PrintOrders(ctx context.Context, customerID CustomerID) error {
	if customerID.IsNil() {
		return errors.InvalidArgument("customerID", "customer id is not set")
	}

	orders, err := s.orderService.GetOrders(ctx, customerID)
	if err != nil {
		s.logger.Error(ctx, "cannot load orders", logging.Wrapper("customer", customerID), logging.Error(err))
		return errors.Wrapf(err, "loading orders of %s", customerID)
	}

	if err := s.orderPrinter.PrintOrders(ctx, orders); err != nil {
		s.logger.Error(ctx, "cannot print orders", logging.Stringer("orders", orders), logging.Error(err))
		return errors.Wrap(err, "printing orders")
	}

	s.logger.Info(ctx, "orders printed",
		logging.Wrapper("customer", customerID),
		logging.Int("count", orders.Count()))
	return nil
}

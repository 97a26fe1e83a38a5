package orders_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/kleinwareio/liketype"
	"github.com/kleinwareio/liketype/example/orders"
	"github.com/kleinwareio/liketype/example/orders/mocks"
	"github.com/kleinwareio/liketype/logging"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type likeMatcher struct{ want any }

// equalTo matches arguments by wrapper equality instead of deep equality.
func equalTo(want any) gomock.Matcher {
	return likeMatcher{want: want}
}

func (m likeMatcher) Matches(x any) bool {
	return liketype.Equal(m.want, x)
}

func (m likeMatcher) String() string {
	return fmt.Sprintf("is equal to %v", m.want)
}

var _ = Describe("OrderPrintingService", func() {
	var ctrl *gomock.Controller
	var mockService *mocks.MockOrderService
	var mockPrinter *mocks.MockOrderPrinter
	var logs *bytes.Buffer
	var service *orders.OrderPrintingService
	var ctx context.Context

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mocks.NewMockOrderService(ctrl)
		mockPrinter = mocks.NewMockOrderPrinter(ctrl)
		logs = &bytes.Buffer{}
		logger, err := logging.New(logging.Config{ServiceName: "orders", MinLevel: logging.LevelInfo, Output: logs})
		Expect(err).NotTo(HaveOccurred())
		service = orders.NewOrderPrintingService(mockService, mockPrinter, logger)
		ctx = context.TODO()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("PrintOrders", func() {
		var customerID orders.CustomerID
		var orderIDs orders.Orders

		BeforeEach(func() {
			customerID = orders.GenerateCustomerID()
			orderIDs = orders.NewOrders(orders.NewOrderID(1), orders.NewOrderID(2), orders.NewOrderID(3))
		})

		When("the customer has orders", func() {
			It("should send them to the printer", func() {
				lookup, err := orders.NewCustomerID(customerID.Value())
				Expect(err).NotTo(HaveOccurred())

				mockService.EXPECT().GetOrders(gomock.Any(), equalTo(lookup)).Return(orderIDs, nil).Times(1)
				mockPrinter.EXPECT().PrintOrders(gomock.Any(), equalTo(orderIDs)).Return(nil).Times(1)

				Expect(service.PrintOrders(ctx, customerID)).To(Succeed())
				Expect(logs.String()).To(ContainSubstring(`"message":"orders printed"`))
				Expect(logs.String()).To(ContainSubstring(`"count":3`))
				Expect(logs.String()).To(ContainSubstring(`"customer":{"type":"CustomerID","value":"` + customerID.Value() + `"}`))
			})
		})

		When("the order service fails", func() {
			It("should not print and return the error", func() {
				cause := errors.New("service down")
				mockService.EXPECT().GetOrders(gomock.Any(), equalTo(customerID)).Return(orders.Orders{}, cause)
				mockPrinter.EXPECT().PrintOrders(gomock.Any(), gomock.Any()).Times(0)

				err := service.PrintOrders(ctx, customerID)

				Expect(err).To(MatchError(ContainSubstring("service down")))
				Expect(errors.Is(err, cause)).To(BeTrue())
				Expect(logs.String()).To(ContainSubstring("cannot load orders"))
			})
		})

		When("the printer fails", func() {
			It("should return the error", func() {
				mockService.EXPECT().GetOrders(gomock.Any(), gomock.Any()).Return(orderIDs, nil)
				mockPrinter.EXPECT().PrintOrders(gomock.Any(), gomock.Any()).Return(errors.New("out of paper"))

				err := service.PrintOrders(ctx, customerID)

				Expect(err).To(MatchError(ContainSubstring("out of paper")))
			})
		})

		When("the customer id is not set", func() {
			It("should reject the call", func() {
				err := service.PrintOrders(ctx, orders.CustomerID{})

				Expect(err).To(MatchError(ContainSubstring("customer id is not set")))
			})
		})
	})
})

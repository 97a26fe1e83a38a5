package orders_test

import (
	"encoding/json"

	"github.com/kleinwareio/liketype"
	"github.com/kleinwareio/liketype/example/orders"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Wrapper types", func() {
	Context("CustomerID", func() {
		It("should compare by value", func() {
			customerID, _ := orders.NewCustomerID("cust-001")
			other, _ := orders.NewCustomerID("cust-002")
			copied, _ := orders.NewCustomerID("cust-001")

			Expect(customerID.Value()).To(Equal("cust-001"))
			Expect(customerID.Equal(other)).To(BeFalse())
			Expect(liketype.NotEqual(customerID, other)).To(BeTrue())
			Expect(customerID.Equal(copied)).To(BeTrue())
			Expect(customerID.Hash()).To(Equal(copied.Hash()))
		})

		It("should generate distinct identifiers", func() {
			Expect(orders.GenerateCustomerID().Equal(orders.GenerateCustomerID())).To(BeFalse())
			Expect(orders.GenerateCustomerID().Value()).To(HavePrefix("cust-"))
		})

		It("should be named after its Go type", func() {
			customerID, _ := orders.NewCustomerID("cust-001")
			Expect(customerID.TypeName()).To(Equal("CustomerID"))
		})
	})

	Context("Orders", func() {
		var first orders.Orders

		BeforeEach(func() {
			first = orders.NewOrders(orders.NewOrderID(1), orders.NewOrderID(2), orders.NewOrderID(3))
		})

		It("should be equal when holding the same ids in the same order", func() {
			copied := orders.NewOrders(orders.NewOrderID(1), orders.NewOrderID(2), orders.NewOrderID(3))
			Expect(first.Equal(copied)).To(BeTrue())
			Expect(first.Hash()).To(Equal(copied.Hash()))
		})

		It("should differ when the order differs", func() {
			reversed := orders.NewOrders(orders.NewOrderID(3), orders.NewOrderID(2), orders.NewOrderID(1))
			Expect(first.Equal(reversed)).To(BeFalse())
		})

		It("should render the count by default", func() {
			Expect(first.String()).To(Equal("Orders[3]"))
			Expect(first.Render(liketype.AllValuesSingleLine)).To(Equal("Orders[3] = { '1', '2', '3' }"))
		})
	})

	Context("JSON", func() {
		type order struct {
			Customer orders.CustomerID `json:"customer"`
			IDs      orders.Orders     `json:"ids"`
		}

		It("should round trip through bare values", func() {
			customerID, _ := orders.NewCustomerID("cust-007")
			original := order{
				Customer: customerID,
				IDs:      orders.NewOrders(orders.NewOrderID(4), orders.NewOrderID(5)),
			}

			data, err := json.Marshal(original)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`{"customer":"cust-007","ids":[4,5]}`))

			var decoded order
			Expect(json.Unmarshal(data, &decoded)).To(Succeed())
			Expect(decoded.Customer.Equal(original.Customer)).To(BeTrue())
			Expect(decoded.IDs.Equal(original.IDs)).To(BeTrue())
		})

		It("should reject absent identifiers", func() {
			var decoded order
			Expect(json.Unmarshal([]byte(`{"customer":null,"ids":[]}`), &decoded)).NotTo(Succeed())
			Expect(json.Unmarshal([]byte(`{"customer":"c","ids":[1,null]}`), &decoded)).NotTo(Succeed())
		})
	})
})

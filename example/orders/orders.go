// Package orders shows wrapper types in a small order printing workflow.
package orders

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/kleinwareio/liketype"
	"github.com/kleinwareio/liketype/codec"
)

// CustomerID identifies a customer.
type CustomerID struct{ liketype.Like[string] }

// OrderID identifies an order.
type OrderID struct{ liketype.Like[int] }

// Orders is an ordered group of order identifiers.
type Orders struct{ liketype.Seq[OrderID] }

var (
	customerIDKind = liketype.DefineFor[CustomerID, string]()
	orderIDKind    = liketype.DefineFor[OrderID, int]()
	ordersKind     = liketype.DefineSeqFor[Orders, OrderID]().
			WithElementNull(func(id OrderID) bool { return id.IsNil() || id.IsNull() })
)

// NewCustomerID wraps value.
func NewCustomerID(value string) (CustomerID, error) {
	like, err := customerIDKind.New(value)
	return CustomerID{like}, err
}

// GenerateCustomerID returns a fresh random CustomerID.
func GenerateCustomerID() CustomerID {
	return CustomerID{customerIDKind.MustNew("cust-" + uuid.NewString())}
}

// NewOrderID wraps value.
func NewOrderID(value int) OrderID {
	return OrderID{orderIDKind.MustNew(value)}
}

// NewOrders groups ids in the given order.
func NewOrders(ids ...OrderID) Orders {
	return Orders{ordersKind.MustOf(ids...)}
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CustomerID) UnmarshalJSON(data []byte) error {
	like, err := customerIDKind.Decode(codec.NewJSONCodec(), data)
	if err != nil {
		return err
	}
	c.Like = like
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OrderID) UnmarshalJSON(data []byte) error {
	like, err := orderIDKind.Decode(codec.NewJSONCodec(), data)
	if err != nil {
		return err
	}
	o.Like = like
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Orders) UnmarshalJSON(data []byte) error {
	var ids []OrderID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	seq, err := ordersKind.New(ids)
	if err != nil {
		return err
	}
	o.Seq = seq
	return nil
}

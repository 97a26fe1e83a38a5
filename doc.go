// Package liketype turns primitive values into distinct, named domain types.
//
// A domain type is declared by embedding a Like[T] (or a Seq[E] for ordered
// collections) and defining a package-level Kind that acts as its type tag:
//
//	type CustomerID struct{ liketype.Like[string] }
//
//	var customerIDKind = liketype.DefineFor[CustomerID, string]()
//
//	func NewCustomerID(value string) (CustomerID, error) {
//	    like, err := customerIDKind.New(value)
//	    return CustomerID{like}, err
//	}
//
// Wrappers compare by value rather than identity, but only against wrappers
// built from the same Kind: a CustomerID and an OrderNumber holding the same
// string are never equal. Hash is consistent with Equal. Value returns the
// wrapped value wherever the raw type is needed.
//
// Absent values are rejected with an error matching ErrMissingValue unless the Kind
// allows null. A zero Like (one never produced by a Kind) behaves as an
// absent handle: it equals only other absent handles.
//
// Sequences copy their input eagerly and compare element by element, in
// order. Their String output is controlled by a RenderStrategy:
//
//	Orders[3]
//	Orders[3] = { '1', '2', '3' }
//	Orders[3] = {
//	  '1',
//	  '2',
//	  '3' }
//
// Wrappers are immutable once constructed and safe for concurrent reads.
package liketype

package repository

import "slices"

type idSet map[int64]struct{}

// secondaryIndex maps product and customer ids to the ids of the records
// currently referencing them. Empty sets are removed.
type secondaryIndex struct {
	products  map[string]idSet
	customers map[string]idSet
}

func newSecondaryIndex() *secondaryIndex {
	return &secondaryIndex{
		products:  make(map[string]idSet),
		customers: make(map[string]idSet),
	}
}

func (x *secondaryIndex) add(id int64, productID, customerID string) {
	addToSet(x.products, productID, id)
	addToSet(x.customers, customerID, id)
}

// remove drops id from both sets and reports whether each key still has records
func (x *secondaryIndex) remove(id int64, productID, customerID string) (productLive, customerLive bool) {
	return removeFromSet(x.products, productID, id), removeFromSet(x.customers, customerID, id)
}

func addToSet(sets map[string]idSet, key string, id int64) {
	set, ok := sets[key]
	if !ok {
		set = make(idSet)
		sets[key] = set
	}
	set[id] = struct{}{}
}

func removeFromSet(sets map[string]idSet, key string, id int64) bool {
	set, ok := sets[key]
	if !ok {
		return false
	}
	delete(set, id)
	if len(set) == 0 {
		delete(sets, key)
		return false
	}
	return true
}

// candidates narrows by product and/or customer. ok is false when neither
// key was given and the caller has to scan every record. The result is in
// ascending id order, which is creation order.
func (x *secondaryIndex) candidates(productID, customerID string) (ids []int64, ok bool) {
	switch {
	case productID != "" && customerID != "":
		products, customers := x.products[productID], x.customers[customerID]
		// walk the smaller set, probe the larger
		if len(customers) < len(products) {
			products, customers = customers, products
		}
		for id := range products {
			if _, hit := customers[id]; hit {
				ids = append(ids, id)
			}
		}
	case productID != "":
		ids = setMembers(x.products[productID])
	case customerID != "":
		ids = setMembers(x.customers[customerID])
	default:
		return nil, false
	}
	slices.Sort(ids)
	return ids, true
}

func setMembers(set idSet) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

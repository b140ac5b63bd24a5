package product_controller

import (
	"github.com/SaakshamKindra/tumbler-vibe-shop/catalog"
)

var catalogStore *catalog.Store

// Init wires the controller to its catalog store. Called once at startup.
func Init(store *catalog.Store) {
	catalogStore = store
}

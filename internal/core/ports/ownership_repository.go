package ports

import "context"

// OwnershipRepository answers ownership-chain lookups. found is false when the
// resource does not exist, which callers must keep distinct from "not owner".
type OwnershipRepository interface {
	ShopOwner(ctx context.Context, shopID int64) (ownerID int64, found bool, err error)
	// ProductOwner resolves product -> shop -> owner in a single query.
	ProductOwner(ctx context.Context, productID int64) (ownerID int64, found bool, err error)
}

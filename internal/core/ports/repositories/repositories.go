package repositories

// RepositoryProvider bundles all repository implementations for injection into
// the service container.
type RepositoryProvider struct {
	MemberRepo      MemberRepository
	TransactionRepo TransactionRepository
	ItemRepo        ItemRepository
}

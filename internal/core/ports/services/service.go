package services

// ServiceContainer bundles all service facades for injection into the
// HTTP handlers.
type ServiceContainer struct {
	Member   MemberSvcFacade
	Ledger   LedgerSvcFacade
	Transfer TransferSvcFacade
	Item     ItemSvcFacade
	Auth     AuthSvcFacade
}

package library

// Store is the persistence collaborator contract. The System loads the full
// collections at construction and writes each record back after a successful
// mutation. Save methods have upsert semantics keyed by identifier.
// Implementations hold no business logic.
type Store interface {
	LoadUsers() ([]*User, error)
	LoadItems() ([]*Item, error)
	LoadLoans() ([]*Loan, error)

	SaveUser(*User) error
	SaveItem(*Item) error
	SaveLoan(*Loan) error

	DeleteUser(id string) error
	DeleteItem(id string) error
}

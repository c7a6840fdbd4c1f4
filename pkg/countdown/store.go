package countdown

// Store persists countdowns keyed by name.
//
// Implementations return *NotFoundError from Load and Delete when no record
// exists, *SaveError from Save for names rejected by ValidateName, and
// *IOError for any other failure.
type Store interface {
	// Save creates or overwrites the record for cd.Name.
	Save(cd Countdown) error

	// Load reads the record for name.
	Load(name string) (Countdown, error)

	// Delete removes the record for name.
	Delete(name string) error

	// List returns every stored name in lexicographic order.
	List() ([]string, error)
}

package numeric

// Signed is the set of integer kinds with an Integer adapter.
type Signed interface {
	~int | ~int32 | ~int64
}

// Float is the set of IEEE-754 kinds with a Real adapter.
type Float interface {
	~float32 | ~float64
}

package inventory

// OperationKind represents the kind of ledger operation
type OperationKind string

const (
	// OperationAdd represents stock coming into the warehouse
	OperationAdd OperationKind = "ADD"
	// OperationConsume represents stock leaving the warehouse
	OperationConsume OperationKind = "CONSUME"
	// OperationCorrection overwrites the stock level with a counted amount
	OperationCorrection OperationKind = "CORRECTION"
)

// String returns the string representation of OperationKind
func (o OperationKind) String() string {
	return string(o)
}

// IsValid returns true if the operation kind is valid
func (o OperationKind) IsValid() bool {
	switch o {
	case OperationAdd, OperationConsume, OperationCorrection:
		return true
	}
	return false
}

// IsRelative returns true if the operation applies a delta to the current
// stock rather than setting an absolute value
func (o OperationKind) IsRelative() bool {
	return o == OperationAdd || o == OperationConsume
}

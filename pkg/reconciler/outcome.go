package reconciler

// Kind tags a reconciliation outcome.
type Kind string

const (
	KindNoActionNeeded Kind = "no_action_needed"
	KindAdded          Kind = "added"
	KindRevoked        Kind = "revoked"
	KindSkipped        Kind = "skipped"
)

// Skip reasons
const (
	ReasonNotEligible      = "not eligible"
	ReasonNoLedgerIdentity = "no ledger identity"
)

// Outcome is the ledger transition performed for one record.
type Outcome struct {
	Kind            Kind     `json:"kind"`
	BlockReferences []string `json:"blockReferences,omitempty"`
	Reason          string   `json:"reason,omitempty"`
}

// NoActionNeeded reports that the ledger already matches the record.
func NoActionNeeded() *Outcome {
	return &Outcome{Kind: KindNoActionNeeded}
}

// Added reports a new claim, final in the given blocks.
func Added(blockReferences []string) *Outcome {
	return &Outcome{Kind: KindAdded, BlockReferences: blockReferences}
}

// Revoked reports a removed claim.
func Revoked() *Outcome {
	return &Outcome{Kind: KindRevoked}
}

// Skipped reports that no ledger call was attempted.
func Skipped(reason string) *Outcome {
	return &Outcome{Kind: KindSkipped, Reason: reason}
}
